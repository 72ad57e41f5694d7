package domain

import (
	interfaces "safelens/internal/domain/interfaces"
	types "safelens/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	StoreKey        = types.StoreKey
	EntryID         = types.EntryID
	DispatchID      = types.DispatchID
	TrustedContact  = types.TrustedContact
	VaultEntry      = types.VaultEntry
	Location        = types.Location
	Channel         = types.Channel
	AlertMessage    = types.AlertMessage
	AlertOutcome    = types.AlertOutcome
	AlertReceipt    = types.AlertReceipt
	Analysis        = types.Analysis
	Keywords        = types.Keywords
	AnalysisResult  = types.AnalysisResult
	CaptureState    = types.CaptureState
	SaveMode        = types.SaveMode
	AudioFormat     = types.AudioFormat
	Recording       = types.Recording
	ValidationError = types.ValidationError
	DeliveryError   = types.DeliveryError
	StorageError    = types.StorageError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KVStore          = interfaces.KVStore
	ContactStore     = interfaces.ContactStore
	EvidenceVault    = interfaces.EvidenceVault
	LocationResolver = interfaces.LocationResolver
	AlertDispatcher  = interfaces.AlertDispatcher
	TextAnalyzer     = interfaces.TextAnalyzer
	BackendClient    = interfaces.BackendClient
	Locator          = interfaces.Locator
	Launcher         = interfaces.Launcher
	Microphone       = interfaces.Microphone
	AudioStream      = interfaces.AudioStream
)

// Re-exported constants and sentinels.
const (
	KeyContacts = types.KeyContacts
	KeyVault    = types.KeyVault
	KeyVaultSeq = types.KeyVaultSeq

	DefaultNote = types.DefaultNote

	ChannelSMSLink = types.ChannelSMSLink
	ChannelBackend = types.ChannelBackend

	LabelHighRisk = types.LabelHighRisk
	LabelWarning  = types.LabelWarning
	LabelSafe     = types.LabelSafe

	CaptureIdle        = types.CaptureIdle
	CaptureRecording   = types.CaptureRecording
	CapturePendingSave = types.CapturePendingSave

	SaveToVault    = types.SaveToVault
	SaveAsDownload = types.SaveAsDownload
)

var (
	ErrMissingContact   = types.ErrMissingContact
	ErrPermissionDenied = types.ErrPermissionDenied
	ErrNotUnlocked      = types.ErrNotUnlocked
	ErrInvalidState     = types.ErrInvalidState
	ErrDigestMismatch   = types.ErrDigestMismatch

	Unavailable = types.Unavailable
)

// Located returns an available Location.
func Located(lat, lon float64) Location { return types.Located(lat, lon) }
