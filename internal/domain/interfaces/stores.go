package interfaces

import domaintypes "safelens/internal/domain/types"

// KVStore is the durable local key-value store. Values are whole JSON
// documents; there is no partial update.
type KVStore interface {
	// Load returns the raw value under key, or nil when the key is unset.
	Load(key domaintypes.StoreKey) ([]byte, error)
	// Save replaces the value under key.
	Save(key domaintypes.StoreKey, value []byte) error
	Close() error
}

// ContactStore holds at most one trusted contact.
type ContactStore interface {
	GetContact() (domaintypes.TrustedContact, bool, error)
	SetContact(name, phone string) error
	ClearContact() error
}

// EvidenceVault persists recorded audio evidence, most recent first.
type EvidenceVault interface {
	Append(note string, audio []byte) (domaintypes.VaultEntry, error)
	List() ([]domaintypes.VaultEntry, error)
	Get(id domaintypes.EntryID) (domaintypes.VaultEntry, bool, error)
	Delete(id domaintypes.EntryID) error
	Play(id domaintypes.EntryID) ([]byte, error)
}
