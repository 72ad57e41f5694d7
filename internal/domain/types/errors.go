package types

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingContact means no trusted contact is configured, so no alert
	// can be sent.
	ErrMissingContact = errors.New("no trusted contact configured; add one before sending alerts")

	// ErrPermissionDenied is returned when the microphone or location
	// permission is refused.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotUnlocked is returned by Lock when the keypad is already locked.
	ErrNotUnlocked = errors.New("keypad is not unlocked")

	// ErrInvalidState is returned when a capture operation is called in the
	// wrong lifecycle state.
	ErrInvalidState = errors.New("invalid capture state")

	// ErrDigestMismatch means a vault payload no longer matches the digest
	// recorded when it was saved.
	ErrDigestMismatch = errors.New("vault entry audio does not match its digest")
)

// ValidationError reports a rejected user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DeliveryError reports a failed call to the alert or analysis service.
type DeliveryError struct {
	Op     string
	Status int // HTTP status, 0 when the request never completed
	Err    error
}

func (e *DeliveryError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s failed: HTTP %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// StorageError reports a failed read or write of the persisted store.
type StorageError struct {
	Key StoreKey
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
