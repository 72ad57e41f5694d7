package types

// DefaultNote is stored when an entry is saved without a note.
const DefaultNote = "No note added"

// VaultEntry is one recorded piece of audio evidence.
//
// AudioData holds the base64-encoded payload. Digest is the hex BLAKE2b-256 of
// the raw payload and may be empty for entries written by older clients.
type VaultEntry struct {
	ID        EntryID `json:"id"`
	Timestamp string  `json:"timestamp"`
	Note      string  `json:"note"`
	AudioData string  `json:"audioData"`
	Digest    string  `json:"digest,omitempty"`
}
