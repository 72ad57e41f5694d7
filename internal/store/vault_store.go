package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"safelens/internal/crypto"
	"safelens/internal/domain"
)

// TimestampLayout is the display format of VaultEntry.Timestamp.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// Vault persists audio evidence under the "vault" key, most recent first.
type Vault struct {
	kv  domain.KVStore
	now func() time.Time
	mu  sync.Mutex
}

// VaultOption configures a Vault.
type VaultOption func(*Vault)

// WithClock overrides the time source used for ids and timestamps.
func WithClock(now func() time.Time) VaultOption {
	return func(v *Vault) { v.now = now }
}

// NewVault returns a Vault backed by kv.
func NewVault(kv domain.KVStore, opts ...VaultOption) *Vault {
	v := &Vault{kv: kv, now: time.Now}
	for _, o := range opts {
		o(v)
	}
	return v
}

func (v *Vault) load() ([]domain.VaultEntry, error) {
	var entries []domain.VaultEntry
	if err := loadJSON(v.kv, domain.KeyVault, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.VaultEntry{}
	}
	return entries, nil
}

// nextID returns the current time in milliseconds, bumped past the
// high-water mark and every stored id so that rapid appends never collide
// and deleted ids are never reissued.
func nextID(now time.Time, last domain.EntryID, entries []domain.VaultEntry) domain.EntryID {
	id := domain.EntryID(now.UnixMilli())
	if last >= id {
		id = last + 1
	}
	for _, e := range entries {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	return id
}

// Append encodes audio, stores a new entry at the head of the vault and
// returns it. The entry is only visible to List once the write succeeded.
func (v *Vault) Append(note string, audio []byte) (domain.VaultEntry, error) {
	if strings.TrimSpace(note) == "" {
		note = domain.DefaultNote
	}
	encoded := crypto.B64(audio)
	digest := crypto.Digest(audio)

	v.mu.Lock()
	defer v.mu.Unlock()

	entries, err := v.load()
	if err != nil {
		return domain.VaultEntry{}, err
	}

	var last domain.EntryID
	if err := loadJSON(v.kv, domain.KeyVaultSeq, &last); err != nil {
		return domain.VaultEntry{}, err
	}

	now := v.now()
	id := nextID(now, last, entries)
	// The mark is advanced first; a failed entry write only skips an id.
	if err := saveJSON(v.kv, domain.KeyVaultSeq, id); err != nil {
		return domain.VaultEntry{}, err
	}
	entry := domain.VaultEntry{
		ID:        id,
		Timestamp: now.Format(TimestampLayout),
		Note:      note,
		AudioData: encoded,
		Digest:    digest,
	}
	entries = append([]domain.VaultEntry{entry}, entries...)
	if err := saveJSON(v.kv, domain.KeyVault, entries); err != nil {
		return domain.VaultEntry{}, err
	}
	return entry, nil
}

// List returns all entries, most recent first. An empty vault yields an empty
// slice.
func (v *Vault) List() ([]domain.VaultEntry, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.load()
}

// Get returns the entry with id and whether it exists.
func (v *Vault) Get(id domain.EntryID) (domain.VaultEntry, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	entries, err := v.load()
	if err != nil {
		return domain.VaultEntry{}, false, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, true, nil
		}
	}
	return domain.VaultEntry{}, false, nil
}

// Delete removes the entry with id. Deleting an unknown id is a no-op.
// Deletion is irreversible; callers confirm with the user first.
func (v *Vault) Delete(id domain.EntryID) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	entries, err := v.load()
	if err != nil {
		return err
	}
	for i, e := range entries {
		if e.ID == id {
			entries = append(entries[:i], entries[i+1:]...)
			return saveJSON(v.kv, domain.KeyVault, entries)
		}
	}
	return nil
}

// Play decodes the audio of entry id without modifying the vault.
func (v *Vault) Play(id domain.EntryID) ([]byte, error) {
	e, ok, err := v.Get(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("vault entry %d not found", id)
	}
	audio, err := crypto.FromB64(e.AudioData)
	if err != nil {
		return nil, fmt.Errorf("decode vault entry %d: %w", id, err)
	}
	if !crypto.VerifyDigest(audio, e.Digest) {
		return nil, domain.ErrDigestMismatch
	}
	return audio, nil
}

// Compile-time assertion that Vault implements domain.EvidenceVault.
var _ domain.EvidenceVault = (*Vault)(nil)
