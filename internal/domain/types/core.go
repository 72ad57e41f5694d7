package types

// StoreKey addresses a whole value in the local key-value store.
type StoreKey string

// String returns the string form of the key.
func (k StoreKey) String() string { return string(k) }

// Fixed logical keys of the persisted store.
const (
	KeyContacts StoreKey = "contacts"
	KeyVault    StoreKey = "vault"
	// KeyVaultSeq holds the highest vault id ever issued, so ids of deleted
	// entries are never reused.
	KeyVaultSeq StoreKey = "vault_seq"
)

// EntryID identifies a vault entry. Values are derived from wall-clock
// milliseconds and strictly increase within one vault.
type EntryID int64

// DispatchID correlates every log line of one alert dispatch.
type DispatchID string

// String returns the string form of the dispatch identifier.
func (id DispatchID) String() string { return string(id) }
