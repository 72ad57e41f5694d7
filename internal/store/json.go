package store

import (
	"encoding/json"

	"safelens/internal/domain"
)

// loadJSON decodes the document under key into out; an unset key leaves out
// untouched.
func loadJSON(kv domain.KVStore, key domain.StoreKey, out any) error {
	b, err := kv.Load(key)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return &domain.StorageError{Key: key, Op: "decode", Err: err}
	}
	return nil
}

// saveJSON encodes v and replaces the document under key.
func saveJSON(kv domain.KVStore, key domain.StoreKey, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &domain.StorageError{Key: key, Op: "encode", Err: err}
	}
	return kv.Save(key, b)
}
