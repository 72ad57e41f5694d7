package store_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"safelens/internal/domain"
	"safelens/internal/store"
)

// TestVaultAppendDeleteProperties checks that N appends yield N entries
// newest-first, that deleting a stored id removes exactly that entry, and
// that deleting an unknown id changes nothing.
func TestVaultAppendDeleteProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("append N yields N entries newest first", prop.ForAll(
		func(n int) bool {
			kv, err := store.NewFileKV(t.TempDir())
			if err != nil {
				return false
			}
			v := store.NewVault(kv, store.WithClock(frozenClock()))
			var last domain.EntryID
			for i := 0; i < n; i++ {
				e, err := v.Append("note", []byte{byte(i)})
				if err != nil {
					return false
				}
				last = e.ID
			}
			entries, err := v.List()
			if err != nil || len(entries) != n {
				return false
			}
			if n > 0 && entries[0].ID != last {
				return false
			}
			for i := 1; i < len(entries); i++ {
				if entries[i-1].ID <= entries[i].ID {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 12),
	))

	properties.Property("delete removes exactly one stored entry", prop.ForAll(
		func(n, pick int) bool {
			kv, err := store.NewFileKV(t.TempDir())
			if err != nil {
				return false
			}
			v := store.NewVault(kv, store.WithClock(frozenClock()))
			ids := make([]domain.EntryID, 0, n)
			for i := 0; i < n; i++ {
				e, err := v.Append("", []byte{byte(i)})
				if err != nil {
					return false
				}
				ids = append(ids, e.ID)
			}
			target := ids[pick%n]
			if err := v.Delete(target); err != nil {
				return false
			}
			entries, err := v.List()
			if err != nil || len(entries) != n-1 {
				return false
			}
			for _, e := range entries {
				if e.ID == target {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 8),
		gen.IntRange(0, 100),
	))

	properties.Property("delete of unknown id is a no-op", prop.ForAll(
		func(n int, unknown int64) bool {
			kv, err := store.NewFileKV(t.TempDir())
			if err != nil {
				return false
			}
			v := store.NewVault(kv, store.WithClock(frozenClock()))
			for i := 0; i < n; i++ {
				if _, err := v.Append("", []byte{byte(i)}); err != nil {
					return false
				}
			}
			// Ids from the frozen clock are far above this range.
			if err := v.Delete(domain.EntryID(unknown)); err != nil {
				return false
			}
			entries, err := v.List()
			return err == nil && len(entries) == n
		},
		gen.IntRange(0, 8),
		gen.Int64Range(-1000, 1000),
	))

	properties.TestingRun(t)
}

// TestContactSingleSlotProperty checks that any sequence of valid SetContact
// calls leaves exactly the last contact stored.
func TestContactSingleSlotProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("last write wins", prop.ForAll(
		func(names []string) bool {
			kv, err := store.NewFileKV(t.TempDir())
			if err != nil {
				return false
			}
			cs := store.NewContactStore(kv)
			for i, n := range names {
				if err := cs.SetContact("c"+n, "+1555000"+string(rune('0'+i%10))); err != nil {
					return false
				}
			}
			got, ok, err := cs.GetContact()
			if err != nil {
				return false
			}
			if len(names) == 0 {
				return !ok
			}
			return ok && got.Name == "c"+names[len(names)-1]
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
