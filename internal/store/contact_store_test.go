package store_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safelens/internal/domain"
	"safelens/internal/store"
)

func TestContactStore_EmptyByDefault(t *testing.T) {
	kv, err := store.NewFileKV(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.NewContactStore(kv).GetContact()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContactStore_SetTwiceKeepsMostRecent(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			cs := store.NewContactStore(kv)
			require.NoError(t, cs.SetContact("Sam", "+15551234567"))
			require.NoError(t, cs.SetContact("Alex", "+15557654321"))

			got, ok, err := cs.GetContact()
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, domain.TrustedContact{Name: "Alex", Phone: "+15557654321"}, got)

			raw, err := kv.Load(domain.KeyContacts)
			require.NoError(t, err)
			var list []domain.TrustedContact
			require.NoError(t, json.Unmarshal(raw, &list))
			assert.Len(t, list, 1, "contacts stay list-shaped with a single slot")
		})
	}
}

func TestContactStore_BlankFieldsRejected(t *testing.T) {
	kv, err := store.NewFileKV(t.TempDir())
	require.NoError(t, err)
	cs := store.NewContactStore(kv)
	require.NoError(t, cs.SetContact("Sam", "+15551234567"))

	cases := []struct {
		name, phone, field string
	}{
		{"", "+15551234567", "name"},
		{"Sam", "", "phone"},
		{"   ", "\t", "name"},
	}
	for _, tc := range cases {
		err := cs.SetContact(tc.name, tc.phone)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, tc.field, ve.Field)
	}

	got, ok, err := cs.GetContact()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Sam", got.Name, "a rejected update leaves the old contact in place")
}

func TestContactStore_ReadsLegacyMultiEntryList(t *testing.T) {
	kv, err := store.NewFileKV(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, kv.Save(domain.KeyContacts,
		[]byte(`[{"name":"First","phone":"1"},{"name":"Second","phone":"2"}]`)))

	got, ok, err := store.NewContactStore(kv).GetContact()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "First", got.Name)
}

func TestContactStore_Clear(t *testing.T) {
	kv, err := store.NewFileKV(t.TempDir())
	require.NoError(t, err)
	cs := store.NewContactStore(kv)
	require.NoError(t, cs.SetContact("Sam", "+15551234567"))
	require.NoError(t, cs.ClearContact())

	_, ok, err := cs.GetContact()
	require.NoError(t, err)
	assert.False(t, ok)
}
