package store

import (
	"strings"
	"sync"

	"safelens/internal/domain"
)

// ContactStore keeps the single trusted contact under the "contacts" key.
//
// The persisted value is a JSON list for compatibility with earlier clients,
// but the store only ever writes a list of length zero or one and only reads
// the first element.
type ContactStore struct {
	kv domain.KVStore
	mu sync.Mutex
}

// NewContactStore returns a ContactStore backed by kv.
func NewContactStore(kv domain.KVStore) *ContactStore {
	return &ContactStore{kv: kv}
}

// GetContact returns the trusted contact and whether one is configured.
func (s *ContactStore) GetContact() (domain.TrustedContact, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []domain.TrustedContact
	if err := loadJSON(s.kv, domain.KeyContacts, &list); err != nil {
		return domain.TrustedContact{}, false, err
	}
	if len(list) == 0 {
		return domain.TrustedContact{}, false, nil
	}
	return list[0], true, nil
}

// SetContact replaces any existing contact. Both fields are required.
func (s *ContactStore) SetContact(name, phone string) error {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return &domain.ValidationError{Field: "name", Message: "contact name is required"}
	}
	if phone == "" {
		return &domain.ValidationError{Field: "phone", Message: "contact phone is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := []domain.TrustedContact{{Name: name, Phone: phone}}
	return saveJSON(s.kv, domain.KeyContacts, list)
}

// ClearContact removes the trusted contact.
func (s *ContactStore) ClearContact() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return saveJSON(s.kv, domain.KeyContacts, []domain.TrustedContact{})
}

// Compile-time assertion that ContactStore implements domain.ContactStore.
var _ domain.ContactStore = (*ContactStore)(nil)
