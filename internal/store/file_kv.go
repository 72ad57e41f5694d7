package store

import (
	"os"
	"path/filepath"
	"sync"

	"safelens/internal/domain"
)

// FileKV keeps each key in its own JSON file under dir.
type FileKV struct {
	dir string
	mu  sync.Mutex
}

// NewFileKV returns a FileKV rooted at dir, creating dir if needed.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileKV{dir: dir}, nil
}

func (s *FileKV) path(key domain.StoreKey) string {
	return filepath.Join(s.dir, key.String()+".json")
}

// Load returns the stored document for key, or nil when unset.
func (s *FileKV) Load(key domain.StoreKey) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path(key))
	if err != nil {
		return nil, &domain.StorageError{Key: key, Op: "load", Err: err}
	}
	return b, nil
}

// Save replaces the document for key.
func (s *FileKV) Save(key domain.StoreKey, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFile(s.path(key), value, 0o600); err != nil {
		return &domain.StorageError{Key: key, Op: "save", Err: err}
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *FileKV) Close() error { return nil }

// Compile-time assertion that FileKV implements domain.KVStore.
var _ domain.KVStore = (*FileKV)(nil)
