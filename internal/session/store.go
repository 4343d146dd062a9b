package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jonathan/job-finder/internal/types"
)

// Record is the persisted login state: the opaque bearer token and the user
// it identifies.
type Record struct {
	Token string     `json:"token"`
	User  types.User `json:"user"`
}

// Store is the durable slot the session lives in between runs.
// Load returns (nil, nil) when no record exists.
type Store interface {
	Load() (*Record, error)
	Save(Record) error
	Clear() error
}

// FileStore persists the record as a JSON file with owner-only permissions.
type FileStore struct {
	path string
}

// NewFileStore creates a store at path. Parent directories are created on
// first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultSessionPath returns the conventional location under the user
// config directory.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, "job-finder", "session.json"), nil
}

// Load reads the persisted record. A missing file is not an error.
func (f *FileStore) Load() (*Record, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file %s: %w", f.path, err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse session file %s: %w", f.path, err)
	}
	return &rec, nil
}

// Save writes the record atomically via a temp file rename.
func (f *FileStore) Save(rec Record) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}

// Clear removes the persisted record. Clearing an absent record is a no-op.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu  sync.Mutex
	rec *Record
}

// Load returns the stored record, if any.
func (m *MemStore) Load() (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rec == nil {
		return nil, nil
	}
	rec := *m.rec
	return &rec, nil
}

// Save stores a copy of rec.
func (m *MemStore) Save(rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = &rec
	return nil
}

// Clear drops the stored record.
func (m *MemStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = nil
	return nil
}
