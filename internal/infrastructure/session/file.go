// Package session provides the persistence adapters behind the SessionStore
// port: a local JSON file for normal use and Redis for shared-terminal
// deployments. Both hold exactly two fields, token and role, and survive
// page navigation until an explicit logout.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cakehouse/storefront-client/internal/core/domain"
)

// FileStore persists the session as a small JSON file. Reads never fail:
// a missing or corrupt file is simply an absent session.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a FileStore at path, creating parent directories on
// first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath places the session file under the user's config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "storefront", "session.json")
}

func (f *FileStore) Set(token string, role domain.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("session dir: %w", err)
	}

	raw, err := json.Marshal(domain.Session{Token: token, Role: role})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	// Write-then-rename keeps a crash from leaving a half-written session.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (f *FileStore) Get() domain.Session {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path)
	if err != nil {
		return domain.Session{}
	}
	var s domain.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return domain.Session{}
	}
	return s
}

func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
