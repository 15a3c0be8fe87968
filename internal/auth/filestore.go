package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tdo/internal/service"
)

var nowFunc = time.Now

// FileStore persists the session envelope between invocations. The file
// plays the role the provider's local storage plays in a browser client.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted session. Returns (nil, nil) when no session
// is stored.
func (s *FileStore) Load() (*service.SessionData, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil // not signed in
		}
		return nil, fmt.Errorf("read session: %w", err)
	}
	var data service.SessionData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if data.Token == nil || data.Token.AccessToken == "" {
		return nil, errors.New("session file has no token")
	}
	return &data, nil
}

// Save writes the session with owner-only permissions.
func (s *FileStore) Save(data service.SessionData) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Remove deletes the persisted session. Missing file is not an error.
func (s *FileStore) Remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
