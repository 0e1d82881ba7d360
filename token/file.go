package token

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore persists one value per key as a plain file under a base
// directory. Reads hit the filesystem every time, so another process
// rotating the token file is picked up immediately.
type FileStore struct {
	basePath string
}

// NewFileStore creates a file-backed store rooted at basePath, creating
// the directory if needed.
func NewFileStore(basePath string) (*FileStore, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("token: resolve base path: %w", err)
	}
	if err := os.MkdirAll(abs, 0o700); err != nil {
		return nil, fmt.Errorf("token: create base directory: %w", err)
	}
	return &FileStore{basePath: abs}, nil
}

// Get reads the value stored under key. Missing or unreadable files report
// absence rather than an error.
func (s *FileStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", false
	}
	return value, true
}

// Set writes value under key, replacing any previous value atomically.
func (s *FileStore) Set(key, value string) error {
	target := s.path(key)
	tmp := target + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o600); err != nil {
		return fmt.Errorf("token: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("token: replace %s: %w", key, err)
	}
	return nil
}

// Delete removes the value under key. Deleting a missing key is a no-op.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("token: delete %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.basePath, filepath.Base(filepath.Clean(key)))
}
