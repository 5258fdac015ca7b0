package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore writes uploads to a fixed directory on the local filesystem
type LocalStore struct {
	dir string
}

// NewLocalStore creates the uploads directory if needed
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

// SaveTranscript writes the file under the uploads directory, overwriting
// any previous upload with the same name.
func (s *LocalStore) SaveTranscript(_ context.Context, filename string, content []byte) (string, error) {
	// Strip any path components from the client-supplied name
	path := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return path, nil
}
