package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ObjectStore uploads a file and returns its public URL. Implementations are
// injected into handlers so no vendor logic lives in the core.
type ObjectStore interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
}

// LocalStore writes uploads to a local directory and returns the file path.
// It stands in for a managed store in development and tests.
type LocalStore struct {
	Dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &LocalStore{Dir: dir}, nil
}

func (s *LocalStore) Upload(_ context.Context, file io.Reader, filename string) (string, error) {
	path := filepath.Join(s.Dir, filepath.Base(filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("writing upload file: %w", err)
	}
	return path, nil
}
