package blobstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/slsdb/internal/fs"
)

// LocalStore implements ObjectStore on a local directory. Keys map to
// slash-separated paths below the root.
//
// It stands in for a bucket during development and in tests that want the
// remote copy on disk.
type LocalStore struct {
	root  string
	files *fs.Files
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return NewLocalStoreFS(root, fs.Default)
}

// NewLocalStoreFS creates a LocalStore on top of an arbitrary FileSystem.
func NewLocalStoreFS(root string, fsys fs.FileSystem) *LocalStore {
	return &LocalStore{root: root, files: fs.NewFiles(fsys)}
}

func (s *LocalStore) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(key, "/")))
	if key == "" || clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.root, clean), nil
}

// Exists reports whether key is present.
func (s *LocalStore) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	p, err := s.path(key)
	if err != nil {
		return false, err
	}
	return s.files.Exists(p)
}

// Download reads the object file.
func (s *LocalStore) Download(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	return s.files.ReadFile(p)
}

// Upload atomically replaces the object file.
func (s *LocalStore) Upload(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(key)
	if err != nil {
		return err
	}
	return s.files.WriteFile(p, data)
}

// Delete removes the object file.
func (s *LocalStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := s.files.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
