package repository

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
)

// fileStorage keeps each key as a JSON file inside a directory. Writes go
// through a temp file and rename so a crash mid-write never leaves a torn
// value behind.
type fileStorage struct {
	dir string
}

// NewFile creates a file-backed Storage rooted at dir. The directory is
// created if it does not exist.
func NewFile(dir string) (Storage, error) {
	if dir == "" {
		return nil, goerr.New("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create storage directory", goerr.V("dir", dir))
	}
	return &fileStorage{dir: dir}, nil
}

func (s *fileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *fileStorage) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, goerr.Wrap(err, "failed to read storage file", goerr.V("key", key))
	}
	return string(data), true, nil
}

func (s *fileStorage) Set(ctx context.Context, key, value string) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("key", key))
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return goerr.Wrap(err, "failed to write storage file", goerr.V("key", key))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return goerr.Wrap(err, "failed to close storage file", goerr.V("key", key))
	}

	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return goerr.Wrap(err, "failed to replace storage file", goerr.V("key", key))
	}
	return nil
}
