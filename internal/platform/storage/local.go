package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// localStore keeps attachments on the local filesystem. Used by tests and
// by single-node deployments without a bucket.
type localStore struct {
	root string
}

func NewLocalStore(root string) FileStore {
	return &localStore{root: root}
}

func (s *localStore) Save(ctx context.Context, key string, file io.Reader) error {
	full := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	out, err := os.Create(full)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, file); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func (s *localStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *localStore) URL(key string) string {
	return "file://" + filepath.ToSlash(filepath.Join(s.root, filepath.FromSlash(key)))
}
