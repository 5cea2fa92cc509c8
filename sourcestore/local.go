package sourcestore

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalStore implements Store over a local filesystem directory.
type LocalStore struct {
	root string
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Open opens an object for reading. A missing file satisfies
// errors.Is(err, ErrNotFound).
func (s *LocalStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, filepath.FromSlash(name)))
}
