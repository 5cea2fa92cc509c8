package sourcestore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a source object does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for reading named raster source objects.
type Store interface {
	// Open opens the named object for sequential reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Downloader is an optional interface for Stores that can write an object
// directly to an io.WriterAt, typically with concurrent ranged reads. The
// Provisioner prefers it over Open when no decompression is needed.
type Downloader interface {
	// Download writes the named object to w and returns the byte count.
	Download(ctx context.Context, name string, w io.WriterAt) (int64, error)
}
