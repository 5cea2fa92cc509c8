// Package minio provides a sourcestore.Store backed by the MinIO client.
//
// MinIO is an S3-compatible object storage system; this package works with
// MinIO itself and other S3-compatible stores such as Ceph, SeaweedFS and
// Garage, without any AWS dependency.
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store := miniostore.NewStore(client, "rasters", "tiles/")
package minio

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"

	"github.com/metasim/gdal/sourcestore"
)

// Store implements sourcestore.Store for MinIO and S3-compatible storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewStore creates a new MinIO source store. rootPrefix is prepended to all
// object names (e.g. "tiles/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open opens an object for reading. A missing object satisfies
// errors.Is(err, sourcestore.ErrNotFound).
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := s.key(name)

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	// GetObject is lazy; Stat forces the first request so missing keys
	// surface here instead of on first Read.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%s: %w", name, sourcestore.ErrNotFound)
		}
		return nil, err
	}
	return obj, nil
}
