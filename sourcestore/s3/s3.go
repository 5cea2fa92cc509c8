// Package s3 provides a sourcestore.Store backed by AWS S3 using the
// aws-sdk-go-v2 client. Downloads go through the SDK's transfer manager,
// which fetches large objects with concurrent ranged reads.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/metasim/gdal/sourcestore"
)

// Client is the subset of the S3 API the store uses. *s3.Client satisfies
// it; tests may substitute a fake.
type Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Store implements sourcestore.Store and sourcestore.Downloader over an S3
// bucket.
type Store struct {
	client     Client
	downloader *manager.Downloader
	bucket     string
	prefix     string
}

// NewStore creates a new S3 source store. rootPrefix is prepended to all
// object names (e.g. "tiles/").
func NewStore(client Client, bucket, rootPrefix string) *Store {
	return &Store{
		client:     client,
		downloader: manager.NewDownloader(client),
		bucket:     bucket,
		prefix:     rootPrefix,
	}
}

// NewFromDefaultConfig creates a Store using the ambient AWS configuration
// (environment, shared config files, instance metadata).
func NewFromDefaultConfig(ctx context.Context, bucket, rootPrefix string, optFns ...func(*config.LoadOptions) error) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, err
	}
	return NewStore(s3.NewFromConfig(cfg), bucket, rootPrefix), nil
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open opens an object for reading. A missing object satisfies
// errors.Is(err, sourcestore.ErrNotFound).
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		return nil, mapNotFound(name, err)
	}
	return out.Body, nil
}

// Download writes an object to w using concurrent ranged reads.
// Implements sourcestore.Downloader.
func (s *Store) Download(ctx context.Context, name string, w io.WriterAt) (int64, error) {
	n, err := s.downloader.Download(ctx, w, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		return n, mapNotFound(name, err)
	}
	return n, nil
}

func mapNotFound(name string, err error) error {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%s: %w", name, sourcestore.ErrNotFound)
	}
	return err
}
