package sourcestore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Provisioner stages source objects from a Store into a local directory.
type Provisioner struct {
	store       Store
	dir         string
	limiter     *rate.Limiter
	parallelism int
	logger      *slog.Logger
}

// ProvisionerOption configures a Provisioner.
type ProvisionerOption func(*Provisioner)

// WithParallelism caps the number of concurrent fetches. Default 4.
func WithParallelism(n int) ProvisionerOption {
	return func(p *Provisioner) {
		if n > 0 {
			p.parallelism = n
		}
	}
}

// WithRateLimit limits the rate at which fetches are started, across all
// objects of all Stage calls on this Provisioner.
func WithRateLimit(limit rate.Limit, burst int) ProvisionerOption {
	return func(p *Provisioner) {
		p.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithLogger sets the logger for staging progress. Default discards.
func WithLogger(l *slog.Logger) ProvisionerOption {
	return func(p *Provisioner) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewProvisioner creates a Provisioner staging into dir. The directory is
// created on first use; its lifetime is the caller's to manage (tests
// typically pass a testing.TB TempDir).
func NewProvisioner(store Store, dir string, opts ...ProvisionerOption) *Provisioner {
	p := &Provisioner{
		store:       store,
		dir:         dir,
		parallelism: 4,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stage fetches the named objects into the staging directory and returns
// their local paths in input order. Objects named with a .gz or .lz4 suffix
// are decompressed while staging and the suffix is dropped from the staged
// file name. A failed fetch fails the whole call.
func (p *Provisioner) Stage(ctx context.Context, names []string) ([]string, error) {
	paths := make([]string, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.parallelism)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if p.limiter != nil {
				if err := p.limiter.Wait(ctx); err != nil {
					return err
				}
			}
			path, err := p.stage(ctx, name)
			if err != nil {
				return fmt.Errorf("stage %s: %w", name, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func (p *Provisioner) stage(ctx context.Context, name string) (string, error) {
	local := stagedName(name)
	if local == "" || strings.Contains(local, "..") {
		return "", fmt.Errorf("unsafe object name %q", name)
	}
	path := filepath.Join(p.dir, filepath.FromSlash(local))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	// Ranged direct download when the store supports it and no
	// decompression is involved.
	if d, ok := p.store.(Downloader); ok && local == name {
		f, err := os.Create(path)
		if err != nil {
			return "", err
		}
		if _, err := d.Download(ctx, name, f); err != nil {
			_ = f.Close()
			_ = os.Remove(path)
			return "", err
		}
		if err := f.Close(); err != nil {
			return "", err
		}
		p.logger.Debug("staged source", "name", name, "path", path)
		return path, nil
	}

	rc, err := p.store.Open(ctx, name)
	if err != nil {
		return "", err
	}
	defer func() { _ = rc.Close() }()

	var r io.Reader = rc
	switch {
	case strings.HasSuffix(name, ".gz"):
		zr, err := gzip.NewReader(rc)
		if err != nil {
			return "", err
		}
		defer func() { _ = zr.Close() }()
		r = zr
	case strings.HasSuffix(name, ".lz4"):
		r = lz4.NewReader(rc)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	p.logger.Debug("staged source", "name", name, "path", path)
	return path, nil
}

// stagedName strips a trailing compression suffix from an object name.
func stagedName(name string) string {
	name = strings.TrimSuffix(name, ".gz")
	return strings.TrimSuffix(name, ".lz4")
}
