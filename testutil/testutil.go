package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/metasim/gdal"
)

// Fixture copies the named file from the package's fixtures directory into
// a fresh temporary directory and returns the copy's path. The directory is
// removed when the test finishes. Some engine drivers rewrite their inputs'
// sidecar files, so tests always work on a copy.
func Fixture(tb testing.TB, name string) string {
	tb.Helper()

	dst := Empty(tb, name)

	src, err := os.Open(filepath.Join("fixtures", name))
	require.NoError(tb, err)
	defer func() { _ = src.Close() }()

	out, err := os.Create(dst)
	require.NoError(tb, err)

	_, err = io.Copy(out, src)
	require.NoError(tb, err)
	require.NoError(tb, out.Close())

	return dst
}

// Empty returns a path to a non-existent file with the given name inside a
// fresh temporary directory, removed when the test finishes. Useful as a
// destination for results written during testing.
func Empty(tb testing.TB, name string) string {
	tb.Helper()
	return filepath.Join(tb.TempDir(), name)
}

// AssertGeometriesEquivalent fails the test unless the two geometries are
// structurally equivalent within coordinate tolerance.
func AssertGeometriesEquivalent(tb testing.TB, expected, actual *gdal.Geometry) {
	tb.Helper()
	require.NoError(tb, gdal.EquivalentGeometries(expected, actual), "geometries not equivalent")
}

// QuietErrors suppresses the engine's diagnostic log for the remainder of
// the test. Use in tests that trigger expected engine errors to keep the
// output clean.
func QuietErrors(tb testing.TB) {
	tb.Helper()
	restore := gdal.SuppressErrorLog()
	tb.Cleanup(restore)
}
