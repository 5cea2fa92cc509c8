package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixture(t *testing.T) {
	path := Fixture(t, "grid.xyz")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join("fixtures", "grid.xyz"))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// The copy lives outside the fixtures directory.
	assert.NotEqual(t, filepath.Join("fixtures", "grid.xyz"), path)
}

func TestEmpty(t *testing.T) {
	path := Empty(t, "out.vrt")

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.DirExists(t, filepath.Dir(path))
}
