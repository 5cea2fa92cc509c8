package gdal_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metasim/gdal"
	"github.com/metasim/gdal/testutil"
)

func TestOpen(t *testing.T) {
	t.Run("Fixture", func(t *testing.T) {
		ds, err := gdal.Open(testutil.Fixture(t, "grid.xyz"))
		require.NoError(t, err)

		assert.Equal(t, 1, ds.RasterCount())
		x, y := ds.Size()
		assert.Equal(t, 3, x)
		assert.Equal(t, 3, y)

		require.NoError(t, ds.Close())
		assert.Error(t, ds.Close(), "second close must fail")
	})

	t.Run("MissingFile", func(t *testing.T) {
		testutil.QuietErrors(t)

		_, err := gdal.Open(filepath.Join(t.TempDir(), "missing.tif"))
		require.Error(t, err)
		assert.ErrorIs(t, err, gdal.ErrEngine)

		var ee *gdal.EngineError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, "GDALOpenEx", ee.Function)
		assert.NotEmpty(t, ee.Message)
	})

	t.Run("AllowedDriverMismatch", func(t *testing.T) {
		testutil.QuietErrors(t)

		_, err := gdal.Open(testutil.Fixture(t, "grid.xyz"), gdal.WithAllowedDrivers("GTiff"))
		assert.ErrorIs(t, err, gdal.ErrEngine)
	})

	t.Run("EmbeddedNULName", func(t *testing.T) {
		_, err := gdal.Open("bad\x00name.tif")
		assert.ErrorIs(t, err, gdal.ErrEncoding)
	})
}

func TestCreate(t *testing.T) {
	t.Run("GeoTransformRoundTrip", func(t *testing.T) {
		ds, err := gdal.Create("MEM", "", 2, 8, 8)
		require.NoError(t, err)
		defer func() { _ = ds.Close() }()

		want := [6]float64{100, 0.5, 0, 200, 0, -0.5}
		require.NoError(t, ds.SetGeoTransform(want))

		got, err := ds.GeoTransform()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		_, err := gdal.Create("NOPE", "", 1, 8, 8)
		assert.Error(t, err)
	})
}

func TestDiagnostics(t *testing.T) {
	t.Run("LastErrorMessage", func(t *testing.T) {
		testutil.QuietErrors(t)

		_, err := gdal.Open(filepath.Join(t.TempDir(), "missing.tif"))
		require.Error(t, err)
		assert.NotEmpty(t, gdal.LastErrorMessage())

		gdal.ResetError()
		assert.Empty(t, gdal.LastErrorMessage())
	})

	t.Run("SuppressionUnwindsLIFO", func(t *testing.T) {
		outer := gdal.SuppressErrorLog()
		inner := gdal.SuppressErrorLog()
		inner()
		outer()
	})
}
