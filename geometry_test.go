package gdal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metasim/gdal"
	"github.com/metasim/gdal/testutil"
)

func geom(t *testing.T, wkt string) *gdal.Geometry {
	t.Helper()
	g, err := gdal.NewGeometryFromWKT(wkt)
	require.NoError(t, err)
	t.Cleanup(g.Close)
	return g
}

func TestGeometry(t *testing.T) {
	t.Run("Point", func(t *testing.T) {
		g := geom(t, "POINT (1 2 3)")

		assert.Equal(t, "POINT", g.Name())
		assert.Equal(t, 0, g.GeometryCount())
		assert.Equal(t, 1, g.PointCount())

		x, y, z := g.Point(0)
		assert.Equal(t, 1.0, x)
		assert.Equal(t, 2.0, y)
		assert.Equal(t, 3.0, z)
	})

	t.Run("LineString", func(t *testing.T) {
		g := geom(t, "LINESTRING (0 0, 1 1, 2 0)")

		assert.Equal(t, gdal.GTLineString, g.Type())
		assert.Equal(t, 0, g.GeometryCount())
		assert.Equal(t, 3, g.PointCount())
	})

	t.Run("MultiPointIsContainer", func(t *testing.T) {
		g := geom(t, "MULTIPOINT ((0 0), (1 1))")

		assert.Equal(t, gdal.GTMultiPoint, g.Type())
		assert.Equal(t, 2, g.GeometryCount())
		// Containers report zero points; their children carry them.
		assert.Equal(t, 0, g.PointCount())
		assert.Equal(t, 1, g.SubGeometry(0).PointCount())
	})

	t.Run("Equal", func(t *testing.T) {
		a := geom(t, "LINESTRING (0 0, 1 1)")
		b := geom(t, "LINESTRING (0 0, 1 1)")
		c := geom(t, "LINESTRING (0 0, 1 2)")

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})

	t.Run("WKTRoundTrip", func(t *testing.T) {
		g := geom(t, "POINT (1 2)")
		wkt, err := g.WKT()
		require.NoError(t, err)
		assert.Contains(t, wkt, "POINT")
	})

	t.Run("InvalidWKT", func(t *testing.T) {
		testutil.QuietErrors(t)

		_, err := gdal.NewGeometryFromWKT("NOT A GEOMETRY")
		assert.ErrorIs(t, err, gdal.ErrEngine)
	})

	t.Run("EmbeddedNUL", func(t *testing.T) {
		_, err := gdal.NewGeometryFromWKT("POINT\x00(1 2)")
		assert.ErrorIs(t, err, gdal.ErrEncoding)
	})
}
