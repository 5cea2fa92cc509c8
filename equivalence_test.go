package gdal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metasim/gdal"
	"github.com/metasim/gdal/testutil"
)

func TestEquivalentGeometries(t *testing.T) {
	t.Run("Reflexive", func(t *testing.T) {
		g := geom(t, "LINESTRING (0 0, 1 1, 2 0)")
		assert.NoError(t, gdal.EquivalentGeometries(g, g))
	})

	t.Run("IdenticalParses", func(t *testing.T) {
		a := geom(t, "POLYGON ((0 0, 4 0, 4 4, 0 4, 0 0))")
		b := geom(t, "POLYGON ((0 0, 4 0, 4 4, 0 4, 0 0))")
		testutil.AssertGeometriesEquivalent(t, a, b)
	})

	t.Run("WithinTolerance", func(t *testing.T) {
		a := geom(t, "POINT (1.0 2.0 0.0)")
		b := geom(t, "POINT (1.000000005 2.0 0.0)")
		assert.NoError(t, gdal.EquivalentGeometries(a, b))
	})

	t.Run("ExceedsTolerance", func(t *testing.T) {
		a := geom(t, "POINT (1.0 2.0 0.0)")
		b := geom(t, "POINT (1.00000002 2.0 0.0)")

		err := gdal.EquivalentGeometries(a, b)
		require.Error(t, err)

		var m *gdal.GeometryMismatch
		require.ErrorAs(t, err, &m)
		assert.Equal(t, "coordinate", m.Field)
		assert.Equal(t, byte('x'), m.Axis)
		assert.Equal(t, 0, m.PointIndex)
	})

	t.Run("ZAxisExceedsTolerance", func(t *testing.T) {
		a := geom(t, "POINT (1 2 0)")
		b := geom(t, "POINT (1 2 0.00000002)")

		err := gdal.EquivalentGeometries(a, b)
		require.Error(t, err)

		var m *gdal.GeometryMismatch
		require.ErrorAs(t, err, &m)
		assert.Equal(t, byte('z'), m.Axis)
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		a := geom(t, "POINT (0 0)")
		b := geom(t, "LINESTRING (0 0, 1 1)")

		err := gdal.EquivalentGeometries(a, b)
		require.Error(t, err)

		var m *gdal.GeometryMismatch
		require.ErrorAs(t, err, &m)
		assert.Equal(t, "geometry type", m.Field)
	})

	t.Run("SubGeometryCountMismatch", func(t *testing.T) {
		a := geom(t, "MULTIPOINT ((0 0), (1 1))")
		b := geom(t, "MULTIPOINT ((0 0))")

		err := gdal.EquivalentGeometries(a, b)
		require.Error(t, err)

		var m *gdal.GeometryMismatch
		require.ErrorAs(t, err, &m)
		assert.Equal(t, "sub-geometry count", m.Field)
	})

	t.Run("PointCountMismatch", func(t *testing.T) {
		a := geom(t, "LINESTRING (0 0, 1 1, 2 2)")
		b := geom(t, "LINESTRING (0 0, 1 1)")

		err := gdal.EquivalentGeometries(a, b)
		require.Error(t, err)

		var m *gdal.GeometryMismatch
		require.ErrorAs(t, err, &m)
		assert.Equal(t, "geometry point count", m.Field)
	})

	t.Run("RecursesIntoChildren", func(t *testing.T) {
		a := geom(t, "MULTILINESTRING ((0 0, 1 1), (2 2, 3 3))")
		ok := geom(t, "MULTILINESTRING ((0 0, 1 1), (2 2, 3 3.000000005))")
		bad := geom(t, "MULTILINESTRING ((0 0, 1 1), (2 2, 3 3.00000002))")

		assert.NoError(t, gdal.EquivalentGeometries(a, ok))

		err := gdal.EquivalentGeometries(a, bad)
		require.Error(t, err)

		var m *gdal.GeometryMismatch
		require.ErrorAs(t, err, &m)
		assert.Equal(t, []int{1}, m.Path)
		assert.Equal(t, byte('y'), m.Axis)
		assert.Equal(t, 1, m.PointIndex)
	})
}
