package gdal

import (
	"fmt"
	"math"
)

// coordTolerance is the absolute per-axis tolerance for coordinate
// comparison in EquivalentGeometries. Differences strictly below it pass.
const coordTolerance = 1e-8

// GeometryMismatch describes the first structural difference found between
// two geometries. Path holds the child indexes walked from the root to the
// mismatching geometry; for coordinate mismatches, Axis ('x', 'y' or 'z')
// and PointIndex pinpoint the failing value.
type GeometryMismatch struct {
	Field      string
	Path       []int
	Axis       byte
	PointIndex int
	Expected   string
	Actual     string
}

func (m *GeometryMismatch) Error() string {
	at := ""
	if len(m.Path) > 0 {
		at = fmt.Sprintf(" at sub-geometry %v", m.Path)
	}
	if m.Field == "coordinate" {
		return fmt.Sprintf("%c coordinate of point %d is not equivalent%s: expected %s, found %s",
			m.Axis, m.PointIndex, at, m.Expected, m.Actual)
	}
	return fmt.Sprintf("%ss do not match%s: expected %s, found %s",
		m.Field, at, m.Expected, m.Actual)
}

// EquivalentGeometries reports whether two geometries are structurally
// equivalent: identical type, topology and counts, with leaf coordinates
// matching per axis within an absolute tolerance of 1e-8. It returns nil
// when equivalent and a *GeometryMismatch describing the first difference
// otherwise.
//
// Geometries with differing child or point counts are never equivalent,
// regardless of coordinate values; no partial alignment or point re-ordering
// is attempted. Neither input is mutated.
func EquivalentGeometries(expected, actual *Geometry) error {
	return equivalentGeometries(expected, actual, nil)
}

func equivalentGeometries(expected, actual *Geometry, path []int) error {
	// Exact structural equality short-circuits the descent.
	if expected.Equal(actual) {
		return nil
	}

	if et, at := expected.Type(), actual.Type(); et != at {
		return mismatch(path, "geometry type", fmt.Sprintf("%d", et), fmt.Sprintf("%d", at))
	}
	if en, an := expected.Name(), actual.Name(); en != an {
		return mismatch(path, "geometry name", en, an)
	}
	if ec, ac := expected.GeometryCount(), actual.GeometryCount(); ec != ac {
		return mismatch(path, "sub-geometry count", fmt.Sprintf("%d", ec), fmt.Sprintf("%d", ac))
	}
	// Container geometries report zero points by convention.
	if ep, ap := expected.PointCount(), actual.PointCount(); ep != ap {
		return mismatch(path, "geometry point count", fmt.Sprintf("%d", ep), fmt.Sprintf("%d", ap))
	}

	if n := expected.GeometryCount(); n > 0 {
		for i := 0; i < n; i++ {
			if err := equivalentGeometries(expected.SubGeometry(i), actual.SubGeometry(i), append(path, i)); err != nil {
				return err
			}
		}
		return nil
	}

	for i := 0; i < expected.PointCount(); i++ {
		ex, ey, ez := expected.Point(i)
		ax, ay, az := actual.Point(i)
		for _, c := range []struct {
			axis byte
			e, a float64
		}{
			{'x', ex, ax},
			{'y', ey, ay},
			{'z', ez, az},
		} {
			if math.Abs(c.e-c.a) >= coordTolerance {
				m := mismatch(path, "coordinate",
					fmt.Sprintf("%v", c.e), fmt.Sprintf("%v", c.a))
				m.Axis = c.axis
				m.PointIndex = i
				return m
			}
		}
	}
	return nil
}

func mismatch(path []int, field, expected, actual string) *GeometryMismatch {
	return &GeometryMismatch{
		Field:    field,
		Path:     append([]int(nil), path...),
		Expected: expected,
		Actual:   actual,
	}
}
