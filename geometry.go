package gdal

/*
#include "cpl_conv.h"
#include "ogr_api.h"
#include "ogr_core.h"
#include <stdlib.h>
*/
import "C"
import (
	"unsafe"
)

// GeometryType is an OGR geometry type tag.
type GeometryType uint32

const (
	GTUnknown            = GeometryType(C.wkbUnknown)
	GTPoint              = GeometryType(C.wkbPoint)
	GTLineString         = GeometryType(C.wkbLineString)
	GTPolygon            = GeometryType(C.wkbPolygon)
	GTMultiPoint         = GeometryType(C.wkbMultiPoint)
	GTMultiLineString    = GeometryType(C.wkbMultiLineString)
	GTMultiPolygon       = GeometryType(C.wkbMultiPolygon)
	GTGeometryCollection = GeometryType(C.wkbGeometryCollection)
	GTNone               = GeometryType(C.wkbNone)
)

// Geometry wraps an OGR geometry value tree. Geometries returned by
// NewGeometryFromWKT are owned and must be released with Close; geometries
// returned by SubGeometry are borrowed views into their parent and must not
// be closed or used after the parent is released.
type Geometry struct {
	handle C.OGRGeometryH
	owned  bool
}

// NewGeometryFromWKT parses a geometry from its WKT representation.
func NewGeometryFromWKT(wkt string) (*Geometry, error) {
	registerAll()

	cwkt, err := cString(wkt)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cwkt))

	enginemu.Lock()
	defer enginemu.Unlock()
	C.CPLErrorReset()

	var hndl C.OGRGeometryH
	// The engine advances the input cursor while parsing; keep cwkt
	// pointing at the allocation so it can be freed.
	cursor := cwkt
	if errcode := C.OGR_G_CreateFromWkt(&cursor, nil, &hndl); errcode != C.OGRERR_NONE {
		return nil, lastEngineError("OGR_G_CreateFromWkt")
	}
	return &Geometry{handle: hndl, owned: true}, nil
}

// Close releases an owned geometry. Further calls and calls on borrowed
// geometries are no-ops.
func (g *Geometry) Close() {
	if g.owned && g.handle != nil {
		C.OGR_G_DestroyGeometry(g.handle)
		g.handle = nil
	}
}

// Type returns the geometry's type tag.
func (g *Geometry) Type() GeometryType {
	return GeometryType(C.OGR_G_GetGeometryType(g.handle))
}

// Name returns the geometry's WKT type name, e.g. "POINT".
func (g *Geometry) Name() string {
	return C.GoString(C.OGR_G_GetGeometryName(g.handle))
}

// GeometryCount returns the number of child geometries. Leaf geometries
// report zero children and are described by their points instead.
func (g *Geometry) GeometryCount() int {
	return int(C.OGR_G_GetGeometryCount(g.handle))
}

// SubGeometry returns the i-th child geometry as a borrowed view. The child
// shares the parent's native storage and stays valid only as long as the
// parent.
func (g *Geometry) SubGeometry(i int) *Geometry {
	return &Geometry{handle: C.OGR_G_GetGeometryRef(g.handle, C.int(i))}
}

// PointCount returns the number of coordinate points. Only leaf, line-like
// geometries carry points; container geometries report zero.
func (g *Geometry) PointCount() int {
	return int(C.OGR_G_GetPointCount(g.handle))
}

// Point returns the i-th coordinate triple.
func (g *Geometry) Point(i int) (x, y, z float64) {
	var cx, cy, cz C.double
	C.OGR_G_GetPoint(g.handle, C.int(i), &cx, &cy, &cz)
	return float64(cx), float64(cy), float64(cz)
}

// Equal reports exact structural equality with other: same type, same
// topology, bit-for-bit identical coordinates.
func (g *Geometry) Equal(other *Geometry) bool {
	return C.OGR_G_Equals(g.handle, other.handle) != 0
}

// WKT returns the geometry's WKT representation.
func (g *Geometry) WKT() (string, error) {
	var cwkt *C.char
	if errcode := C.OGR_G_ExportToWkt(g.handle, &cwkt); errcode != C.OGRERR_NONE {
		return "", lastEngineError("OGR_G_ExportToWkt")
	}
	defer C.CPLFree(unsafe.Pointer(cwkt))
	return C.GoString(cwkt), nil
}
