// Package gdal provides Go bindings to the GDAL/OGR geospatial library.
//
// The package wraps native GDAL handles behind small owning Go types and
// exposes the pieces needed to compose raster mosaics and validate vector
// geometry:
//
//   - Dataset: an opened raster source (Open, Create, Close)
//   - BuildVRT / BuildVRTFromNames: compose several sources into one
//     virtual mosaic without copying pixel data
//   - BuildVRTOptions: native option object for the mosaic builder
//   - Geometry: OGR geometry tree with type, name, child and point accessors
//   - EquivalentGeometries: structural geometry comparison under a
//     floating-point tolerance
//
// # Quick Start
//
// Build an in-memory mosaic from already-open datasets:
//
//	a, err := gdal.Open("north.tif")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer a.Close()
//	b, err := gdal.Open("south.tif")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	vrt, err := gdal.BuildVRT("", []*gdal.Dataset{a, b}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer vrt.Close()
//
// Or let the engine resolve source identifiers itself, persisting the
// mosaic to disk:
//
//	opts, err := gdal.NewBuildVRTOptions([]string{"-resolution", "highest"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer opts.Close()
//
//	vrt, err := gdal.BuildVRTFromNames("mosaic.vrt", []string{"north.tif", "south.tif"}, opts)
//
// # Error Handling
//
// Failures are typed: strings carrying an embedded NUL byte are rejected
// with an error matching ErrEncoding before the native boundary is crossed,
// and engine failures surface as errors matching ErrEngine carrying the
// engine's own diagnostic text verbatim. Nothing is retried.
//
// # Resource Ownership
//
// Every type that wraps a native object (Dataset, BuildVRTOptions, owned
// Geometry) must be released with Close exactly once. Datasets passed to
// BuildVRT are borrowed; the returned mosaic is exclusively owned by the
// caller.
//
// # Concurrency
//
// The native engine keeps a process-wide last-error slot. Calls into the
// engine are serialized internally so that an error message can always be
// attributed to the call that produced it. BuildVRTOptions values are not
// shareable across concurrent builds; construct one per build.
package gdal
