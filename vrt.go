package gdal

/*
#include "gdal.h"
#include "gdal_utils.h"
#include "cpl_error.h"
#include <stdlib.h>
*/
import "C"
import (
	"unsafe"
)

// BuildVRTOptions wraps the engine's native option object for the virtual
// mosaic builder. It is built once from gdalbuildvrt-style argument strings
// and must be released with Close exactly once; Close runs on every exit
// path when deferred, whether or not the build succeeded.
//
// A BuildVRTOptions is exclusively owned and must not be shared across
// concurrent builds.
type BuildVRTOptions struct {
	cOptions *C.GDALBuildVRTOptions
}

// NewBuildVRTOptions constructs the native option object from an ordered
// list of argument strings, e.g. []string{"-resolution", "highest"}.
// Arguments containing an embedded NUL byte fail with an error matching
// ErrEncoding before the native boundary is crossed.
func NewBuildVRTOptions(args []string) (*BuildVRTOptions, error) {
	cargs, err := newCStringArray(args)
	if err != nil {
		return nil, err
	}
	defer cargs.free()

	enginemu.Lock()
	defer enginemu.Unlock()
	C.CPLErrorReset()

	// The engine copies the argument strings; cargs is safe to free on
	// return.
	opts := C.GDALBuildVRTOptionsNew(cargs.cPointer(), nil)
	if opts == nil {
		return nil, lastEngineError("GDALBuildVRTOptionsNew")
	}
	return &BuildVRTOptions{cOptions: opts}, nil
}

// Close releases the native option object. Further calls are no-ops.
func (o *BuildVRTOptions) Close() {
	if o.cOptions != nil {
		C.GDALBuildVRTOptionsFree(o.cOptions)
		o.cOptions = nil
	}
}

// sourceMode tags the two mutually exclusive ways of addressing mosaic
// sources at the engine boundary.
type sourceMode int

const (
	byHandle sourceMode = iota
	byName
)

// sourceSpec is the resolved source selection for one build: exactly one of
// datasets or names is populated, matching mode. Constructed only by
// BuildVRT and BuildVRTFromNames so the two addressing modes can never be
// set together.
type sourceSpec struct {
	mode     sourceMode
	datasets []*Dataset
	names    []string
}

// BuildVRT composes the given open datasets into a single virtual mosaic
// without copying pixel data. dst is the destination identifier for the
// mosaic; if empty, the mosaic is built in memory rather than persisted.
// opts may be nil for engine defaults.
//
// The input datasets are borrowed: they must stay open while the returned
// mosaic is in use, and remain owned by the caller. The returned Dataset is
// exclusively owned by the caller and must be released with Close.
//
// An empty datasets slice is passed through to the engine, whose behavior
// for zero sources is engine-defined.
func BuildVRT(dst string, datasets []*Dataset, opts *BuildVRTOptions) (*Dataset, error) {
	return buildVRT(dst, sourceSpec{mode: byHandle, datasets: datasets}, opts)
}

// BuildVRTFromNames composes a virtual mosaic from source identifiers
// (paths or names) that the engine opens itself, rather than from
// already-open datasets. See BuildVRT for the destination and options
// contract.
func BuildVRTFromNames(dst string, names []string, opts *BuildVRTOptions) (*Dataset, error) {
	return buildVRT(dst, sourceSpec{mode: byName, names: names}, opts)
}

func buildVRT(dst string, spec sourceSpec, opts *BuildVRTOptions) (*Dataset, error) {
	registerAll()

	// An absent destination instructs the engine to build the mosaic in
	// memory instead of persisting it.
	var cdst *C.char
	if dst != "" {
		var err error
		cdst, err = cString(dst)
		if err != nil {
			return nil, err
		}
		defer C.free(unsafe.Pointer(cdst))
	}

	var cOptions *C.GDALBuildVRTOptions
	if opts != nil {
		cOptions = opts.cOptions
	}

	// The engine accepts exactly one of the two source arrays; the other
	// must be null, with the count describing whichever is present.
	var (
		srcCount   C.int
		srcHandles *C.GDALDatasetH
		srcNames   **C.char
	)
	switch spec.mode {
	case byHandle:
		if len(spec.datasets) > 0 {
			handles := make([]C.GDALDatasetH, len(spec.datasets))
			for i, ds := range spec.datasets {
				handles[i] = ds.handle
			}
			srcHandles = &handles[0]
			srcCount = C.int(len(handles))
		}
	case byName:
		cnames, err := newCStringArray(spec.names)
		if err != nil {
			return nil, err
		}
		defer cnames.free()
		srcNames = cnames.cPointer()
		srcCount = C.int(len(spec.names))
	}

	enginemu.Lock()
	defer enginemu.Unlock()
	C.CPLErrorReset()

	hndl := C.GDALBuildVRT(cdst, srcCount, srcHandles, srcNames, cOptions, nil)
	if hndl == nil {
		return nil, lastEngineError("GDALBuildVRT")
	}
	logger.Debug("built virtual mosaic", "destination", dst, "sources", int(srcCount))
	return &Dataset{handle: hndl}, nil
}
