package gdal

/*
#include "gdal.h"
#include "cpl_conv.h"
#include "cpl_error.h"
#include <stdlib.h>
*/
import "C"
import (
	"errors"
	"fmt"
	"sync"
	"unsafe"
)

// enginemu serializes calls into the native engine. The engine's diagnostic
// channel is process-wide and last-write-wins; holding the mutex across the
// call and the follow-up error query keeps messages attributable.
var enginemu sync.Mutex

var registerOnce sync.Once

// registerAll loads the engine's format drivers. Safe and cheap to call
// before every entry point.
func registerAll() {
	registerOnce.Do(func() {
		C.GDALAllRegister()
	})
}

// Dataset wraps an opened raster data source. The zero value is not usable;
// obtain a Dataset from Open, Create, BuildVRT or BuildVRTFromNames.
//
// The owner of a Dataset must release it with Close exactly once. Closing
// also releases the underlying native resource.
type Dataset struct {
	handle C.GDALDatasetH
}

// Open opens the named raster source read-only unless configured otherwise
// through options. name may be a file path or any identifier the engine
// resolves (e.g. a /vsixxx path or inline VRT XML).
func Open(name string, opts ...OpenOption) (*Dataset, error) {
	registerAll()

	oo := openOptions{}
	for _, opt := range opts {
		opt(&oo)
	}

	cname, err := cString(name)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cname))

	cdrivers, err := newCStringArray(oo.drivers)
	if err != nil {
		return nil, err
	}
	defer cdrivers.free()

	copts, err := newCStringArray(oo.options)
	if err != nil {
		return nil, err
	}
	defer copts.free()

	flags := C.uint(C.GDAL_OF_RASTER | C.GDAL_OF_VERBOSE_ERROR)
	if oo.update {
		flags |= C.GDAL_OF_UPDATE
	} else {
		flags |= C.GDAL_OF_READONLY
	}
	if oo.shared {
		flags |= C.GDAL_OF_SHARED
	}

	enginemu.Lock()
	defer enginemu.Unlock()
	C.CPLErrorReset()

	hndl := C.GDALOpenEx(cname, flags, cdrivers.cPointer(), copts.cPointer(), nil)
	if hndl == nil {
		return nil, lastEngineError("GDALOpenEx")
	}
	logger.Debug("opened dataset", "name", name)
	return &Dataset{handle: hndl}, nil
}

// Create creates a new dataset with nBands 8-bit bands of sizeX by sizeY
// pixels using the named driver (e.g. "GTiff", "MEM"). name is the
// destination identifier and may be empty for in-memory drivers.
func Create(driver, name string, nBands, sizeX, sizeY int) (*Dataset, error) {
	registerAll()

	cdriver, err := cString(driver)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cdriver))

	cname, err := cString(name)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cname))

	enginemu.Lock()
	defer enginemu.Unlock()
	C.CPLErrorReset()

	drv := C.GDALGetDriverByName(cdriver)
	if drv == nil {
		return nil, fmt.Errorf("unknown driver %q", driver)
	}
	hndl := C.GDALCreate(drv, cname, C.int(sizeX), C.int(sizeY), C.int(nBands), C.GDT_Byte, nil)
	if hndl == nil {
		return nil, lastEngineError("GDALCreate")
	}
	return &Dataset{handle: hndl}, nil
}

// Close releases the dataset and its native resource. Pending writes are
// flushed. Calling Close a second time is an error.
func (ds *Dataset) Close() error {
	if ds.handle == nil {
		return errors.New("close called more than once")
	}
	enginemu.Lock()
	defer enginemu.Unlock()
	C.GDALClose(ds.handle)
	ds.handle = nil
	return nil
}

// RasterCount returns the number of raster bands.
func (ds *Dataset) RasterCount() int {
	return int(C.GDALGetRasterCount(ds.handle))
}

// Size returns the dataset's width and height in pixels.
func (ds *Dataset) Size() (x, y int) {
	return int(C.GDALGetRasterXSize(ds.handle)), int(C.GDALGetRasterYSize(ds.handle))
}

// GeoTransform returns the affine transform mapping pixel coordinates to
// georeferenced coordinates.
func (ds *Dataset) GeoTransform() ([6]float64, error) {
	var gt [6]C.double
	enginemu.Lock()
	defer enginemu.Unlock()
	if C.GDALGetGeoTransform(ds.handle, &gt[0]) != C.CE_None {
		return [6]float64{}, lastEngineError("GDALGetGeoTransform")
	}
	var ret [6]float64
	for i := range gt {
		ret[i] = float64(gt[i])
	}
	return ret, nil
}

// SetGeoTransform sets the affine transform mapping pixel coordinates to
// georeferenced coordinates.
func (ds *Dataset) SetGeoTransform(gt [6]float64) error {
	var cgt [6]C.double
	for i := range gt {
		cgt[i] = C.double(gt[i])
	}
	enginemu.Lock()
	defer enginemu.Unlock()
	if C.GDALSetGeoTransform(ds.handle, &cgt[0]) != C.CE_None {
		return lastEngineError("GDALSetGeoTransform")
	}
	return nil
}

// Handle returns the underlying native dataset handle as an escape hatch
// for interoperating with other bindings. The handle remains owned by ds.
func (ds *Dataset) Handle() unsafe.Pointer {
	return unsafe.Pointer(ds.handle)
}
