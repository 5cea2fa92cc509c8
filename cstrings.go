package gdal

/*
#include <stdlib.h>

#cgo pkg-config: gdal
*/
import "C"
import (
	"strings"
	"unsafe"
)

// cString converts s to a C string, rejecting embedded NUL bytes rather
// than letting them truncate the value on the native side. The caller owns
// the returned C memory.
func cString(s string) (*C.char, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, &EncodingError{Arg: s}
	}
	return C.CString(s), nil
}

// cStringArray is a NUL-terminated array of C strings. The terminating nil
// entry is part of the slice.
type cStringArray []*C.char

func (ca cStringArray) free() {
	for _, str := range ca {
		C.free(unsafe.Pointer(str))
	}
}

// cPointer returns the array in the form expected by CSL-style engine
// arguments, or nil for an empty array.
func (ca cStringArray) cPointer() **C.char {
	if len(ca) <= 1 { // nil terminated, must be at least len==2 to be not empty
		return nil
	}
	return (**C.char)(unsafe.Pointer(&ca[0]))
}

// newCStringArray marshals in into a NUL-terminated C string array. Any
// entry containing an embedded NUL fails the whole conversion and releases
// the entries converted so far.
func newCStringArray(in []string) (cStringArray, error) {
	if len(in) == 0 {
		return nil, nil
	}
	arr := make(cStringArray, 0, len(in)+1)
	for _, s := range in {
		cs, err := cString(s)
		if err != nil {
			arr.free()
			return nil, err
		}
		arr = append(arr, cs)
	}
	return append(arr, nil), nil
}
