package gdal

/*
#include "cpl_error.h"

static void pushQuietErrorHandler() {
	CPLPushErrorHandler(CPLQuietErrorHandler);
}
*/
import "C"

// The engine records the outcome of every call in a single process-wide
// diagnostic slot, overwritten on each call. LastErrorMessage and
// SuppressErrorLog expose that channel; engine-calling functions in this
// package hold enginemu across the call and the follow-up query so the
// message they report belongs to their own call.

// LastErrorMessage returns the message most recently recorded on the
// engine's diagnostic channel, or the empty string if none.
func LastErrorMessage() string {
	return C.GoString(C.CPLGetLastErrorMsg())
}

// ResetError clears the engine's diagnostic channel.
func ResetError() {
	C.CPLErrorReset()
}

// SuppressErrorLog installs the engine's quiet error handler, silencing
// diagnostic log output until the returned function is called. Scopes must
// be unwound in strict LIFO order:
//
//	defer gdal.SuppressErrorLog()()
//
// Suppression only affects logging; LastErrorMessage still reports failures
// recorded while suppressed.
func SuppressErrorLog() (restore func()) {
	C.pushQuietErrorHandler()
	return func() {
		C.CPLPopErrorHandler()
	}
}

// lastEngineError builds the error for a failed engine call, sourcing the
// message from the diagnostic channel. Callers that compete for the channel
// hold enginemu across the failing call and this query.
func lastEngineError(function string) error {
	msg := C.GoString(C.CPLGetLastErrorMsg())
	if msg == "" {
		msg = "unknown failure"
	}
	return &EngineError{Function: function, Message: msg}
}
