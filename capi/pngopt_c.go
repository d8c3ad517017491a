package main

/*
#include <stdint.h>
#include <stddef.h>
#include <stdlib.h>

typedef struct CompressedPNG {
	uint8_t *data;
	size_t size;
} CompressedPNG;
*/
import "C"

import (
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/pngopt"
)

// This is the main package required for building as c-shared
// It provides a C-compatible wrapper around the Go PNG optimizer

func main() {} // Required for c-shared build mode

//export optimize_png
func optimize_png(data *C.uint8_t, size C.size_t) C.CompressedPNG {
	return optimizeBoundary(data, size, pngopt.DefaultPreset)
}

//export optimize_png_preset
func optimize_png_preset(data *C.uint8_t, size C.size_t, preset C.int) C.CompressedPNG {
	return optimizeBoundary(data, size, int(preset))
}

// nullResult is the sentinel descriptor: no buffer was allocated, the
// caller has nothing to free.
func nullResult() C.CompressedPNG {
	return C.CompressedPNG{data: nil, size: 0}
}

// optimizeBoundary runs one complete boundary call: borrow the caller's
// bytes, delegate to the optimizer, marshal the result into C-owned memory.
// Every failure, including a panic below us, collapses to the null
// descriptor; nothing unwinds across the C boundary.
func optimizeBoundary(data *C.uint8_t, size C.size_t, preset int) (result C.CompressedPNG) {
	result = nullResult()
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"function": "optimizeBoundary",
				"panic":    r,
			}).Error("Recovered panic during optimization")
			result = nullResult()
		}
	}()

	// Borrowed view over caller memory. The caller guarantees the range
	// [data, data+size) stays valid and unmodified for the call; the view
	// is never retained past it.
	var input []byte
	if data != nil && size > 0 {
		input = unsafe.Slice((*byte)(unsafe.Pointer(data)), int(size))
	}

	opts := pngopt.NewOptions()
	opts.Preset = preset

	out, err := pngopt.Optimize(input, opts)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "optimizeBoundary",
			"in_size":  len(input),
			"error":    err.Error(),
		}).Error("Failed to optimize PNG buffer")
		return nullResult()
	}

	return marshalResult(out)
}

// marshalResult moves an optimized buffer into memory the caller frees with
// C free(). This is the single place C-owned memory is allocated: the copy
// happens only after the allocation succeeds, and on any failure nothing is
// left allocated. calloc rather than malloc so a failed allocation is
// observable as NULL (cgo's C.malloc aborts the process instead).
func marshalResult(out []byte) C.CompressedPNG {
	n := len(out)
	buf := C.calloc(C.size_t(n), 1)
	if buf == nil {
		logrus.WithFields(logrus.Fields{
			"function": "marshalResult",
			"size":     n,
		}).Error("Failed to allocate result buffer")
		return nullResult()
	}
	if n > 0 {
		copy(unsafe.Slice((*byte)(buf), n), out)
	}
	return C.CompressedPNG{
		data: (*C.uint8_t)(buf),
		size: C.size_t(n),
	}
}

// The helpers below give tests a cgo-free way to drive the boundary; test
// files cannot import "C" themselves.

// callOptimize invokes optimize_png on a Go slice, returning the raw
// descriptor fields.
func callOptimize(input []byte) (unsafe.Pointer, int) {
	var ptr *C.uint8_t
	if len(input) > 0 {
		ptr = (*C.uint8_t)(unsafe.Pointer(&input[0]))
	}
	res := optimize_png(ptr, C.size_t(len(input)))
	return unsafe.Pointer(res.data), int(res.size)
}

// callOptimizePreset invokes optimize_png_preset on a Go slice.
func callOptimizePreset(input []byte, preset int) (unsafe.Pointer, int) {
	var ptr *C.uint8_t
	if len(input) > 0 {
		ptr = (*C.uint8_t)(unsafe.Pointer(&input[0]))
	}
	res := optimize_png_preset(ptr, C.size_t(len(input)), C.int(preset))
	return unsafe.Pointer(res.data), int(res.size)
}

// resultBytes copies a descriptor's buffer back into Go memory.
func resultBytes(ptr unsafe.Pointer, size int) []byte {
	return C.GoBytes(ptr, C.int(size))
}

// freeResult releases a descriptor's buffer with the same primitive a C
// caller would use.
func freeResult(ptr unsafe.Pointer) {
	C.free(ptr)
}
