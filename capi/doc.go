// Package main provides the C API for pngopt, enabling cross-language use
// of the Go PNG optimizer from C applications and other language bindings.
//
// # Overview
//
// The capi package exposes a single-function foreign boundary: a caller
// hands in a raw PNG byte buffer, and receives back a re-optimized PNG in
// freshly allocated memory it owns. Neither side shares a runtime,
// allocator, or memory-safety model with the other; the contract below is
// the entire interface.
//
// # Build Instructions
//
// To build as a C shared library:
//
//	go build -buildmode=c-shared -o libpngopt.so ./capi/
//
// This generates:
//   - libpngopt.so: The shared library
//   - libpngopt.h: Auto-generated C header file with the CompressedPNG
//     struct and function declarations
//
// # C API Usage
//
//	#include "libpngopt.h"
//	#include <stdlib.h>
//
//	CompressedPNG result = optimize_png(buffer, buffer_size);
//	if (result.data == NULL) {
//	    // Optimization failed; nothing was allocated, nothing to free.
//	    return 1;
//	}
//	fwrite(result.data, 1, result.size, out);
//	free(result.data);
//
// An explicit effort level (0 = fastest, 6 = maximum, out-of-range values
// clamped) is available through the second entry point:
//
//	CompressedPNG result = optimize_png_preset(buffer, buffer_size, 4);
//
// # Input Contract
//
// The caller guarantees that data points to memory valid for reads of
// exactly size bytes for the full duration of the call, and that no other
// party mutates that range while the call runs. These preconditions are
// documented, not checked; violating them is undefined behavior. The
// buffer is only borrowed: it is never written to and never retained after
// the call returns.
//
// Malformed PNG data is not a precondition violation. It is an ordinary
// failure and yields the null descriptor.
//
// # Ownership Transfer
//
// On success, result.data is allocated with the C allocator and ownership
// transfers to the caller, who MUST release it with C's free(). Exactly
// result.size bytes are allocated and initialized. On failure, result.data
// is NULL and result.size is zero: no memory was allocated and no release
// action is needed or permitted.
//
// # Error Handling
//
// The null descriptor is the sole error channel. Optimization failures and
// allocation failures are not distinguished, no status codes or errno-style
// side channels exist, and no Go panic ever unwinds across the boundary.
// Failure detail is logged internally via logrus and does not cross to the
// caller.
//
// # Thread Safety
//
// Calls hold no shared mutable state and may run concurrently from
// independent threads on independent buffers. Each call blocks for the
// full duration of its optimization; there is no cancellation mechanism.
//
// # Limitations
//
//   - The package must be built as "package main" with a main() function
//     to work as a c-shared library
//   - No streaming or incremental operation; each call processes one
//     complete in-memory PNG
//
// # Files
//
//   - pngopt_c.go: The boundary functions and result marshaling
//   - doc.go: This documentation file
package main
