// Package limits provides centralized size constants and validation functions
// for PNG buffers. This package ensures consistent size enforcement across all
// components of the pngopt implementation.
//
// # Size Hierarchy
//
// The package defines a hierarchy of limits that support different stages of
// PNG processing:
//
//   - MinEncodedBytes (57 bytes): The smallest structurally complete PNG
//     (signature, IHDR, one IDAT and IEND). Shorter buffers cannot parse
//     and are rejected before chunk iteration begins.
//
//   - MaxEncodedBytes (1GB): The cap on encoded input accepted for
//     optimization. All untrusted input is validated against this limit
//     before further processing.
//
//   - MaxDecodedBytes (1GB): The cap on inflated scanline data. The IDAT
//     stream is decompressed under this bound so a small encoded buffer
//     cannot expand into an arbitrarily large allocation (decompression
//     bomb defense).
//
//   - MaxChunkBytes (2^31-1): The PNG specification's limit on a single
//     chunk's declared data length.
//
// # Validation Functions
//
// Each validation function checks for empty buffers and limit violations:
//
//	err := limits.ValidateEncodedSize(data)
//	if err != nil {
//	    // Handle validation error (ErrBufferEmpty or ErrBufferTooLarge)
//	}
//
// For custom limits, use the generic ValidateBufferSize function:
//
//	err := limits.ValidateBufferSize(data, 1<<20)
//
// # Error Types
//
// The package provides structured errors with context:
//
//   - ErrBufferEmpty: Returned when an empty or nil buffer is provided
//   - ErrBufferTooLarge: Returned when a buffer exceeds the specified limit
//
// # Security Considerations
//
// The MaxDecodedBytes limit is the primary defense against zlib
// decompression bombs embedded in IDAT streams. All inflation performed by
// the optimizer is bounded by it.
package limits
