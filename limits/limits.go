// Package limits provides centralized buffer size limits for PNG processing.
// This ensures consistent validation across different components of the system.
package limits

import (
	"errors"
	"fmt"
)

const (
	// MinEncodedBytes is the smallest byte count a structurally complete PNG
	// can occupy: the 8-byte signature plus IHDR, one IDAT and IEND chunks,
	// each chunk carrying a 12-byte length/type/CRC envelope
	MinEncodedBytes = 8 + (12 + 13) + 12 + 12

	// MaxEncodedBytes is the default cap on an encoded PNG accepted for
	// optimization. This prevents memory exhaustion from oversized or
	// hostile inputs (1GB limit)
	MaxEncodedBytes = 1 << 30

	// MaxDecodedBytes is the default cap on the inflated scanline data of a
	// single image. Filtered scanlines for a W x H image occupy roughly
	// H*(1+W*bytesPerPixel), so this bounds the pixel dimensions indirectly
	MaxDecodedBytes = 1 << 30

	// MaxChunkBytes is the PNG specification's limit on a single chunk's
	// data length (2^31 - 1). Lengths above this are a container violation
	MaxChunkBytes = 1<<31 - 1
)

var (
	// ErrBufferEmpty indicates an empty buffer was provided
	ErrBufferEmpty = errors.New("empty buffer")

	// ErrBufferTooLarge indicates buffer exceeds maximum size
	ErrBufferTooLarge = errors.New("buffer too large")
)

// ValidateBufferSize validates a buffer against the specified maximum size.
// Returns an error with context including the actual and maximum sizes.
func ValidateBufferSize(data []byte, maxSize int64) error {
	if len(data) == 0 {
		return ErrBufferEmpty
	}
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrBufferTooLarge, len(data), maxSize)
	}
	return nil
}

// ValidateEncodedSize validates an encoded PNG buffer against MaxEncodedBytes.
// Returns an error with context if the buffer is empty or exceeds the limit.
func ValidateEncodedSize(data []byte) error {
	if len(data) == 0 {
		return ErrBufferEmpty
	}
	if int64(len(data)) > MaxEncodedBytes {
		return fmt.Errorf("%w: encoded size %d exceeds limit %d", ErrBufferTooLarge, len(data), int64(MaxEncodedBytes))
	}
	return nil
}

// ValidateDecodedSize validates an inflated scanline byte count against
// MaxDecodedBytes. Returns an error with context if the count exceeds the limit.
func ValidateDecodedSize(n int64) error {
	if n > MaxDecodedBytes {
		return fmt.Errorf("%w: decoded size %d exceeds limit %d", ErrBufferTooLarge, n, int64(MaxDecodedBytes))
	}
	return nil
}
