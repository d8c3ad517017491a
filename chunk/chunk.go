// Package chunk implements the PNG container format: the file signature and
// the length/type/data/CRC chunk framing defined by the PNG specification.
// It provides parsing with structural validation, serialization, and the
// chunk classification rules the optimizer relies on when deciding what may
// be dropped or rewritten.
package chunk

import (
	"errors"
	"fmt"
)

// Signature is the 8-byte sequence that opens every PNG file.
var Signature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Critical chunk types defined by the PNG specification.
const (
	TypeIHDR = "IHDR"
	TypePLTE = "PLTE"
	TypeIDAT = "IDAT"
	TypeIEND = "IEND"
)

var (
	// ErrBadSignature indicates the buffer does not begin with the PNG signature
	ErrBadSignature = errors.New("not a PNG: bad signature")

	// ErrTruncated indicates the buffer ends mid-chunk
	ErrTruncated = errors.New("truncated chunk")

	// ErrBadCRC indicates a chunk failed its CRC check
	ErrBadCRC = errors.New("chunk CRC mismatch")

	// ErrBadType indicates a chunk type code contains non-letter bytes
	ErrBadType = errors.New("invalid chunk type")

	// ErrStructure indicates the chunk sequence violates PNG ordering rules
	ErrStructure = errors.New("invalid chunk structure")
)

// Chunk is a single PNG chunk: a four-letter type code and its data bytes.
// The length and CRC of the wire framing are derived, never stored.
type Chunk struct {
	Type string
	Data []byte
}

// Ancillary reports whether the chunk is ancillary (lowercase first letter).
// Ancillary chunks are not required to decode the image.
func (c Chunk) Ancillary() bool {
	return len(c.Type) == 4 && c.Type[0] >= 'a' && c.Type[0] <= 'z'
}

// SafeToCopy reports whether the chunk carries the safe-to-copy property bit
// (lowercase fourth letter).
func (c Chunk) SafeToCopy() bool {
	return len(c.Type) == 4 && c.Type[3] >= 'a' && c.Type[3] <= 'z'
}

// droppable lists ancillary chunks that carry no rendering information.
// Removing them never changes decoded pixels or how a viewer displays them.
// Chunks like gAMA, iCCP or sRGB affect rendering and are always preserved.
var droppable = map[string]struct{}{
	"tEXt": {},
	"zTXt": {},
	"iTXt": {},
	"tIME": {},
	"eXIf": {},
}

// Droppable reports whether a chunk type is pure metadata that the optimizer
// may remove without affecting decoded output.
func Droppable(chunkType string) bool {
	_, ok := droppable[chunkType]
	return ok
}

// StripMetadata returns a copy of chunks with droppable metadata removed.
// Critical chunks and rendering-relevant ancillary chunks are kept in order.
func StripMetadata(chunks []Chunk) []Chunk {
	out := make([]Chunk, 0, len(chunks))
	for _, c := range chunks {
		if Droppable(c.Type) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// validTypeCode reports whether all four bytes of a type code are ASCII letters.
func validTypeCode(code []byte) bool {
	if len(code) != 4 {
		return false
	}
	for _, b := range code {
		lower := b | 0x20
		if lower < 'a' || lower > 'z' {
			return false
		}
	}
	return true
}

// validateStructure enforces the ordering rules every well-formed PNG obeys:
// IHDR first (13 data bytes), exactly one IEND last, at least one IDAT, and
// all IDAT chunks forming one contiguous run.
func validateStructure(chunks []Chunk) error {
	if len(chunks) < 3 {
		return fmt.Errorf("%w: %d chunks, need at least IHDR, IDAT, IEND", ErrStructure, len(chunks))
	}
	if chunks[0].Type != TypeIHDR {
		return fmt.Errorf("%w: first chunk is %s, want IHDR", ErrStructure, chunks[0].Type)
	}
	if len(chunks[0].Data) != 13 {
		return fmt.Errorf("%w: IHDR has %d data bytes, want 13", ErrStructure, len(chunks[0].Data))
	}
	last := chunks[len(chunks)-1]
	if last.Type != TypeIEND {
		return fmt.Errorf("%w: last chunk is %s, want IEND", ErrStructure, last.Type)
	}
	if len(last.Data) != 0 {
		return fmt.Errorf("%w: IEND carries %d data bytes", ErrStructure, len(last.Data))
	}

	firstIDAT, lastIDAT, idatCount := -1, -1, 0
	for i, c := range chunks {
		switch c.Type {
		case TypeIHDR:
			if i != 0 {
				return fmt.Errorf("%w: duplicate IHDR at index %d", ErrStructure, i)
			}
		case TypeIEND:
			if i != len(chunks)-1 {
				return fmt.Errorf("%w: IEND at index %d precedes other chunks", ErrStructure, i)
			}
		case TypeIDAT:
			if firstIDAT == -1 {
				firstIDAT = i
			}
			lastIDAT = i
			idatCount++
		}
	}
	if idatCount == 0 {
		return fmt.Errorf("%w: no IDAT chunk", ErrStructure)
	}
	if lastIDAT-firstIDAT+1 != idatCount {
		return fmt.Errorf("%w: IDAT chunks are not contiguous", ErrStructure)
	}
	return nil
}
