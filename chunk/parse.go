package chunk

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/opd-ai/pngopt/limits"
)

// Parse decodes a complete PNG byte buffer into its chunk sequence.
// Every chunk's CRC is verified and the overall structure is validated
// (IHDR first, contiguous IDAT run, single trailing IEND). Chunk data
// slices alias the input buffer; callers must not mutate data while the
// returned chunks are in use.
func Parse(data []byte) ([]Chunk, error) {
	if len(data) < len(Signature) || !bytes.Equal(data[:len(Signature)], Signature) {
		return nil, ErrBadSignature
	}

	var chunks []Chunk
	off := len(Signature)
	for off < len(data) {
		if len(data)-off < 12 {
			return nil, fmt.Errorf("%w: %d trailing bytes at offset %d", ErrTruncated, len(data)-off, off)
		}
		length := binary.BigEndian.Uint32(data[off:])
		if uint64(length) > limits.MaxChunkBytes {
			return nil, fmt.Errorf("%w: declared length %d at offset %d", ErrTruncated, length, off)
		}
		typeCode := data[off+4 : off+8]
		if !validTypeCode(typeCode) {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrBadType, typeCode, off+4)
		}

		end := off + 8 + int(length)
		if end+4 > len(data) {
			return nil, fmt.Errorf("%w: %s declares %d bytes past end of buffer", ErrTruncated, typeCode, length)
		}
		want := binary.BigEndian.Uint32(data[end:])
		got := crc32.ChecksumIEEE(data[off+4 : end])
		if want != got {
			return nil, fmt.Errorf("%w: %s has CRC %08x, want %08x", ErrBadCRC, typeCode, got, want)
		}

		chunks = append(chunks, Chunk{Type: string(typeCode), Data: data[off+8 : end]})
		off = end + 4

		// Everything after IEND is garbage; stop rather than mis-parse it.
		if chunks[len(chunks)-1].Type == TypeIEND {
			break
		}
	}
	if off != len(data) {
		return nil, fmt.Errorf("%w: %d bytes after IEND", ErrStructure, len(data)-off)
	}

	if err := validateStructure(chunks); err != nil {
		return nil, err
	}
	return chunks, nil
}

// Serialize encodes a chunk sequence back into a complete PNG byte buffer,
// recomputing each chunk's length and CRC framing.
func Serialize(chunks []Chunk) []byte {
	total := len(Signature)
	for _, c := range chunks {
		total += 12 + len(c.Data)
	}

	out := make([]byte, 0, total)
	out = append(out, Signature...)
	var header [8]byte
	var trailer [4]byte
	for _, c := range chunks {
		binary.BigEndian.PutUint32(header[:4], uint32(len(c.Data)))
		copy(header[4:], c.Type)
		out = append(out, header[:]...)
		out = append(out, c.Data...)

		crc := crc32.NewIEEE()
		crc.Write(header[4:])
		crc.Write(c.Data)
		binary.BigEndian.PutUint32(trailer[:], crc.Sum32())
		out = append(out, trailer[:]...)
	}
	return out
}

// IDAT returns the concatenated data of all IDAT chunks: the complete zlib
// stream holding the image's filtered scanlines.
func IDAT(chunks []Chunk) []byte {
	var n int
	for _, c := range chunks {
		if c.Type == TypeIDAT {
			n += len(c.Data)
		}
	}
	out := make([]byte, 0, n)
	for _, c := range chunks {
		if c.Type == TypeIDAT {
			out = append(out, c.Data...)
		}
	}
	return out
}

// ReplaceIDAT returns a copy of chunks with the IDAT run collapsed into a
// single IDAT chunk carrying stream. All other chunks keep their positions.
func ReplaceIDAT(chunks []Chunk, stream []byte) []Chunk {
	out := make([]Chunk, 0, len(chunks))
	replaced := false
	for _, c := range chunks {
		if c.Type == TypeIDAT {
			if !replaced {
				out = append(out, Chunk{Type: TypeIDAT, Data: stream})
				replaced = true
			}
			continue
		}
		out = append(out, c)
	}
	return out
}
