package chunk

import (
	"encoding/binary"
	"fmt"
)

// Color types defined by the PNG specification.
const (
	ColorGrayscale      = 0
	ColorTruecolor      = 2
	ColorPaletted       = 3
	ColorGrayscaleAlpha = 4
	ColorTruecolorAlpha = 6
)

// Header is the decoded IHDR payload.
type Header struct {
	Width       uint32
	Height      uint32
	BitDepth    uint8
	ColorType   uint8
	Compression uint8
	Filter      uint8
	Interlace   uint8
}

// channelCounts maps a color type to its sample count per pixel.
var channelCounts = map[uint8]int{
	ColorGrayscale:      1,
	ColorTruecolor:      3,
	ColorPaletted:       1,
	ColorGrayscaleAlpha: 2,
	ColorTruecolorAlpha: 4,
}

// validDepths maps a color type to its legal bit depths.
var validDepths = map[uint8][]uint8{
	ColorGrayscale:      {1, 2, 4, 8, 16},
	ColorTruecolor:      {8, 16},
	ColorPaletted:       {1, 2, 4, 8},
	ColorGrayscaleAlpha: {8, 16},
	ColorTruecolorAlpha: {8, 16},
}

// ParseHeader decodes and validates an IHDR chunk.
func ParseHeader(c Chunk) (Header, error) {
	if c.Type != TypeIHDR {
		return Header{}, fmt.Errorf("%w: ParseHeader on %s chunk", ErrStructure, c.Type)
	}
	if len(c.Data) != 13 {
		return Header{}, fmt.Errorf("%w: IHDR has %d data bytes, want 13", ErrStructure, len(c.Data))
	}

	h := Header{
		Width:       binary.BigEndian.Uint32(c.Data[0:4]),
		Height:      binary.BigEndian.Uint32(c.Data[4:8]),
		BitDepth:    c.Data[8],
		ColorType:   c.Data[9],
		Compression: c.Data[10],
		Filter:      c.Data[11],
		Interlace:   c.Data[12],
	}
	if h.Width == 0 || h.Height == 0 {
		return Header{}, fmt.Errorf("%w: zero image dimension %dx%d", ErrStructure, h.Width, h.Height)
	}
	if h.Width > 1<<31-1 || h.Height > 1<<31-1 {
		return Header{}, fmt.Errorf("%w: dimension %dx%d exceeds PNG maximum", ErrStructure, h.Width, h.Height)
	}
	depths, ok := validDepths[h.ColorType]
	if !ok {
		return Header{}, fmt.Errorf("%w: unknown color type %d", ErrStructure, h.ColorType)
	}
	depthOK := false
	for _, d := range depths {
		if h.BitDepth == d {
			depthOK = true
			break
		}
	}
	if !depthOK {
		return Header{}, fmt.Errorf("%w: bit depth %d invalid for color type %d", ErrStructure, h.BitDepth, h.ColorType)
	}
	if h.Compression != 0 {
		return Header{}, fmt.Errorf("%w: unknown compression method %d", ErrStructure, h.Compression)
	}
	if h.Filter != 0 {
		return Header{}, fmt.Errorf("%w: unknown filter method %d", ErrStructure, h.Filter)
	}
	if h.Interlace > 1 {
		return Header{}, fmt.Errorf("%w: unknown interlace method %d", ErrStructure, h.Interlace)
	}
	return h, nil
}

// DecodedBytes returns the size of the image's filtered scanline data: one
// filter byte per row plus the packed pixel bytes. Interlaced images carry a
// small per-pass overhead; the non-interlaced figure is within two rows of
// it and serves as the allocation bound either way.
func (h Header) DecodedBytes() int64 {
	bitsPerPixel := int64(h.BitDepth) * int64(channelCounts[h.ColorType])
	rowBytes := (int64(h.Width)*bitsPerPixel + 7) / 8
	return int64(h.Height) * (1 + rowBytes)
}
