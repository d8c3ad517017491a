package chunk

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/pngopt/pngtest"
)

func ihdrChunk(width, height uint32, depth, colorType, compression, filter, interlace byte) Chunk {
	data := make([]byte, 13)
	binary.BigEndian.PutUint32(data[0:4], width)
	binary.BigEndian.PutUint32(data[4:8], height)
	data[8] = depth
	data[9] = colorType
	data[10] = compression
	data[11] = filter
	data[12] = interlace
	return Chunk{Type: TypeIHDR, Data: data}
}

func TestParseHeaderMinimalFixture(t *testing.T) {
	chunks, err := Parse(pngtest.MinimalTransparent)
	require.NoError(t, err)

	h, err := ParseHeader(chunks[0])
	require.NoError(t, err)
	assert.Equal(t, uint32(1), h.Width)
	assert.Equal(t, uint32(1), h.Height)
	assert.Equal(t, uint8(8), h.BitDepth)
	assert.Equal(t, uint8(ColorTruecolorAlpha), h.ColorType)
	assert.Equal(t, uint8(0), h.Interlace)

	// One row: filter byte + four RGBA bytes.
	assert.Equal(t, int64(5), h.DecodedBytes())
}

func TestParseHeaderRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		c    Chunk
	}{
		{"wrong chunk type", Chunk{Type: TypeIDAT, Data: make([]byte, 13)}},
		{"short data", Chunk{Type: TypeIHDR, Data: make([]byte, 12)}},
		{"zero width", ihdrChunk(0, 1, 8, ColorTruecolorAlpha, 0, 0, 0)},
		{"zero height", ihdrChunk(1, 0, 8, ColorTruecolorAlpha, 0, 0, 0)},
		{"oversized width", ihdrChunk(1<<31, 1, 8, ColorTruecolorAlpha, 0, 0, 0)},
		{"unknown color type", ihdrChunk(1, 1, 8, 5, 0, 0, 0)},
		{"bad depth for truecolor", ihdrChunk(1, 1, 4, ColorTruecolor, 0, 0, 0)},
		{"bad depth for palette", ihdrChunk(1, 1, 16, ColorPaletted, 0, 0, 0)},
		{"bad compression method", ihdrChunk(1, 1, 8, ColorTruecolorAlpha, 1, 0, 0)},
		{"bad filter method", ihdrChunk(1, 1, 8, ColorTruecolorAlpha, 0, 1, 0)},
		{"bad interlace method", ihdrChunk(1, 1, 8, ColorTruecolorAlpha, 0, 0, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHeader(tt.c)
			assert.ErrorIs(t, err, ErrStructure)
		})
	}
}

func TestDecodedBytesPackedRows(t *testing.T) {
	// 10 pixels at 1-bit grayscale pack into 2 row bytes plus the filter byte.
	h, err := ParseHeader(ihdrChunk(10, 3, 1, ColorGrayscale, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(3*(1+2)), h.DecodedBytes())

	// 16-bit RGBA: 8 bytes per pixel.
	h, err = ParseHeader(ihdrChunk(100, 2, 16, ColorTruecolorAlpha, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(2*(1+800)), h.DecodedBytes())
}
