package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/pngopt/pngtest"
)

func TestParseMinimalPNG(t *testing.T) {
	chunks, err := Parse(pngtest.MinimalTransparent)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	assert.Equal(t, TypeIHDR, chunks[0].Type)
	assert.Len(t, chunks[0].Data, 13)
	assert.Equal(t, TypeIDAT, chunks[1].Type)
	assert.Equal(t, TypeIEND, chunks[2].Type)
	assert.Empty(t, chunks[2].Data)
}

func TestParseRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{
			name:    "nil buffer",
			data:    nil,
			wantErr: ErrBadSignature,
		},
		{
			name:    "garbage bytes",
			data:    pngtest.Garbage(10),
			wantErr: ErrBadSignature,
		},
		{
			name:    "signature only",
			data:    Signature,
			wantErr: ErrStructure,
		},
		{
			name:    "truncated mid-chunk",
			data:    pngtest.MinimalTransparent[:20],
			wantErr: ErrTruncated,
		},
		{
			name:    "truncated before IEND",
			data:    pngtest.MinimalTransparent[:len(pngtest.MinimalTransparent)-12],
			wantErr: ErrStructure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseRejectsBadCRC(t *testing.T) {
	data := append([]byte(nil), pngtest.MinimalTransparent...)
	// Flip a bit inside the IHDR data so its stored CRC no longer matches.
	data[16] ^= 0x01
	_, err := Parse(data)
	assert.ErrorIs(t, err, ErrBadCRC)
}

func TestParseRejectsDeclaredLengthPastEnd(t *testing.T) {
	data := append([]byte(nil), pngtest.MinimalTransparent...)
	// Inflate the IDAT declared length far past the end of the buffer.
	data[33] = 0x00
	data[34] = 0xFF
	_, err := Parse(data)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	data := append([]byte(nil), pngtest.MinimalTransparent...)
	data = append(data, 0xDE, 0xAD)
	_, err := Parse(data)
	assert.ErrorIs(t, err, ErrStructure)
}

func TestSerializeRoundTrip(t *testing.T) {
	for _, fixture := range [][]byte{pngtest.MinimalTransparent, pngtest.WithTextChunk} {
		chunks, err := Parse(fixture)
		require.NoError(t, err)
		assert.Equal(t, fixture, Serialize(chunks))
	}
}

func TestStripMetadata(t *testing.T) {
	chunks, err := Parse(pngtest.WithTextChunk)
	require.NoError(t, err)
	require.Len(t, chunks, 4)
	assert.Equal(t, "tEXt", chunks[1].Type)

	stripped := StripMetadata(chunks)
	require.Len(t, stripped, 3)
	assert.Equal(t, pngtest.MinimalTransparent, Serialize(stripped))
}

func TestChunkClassification(t *testing.T) {
	assert.False(t, Chunk{Type: TypeIHDR}.Ancillary())
	assert.False(t, Chunk{Type: TypeIDAT}.Ancillary())
	assert.True(t, Chunk{Type: "tEXt"}.Ancillary())
	assert.True(t, Chunk{Type: "gAMA"}.Ancillary())

	assert.True(t, Chunk{Type: "tEXt"}.SafeToCopy())
	assert.False(t, Chunk{Type: "gAMA"}.SafeToCopy())

	assert.True(t, Droppable("tEXt"))
	assert.True(t, Droppable("tIME"))
	// Rendering-relevant ancillary chunks stay.
	assert.False(t, Droppable("gAMA"))
	assert.False(t, Droppable("sRGB"))
	assert.False(t, Droppable("tRNS"))
}

func TestIDATConcatenation(t *testing.T) {
	chunks, err := Parse(pngtest.MinimalTransparent)
	require.NoError(t, err)
	stream := IDAT(chunks)
	require.NotEmpty(t, stream)

	// Split the stream across two IDAT chunks and confirm parsing plus
	// concatenation recovers the identical bytes.
	split := []Chunk{
		chunks[0],
		{Type: TypeIDAT, Data: stream[:4]},
		{Type: TypeIDAT, Data: stream[4:]},
		chunks[2],
	}
	reparsed, err := Parse(Serialize(split))
	require.NoError(t, err)
	require.Len(t, reparsed, 4)
	assert.Equal(t, stream, IDAT(reparsed))
}

func TestReplaceIDATCollapsesRun(t *testing.T) {
	chunks, err := Parse(pngtest.MinimalTransparent)
	require.NoError(t, err)
	stream := IDAT(chunks)

	split := []Chunk{
		chunks[0],
		{Type: TypeIDAT, Data: stream[:2]},
		{Type: TypeIDAT, Data: stream[2:]},
		chunks[2],
	}
	replaced := ReplaceIDAT(split, stream)
	require.Len(t, replaced, 3)
	assert.Equal(t, pngtest.MinimalTransparent, Serialize(replaced))
}

func TestNonContiguousIDATRejected(t *testing.T) {
	chunks, err := Parse(pngtest.MinimalTransparent)
	require.NoError(t, err)
	stream := IDAT(chunks)

	interleaved := []Chunk{
		chunks[0],
		{Type: TypeIDAT, Data: stream[:2]},
		{Type: "tIME", Data: []byte{0x07, 0xE9, 0x01, 0x01, 0x00, 0x00, 0x00}},
		{Type: TypeIDAT, Data: stream[2:]},
		chunks[2],
	}
	_, err = Parse(Serialize(interleaved))
	assert.ErrorIs(t, err, ErrStructure)
}
