// Package pngtest provides fixed PNG byte fixtures shared by tests across
// the module. Each fixture is a complete, hand-verified literal so tests
// exercise real container bytes rather than values produced by the code
// under test.
package pngtest

// MinimalTransparent is a complete 68-byte PNG: a single 8-bit RGBA pixel
// with value (0,0,0,0). Signature, IHDR, one IDAT (zlib level 9), IEND.
var MinimalTransparent = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0b, 0x49, 0x44, 0x41,
	0x54, 0x78, 0xda, 0x63, 0x60, 0x00, 0x02, 0x00,
	0x00, 0x05, 0x00, 0x01, 0xe9, 0xfa, 0xdc, 0xd8,
	0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44,
	0xae, 0x42, 0x60, 0x82,
}

// MinimalOpaque is the same 1x1 layout with pixel value (255,255,255,255).
var MinimalOpaque = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0b, 0x49, 0x44, 0x41,
	0x54, 0x78, 0xda, 0x63, 0xf8, 0x0f, 0x04, 0x00,
	0x09, 0xfb, 0x03, 0xfd, 0x68, 0xfa, 0x1c, 0xcc,
	0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44,
	0xae, 0x42, 0x60, 0x82,
}

// WithTextChunk is MinimalTransparent with a tEXt chunk ("Comment\0hello
// world") inserted between IHDR and IDAT. 99 bytes total; stripping the
// metadata recovers the 68-byte minimal form.
var WithTextChunk = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x13, 0x74, 0x45, 0x58,
	0x74, 0x43, 0x6f, 0x6d, 0x6d, 0x65, 0x6e, 0x74,
	0x00, 0x68, 0x65, 0x6c, 0x6c, 0x6f, 0x20, 0x77,
	0x6f, 0x72, 0x6c, 0x64, 0x6a, 0x7b, 0x8e, 0xff,
	0x00, 0x00, 0x00, 0x0b, 0x49, 0x44, 0x41, 0x54,
	0x78, 0xda, 0x63, 0x60, 0x00, 0x02, 0x00, 0x00,
	0x05, 0x00, 0x01, 0xe9, 0xfa, 0xdc, 0xd8, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

// Garbage returns n bytes that do not begin with the PNG signature.
func Garbage(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(0xA5 ^ i)
	}
	return out
}
