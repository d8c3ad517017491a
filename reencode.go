package pngopt

import (
	"bytes"
	"image"
	"image/png"

	"github.com/opd-ai/pngopt/chunk"
)

// reencode produces the decode-and-encode-again candidate: the image is
// rewritten from pixels at BestCompression, discarding the original filter
// choices entirely. The candidate is only offered when it provably shows
// the same image:
//
//   - the chunk set must contain no ancillary chunk the rewrite would lose
//     (gAMA, sRGB and friends change rendering without changing pixels);
//   - the re-encoded bytes must decode to pixels identical to the original.
//
// tRNS is exempt from the first rule: decoding folds it into the pixels,
// so the pixel comparison already covers it.
func reencode(ref image.Image, base []chunk.Chunk) ([]byte, bool) {
	for _, c := range base {
		if c.Ancillary() && c.Type != "tRNS" {
			return nil, false
		}
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, ref); err != nil {
		return nil, false
	}

	decoded, err := png.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil || !samePixels(ref, decoded) {
		return nil, false
	}
	return buf.Bytes(), true
}

// samePixels reports whether two images have equal bounds and equal color
// at every pixel, compared in 16-bit-per-channel space.
func samePixels(a, b image.Image) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	bounds := a.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ar, ag, ab, aa := a.At(x, y).RGBA()
			br, bg, bb, ba := b.At(x, y).RGBA()
			if ar != br || ag != bg || ab != bb || aa != ba {
				return false
			}
		}
	}
	return true
}
