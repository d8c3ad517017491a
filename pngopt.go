// Package pngopt implements lossless PNG re-optimization.
//
// Given a complete PNG byte buffer, Optimize produces an encoding of the
// same image that is never larger than the input: metadata that cannot
// affect rendering is dropped, the IDAT stream is re-deflated at higher
// effort, and a full re-encode is attempted. Decoded pixels are identical
// by construction or by verification on every path.
//
// Example:
//
//	opts := pngopt.NewOptions()
//	opts.Preset = 4
//
//	out, err := pngopt.Optimize(data, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d -> %d bytes\n", len(data), len(out))
package pngopt

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/pngopt/chunk"
	"github.com/opd-ai/pngopt/limits"
	"github.com/opd-ai/pngopt/recompress"
)

// Effort presets. Higher presets run more deflate trials; the output always
// decodes to the same pixels regardless of preset.
const (
	MinPreset     = recompress.MinPreset
	MaxPreset     = recompress.MaxPreset
	DefaultPreset = recompress.DefaultPreset
)

// ErrNotPNG indicates the input failed to parse or decode as a PNG.
var ErrNotPNG = errors.New("input is not a valid PNG")

// Options contains configuration options for a single optimization.
type Options struct {
	// Preset selects the effort level, MinPreset..MaxPreset. Out-of-range
	// values are clamped.
	Preset int

	// StripMetadata removes ancillary chunks that carry no rendering
	// information (tEXt, zTXt, iTXt, tIME, eXIf). Chunks that can affect
	// how a viewer displays the image are always preserved.
	StripMetadata bool

	// MaxEncodedBytes caps the accepted input size.
	MaxEncodedBytes int64

	// MaxDecodedBytes caps the inflated scanline data, bounding memory
	// use against decompression bombs and oversized dimensions.
	MaxDecodedBytes int64
}

// NewOptions creates Options with the default preset, metadata stripping
// enabled, and the package-level size limits.
func NewOptions() *Options {
	return &Options{
		Preset:          DefaultPreset,
		StripMetadata:   true,
		MaxEncodedBytes: limits.MaxEncodedBytes,
		MaxDecodedBytes: limits.MaxDecodedBytes,
	}
}

// Optimize re-optimizes a PNG buffer and returns the smallest encoding it
// found. The result is always a complete, valid PNG no larger than the
// input that decodes to identical pixels; when no candidate improves on the
// input, a copy of the input is returned.
//
// The input slice is only read, never retained. The returned slice is
// freshly allocated and owned by the caller. Optimize holds no shared
// state and is safe to call concurrently.
func Optimize(data []byte, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = NewOptions()
	}
	if err := limits.ValidateBufferSize(data, opts.MaxEncodedBytes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPNG, err)
	}

	chunks, err := chunk.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPNG, err)
	}
	header, err := chunk.ParseHeader(chunks[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPNG, err)
	}
	if header.DecodedBytes() > opts.MaxDecodedBytes {
		return nil, fmt.Errorf("%w: %dx%d image needs %d decoded bytes, limit %d",
			ErrNotPNG, header.Width, header.Height, header.DecodedBytes(), opts.MaxDecodedBytes)
	}

	// Pixel ground truth. A buffer that parses chunk-wise but does not
	// decode is still a failure, not an optimization target.
	ref, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPNG, err)
	}

	base := chunks
	if opts.StripMetadata {
		base = chunk.StripMetadata(chunks)
	}

	// The input itself is the fallback candidate: the result is never
	// larger than what the caller handed in.
	best := data

	if stripped := chunk.Serialize(base); len(stripped) < len(best) {
		best = stripped
	}

	preset := recompress.ClampPreset(opts.Preset)
	shrunk, err := recompress.Shrink(chunk.IDAT(base), preset, opts.MaxDecodedBytes)
	switch {
	case err == nil:
		if candidate := chunk.Serialize(chunk.ReplaceIDAT(base, shrunk)); len(candidate) < len(best) {
			best = candidate
		}
	case !errors.Is(err, recompress.ErrNoGain):
		// The stream decoded as an image, so a corrupt or oversized zlib
		// stream here is unexpected; skip the candidate but say so.
		logrus.WithFields(logrus.Fields{
			"function": "Optimize",
			"error":    err.Error(),
		}).Warn("IDAT recompression failed, keeping original stream")
	}

	if candidate, ok := reencode(ref, base); ok && len(candidate) < len(best) {
		best = candidate
	}

	logrus.WithFields(logrus.Fields{
		"function": "Optimize",
		"preset":   preset,
		"in_size":  len(data),
		"out_size": len(best),
	}).Debug("optimization complete")

	out := make([]byte, len(best))
	copy(out, best)
	return out, nil
}
