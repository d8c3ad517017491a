// Package recompress re-deflates PNG IDAT streams at higher effort than the
// encoder that produced them. It works on the zlib stream alone: the
// filtered scanlines inside are inflated, compressed again at one or more
// effort levels, and the smallest strictly smaller result wins. The pixel
// bytes are never interpreted, so the rewrite is exact by construction.
package recompress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"

	"github.com/opd-ai/pngopt/limits"
)

// Preset bounds for the optimizer's effort scale. Higher presets run more
// deflate trials; they never change what the output decodes to.
const (
	MinPreset     = 0
	MaxPreset     = 6
	DefaultPreset = 6
)

var (
	// ErrNoGain indicates recompression produced no stream smaller than the input
	ErrNoGain = errors.New("recompression gained nothing")

	// ErrCorruptStream indicates the zlib stream could not be inflated
	ErrCorruptStream = errors.New("corrupt zlib stream")
)

// trialLevels maps a preset to the deflate levels attempted, cheapest preset
// first. Levels are klauspost/compress/flate levels (1..9).
var trialLevels = [MaxPreset + 1][]int{
	{flate.BestSpeed},
	{3},
	{5},
	{7},
	{flate.BestCompression},
	{8, flate.BestCompression},
	{7, 8, flate.BestCompression},
}

// ClampPreset clamps an arbitrary effort level into [MinPreset, MaxPreset].
func ClampPreset(preset int) int {
	if preset < MinPreset {
		return MinPreset
	}
	if preset > MaxPreset {
		return MaxPreset
	}
	return preset
}

// Inflate decompresses a zlib stream, failing once the output would exceed
// maxBytes. The bound is the caller's defense against decompression bombs.
func Inflate(stream []byte, maxBytes int64) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(stream))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	defer r.Close()

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	if err := limits.ValidateDecodedSize(n); err != nil {
		return nil, err
	}
	if n > maxBytes {
		return nil, fmt.Errorf("%w: inflated past %d byte limit", limits.ErrBufferTooLarge, maxBytes)
	}
	return buf.Bytes(), nil
}

// Deflate compresses raw bytes into a zlib stream at the given flate level.
func Deflate(raw []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, fmt.Errorf("deflate level %d: %w", level, err)
	}
	if _, err := w.Write(raw); err != nil {
		w.Close()
		return nil, fmt.Errorf("deflate write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("deflate close: %w", err)
	}
	return buf.Bytes(), nil
}

// Shrink inflates an IDAT zlib stream and re-deflates it at the trial levels
// for preset, returning the smallest stream strictly smaller than the input.
// Returns ErrNoGain when every trial matches or exceeds the original size,
// and ErrCorruptStream when the input does not inflate.
func Shrink(stream []byte, preset int, maxDecodedBytes int64) ([]byte, error) {
	raw, err := Inflate(stream, maxDecodedBytes)
	if err != nil {
		return nil, err
	}

	var best []byte
	bestLen := len(stream)
	for _, level := range trialLevels[ClampPreset(preset)] {
		candidate, err := Deflate(raw, level)
		if err != nil {
			return nil, err
		}
		if len(candidate) < bestLen {
			best = candidate
			bestLen = len(candidate)
		}
	}
	if best == nil {
		return nil, ErrNoGain
	}
	return best, nil
}
