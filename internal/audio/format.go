// Package audio encodes and decodes the mono 16-bit PCM WAV data used for
// letter snippets and synthesized speech.
package audio

import (
	"errors"
	"fmt"
)

// Format describes a PCM stream.
type Format struct {
	SampleRate int `json:"sample_rate"`
	Channels   int `json:"channels"`
	BitDepth   int `json:"bit_depth"`
}

// DefaultFormat is the format of the recorded letter snippets: 22050 Hz,
// mono, 16-bit PCM.
var DefaultFormat = Format{
	SampleRate: 22050,
	Channels:   1,
	BitDepth:   16,
}

// ErrFormatMismatch is returned when a decoded WAV does not match the expected format.
var ErrFormatMismatch = errors.New("WAV format mismatch")

// Validate rejects formats the encoder cannot write.
func (f Format) Validate() error {
	if f.SampleRate < 1 {
		return fmt.Errorf("invalid sample rate: %d", f.SampleRate)
	}
	if f.Channels != 1 {
		return fmt.Errorf("unsupported channel count: %d (only mono)", f.Channels)
	}
	if f.BitDepth != 16 {
		return fmt.Errorf("unsupported bit depth: %d (only 16-bit)", f.BitDepth)
	}
	return nil
}

// ByteRate is the number of bytes per second of audio.
func (f Format) ByteRate() int {
	return f.SampleRate * f.BlockAlign()
}

// BlockAlign is the number of bytes per sample frame.
func (f Format) BlockAlign() int {
	return f.Channels * f.BitDepth / 8
}
