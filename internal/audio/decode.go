package audio

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cwbudde/wav"
)

// DecodeWAV decodes WAV bytes and returns float32 PCM samples.
// It validates that the stream matches want.
func DecodeWAV(data []byte, want Format) ([]float32, error) {
	if len(data) == 0 {
		return nil, errors.New("empty WAV input")
	}

	r := bytes.NewReader(data)
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, errors.New("invalid WAV file")
	}

	if int(dec.SampleRate) != want.SampleRate {
		return nil, fmt.Errorf("%w: sample rate %d, want %d", ErrFormatMismatch, dec.SampleRate, want.SampleRate)
	}
	if int(dec.NumChans) != want.Channels {
		return nil, fmt.Errorf("%w: channels %d, want %d", ErrFormatMismatch, dec.NumChans, want.Channels)
	}
	if int(dec.BitDepth) != want.BitDepth {
		return nil, fmt.Errorf("%w: bit depth %d, want %d", ErrFormatMismatch, dec.BitDepth, want.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading PCM data: %w", err)
	}

	return buf.Data, nil
}

// DecodePCM16 decodes WAV bytes into signed 16-bit samples.
func DecodePCM16(data []byte, want Format) ([]int16, error) {
	samples, err := DecodeWAV(data, want)
	if err != nil {
		return nil, err
	}
	return Float32ToPCM16(samples), nil
}
