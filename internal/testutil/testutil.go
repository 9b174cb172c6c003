// Package testutil provides shared fixtures and assertions for tests that
// deal with letter banks and WAV output.
//
// Typical usage:
//
//	func TestLoadRecordedBank(t *testing.T) {
//	    manifest := testutil.WriteLetterManifest(t, t.TempDir(), audio.DefaultFormat, 64)
//	    ...
//	    testutil.AssertValidWAV(t, wav, audio.DefaultFormat)
//	}
package testutil

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/go-fry-tts/internal/audio"
)

// ManifestLetters is the character set written by WriteLetterManifest.
const ManifestLetters = "abcdefghijklmnopqrstuvwxyz "

// WriteLetterManifest writes one WAV recording per character of
// ManifestLetters into dir, plus a letters.json manifest naming them, and
// returns the manifest path. Letter i is a constant level of (i+1)*100 held
// for samples samples; space is silence.
func WriteLetterManifest(tb testing.TB, dir string, f audio.Format, samples int) string {
	tb.Helper()

	type entry struct {
		Letter string `json:"letter"`
		Path   string `json:"path"`
	}

	var entries []entry
	for i, r := range ManifestLetters {
		pcm := make([]int16, samples)
		name := string(r) + ".wav"
		if r == ' ' {
			name = "space.wav"
		} else {
			for j := range pcm {
				pcm[j] = int16((i + 1) * 100)
			}
		}

		wav, err := audio.EncodePCM16(pcm, f)
		if err != nil {
			tb.Fatalf("encode %s: %v", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), wav, 0o644); err != nil {
			tb.Fatalf("write %s: %v", name, err)
		}

		entries = append(entries, entry{Letter: string(r), Path: name})
	}

	data, err := json.Marshal(map[string]any{"letters": entries})
	if err != nil {
		tb.Fatalf("marshal manifest: %v", err)
	}

	path := filepath.Join(dir, "letters.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("write manifest: %v", err)
	}

	return path
}

// PCM16WAV lays out samples as a canonical 44-byte-header PCM WAV file without
// going through the audio package, so decoders can be checked against bytes
// they did not produce.
func PCM16WAV(samples []int16, f audio.Format) []byte {
	blockAlign := f.Channels * 2
	dataSize := len(samples) * 2

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(f.Channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(f.SampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(f.SampleRate*blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	_ = binary.Write(&buf, binary.LittleEndian, samples)

	return buf.Bytes()
}
