package testutil_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/go-fry-tts/internal/audio"
	"github.com/example/go-fry-tts/internal/testutil"
)

func TestWriteLetterManifest(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteLetterManifest(t, dir, audio.DefaultFormat, 16)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}

	var manifest struct {
		Letters []struct {
			Letter string `json:"letter"`
			Path   string `json:"path"`
		} `json:"letters"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}

	if len(manifest.Letters) != len(testutil.ManifestLetters) {
		t.Fatalf("got %d letters, want %d", len(manifest.Letters), len(testutil.ManifestLetters))
	}

	for _, e := range manifest.Letters {
		wav, err := os.ReadFile(filepath.Join(dir, e.Path))
		if err != nil {
			t.Fatalf("read %s: %v", e.Path, err)
		}
		testutil.AssertValidWAV(t, wav, audio.DefaultFormat)
		testutil.AssertWAVDurationApprox(t, wav, audio.DefaultFormat, 15.0/22050, 17.0/22050)
	}
}

func TestAssertValidWAV_FailsOnMismatch(t *testing.T) {
	wav, err := audio.EncodePCM16([]int16{1, 2, 3}, audio.DefaultFormat)
	if err != nil {
		t.Fatalf("EncodePCM16: %v", err)
	}

	want := audio.DefaultFormat
	want.SampleRate = 24000

	ft := &failTracker{TB: t}
	testutil.AssertValidWAV(ft, wav, want)
	if !ft.failed {
		t.Error("expected AssertValidWAV to fail on sample rate mismatch")
	}
}

// failTracker is a minimal testing.TB implementation that intercepts Fatal calls.
type failTracker struct {
	testing.TB
	failed bool
}

func (f *failTracker) Helper() {}

func (f *failTracker) Fatalf(_ string, _ ...any) {
	f.failed = true
	// Do NOT call f.TB.Fatalf; that would fail the outer test.
}

func (f *failTracker) Fatal(_ ...any) {
	f.failed = true
}

func TestPCM16WAV(t *testing.T) {
	samples := []int16{-32768, 32767, 0, 100}
	wav := testutil.PCM16WAV(samples, audio.DefaultFormat)

	testutil.AssertValidWAV(t, wav, audio.DefaultFormat)
	if len(wav) != 44+2*len(samples) {
		t.Fatalf("len = %d, want %d", len(wav), 44+2*len(samples))
	}

	got, err := audio.DecodePCM16(wav, audio.DefaultFormat)
	if err != nil {
		t.Fatalf("DecodePCM16: %v", err)
	}
	for i, want := range samples {
		if got[i] != want {
			t.Errorf("sample %d = %d, want %d", i, got[i], want)
		}
	}
}
