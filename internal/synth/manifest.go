package synth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/example/go-fry-tts/internal/audio"
)

// Snippet is one entry of a bank manifest.
type Snippet struct {
	Letter string `json:"letter"`
	Path   string `json:"path"`
}

type bankManifest struct {
	Letters []Snippet `json:"letters"`
}

// LoadBank reads a JSON manifest listing one WAV recording per letter:
//
//	{"letters": [{"letter": "a", "path": "a.wav"}, {"letter": " ", "path": "space.wav"}]}
//
// Relative paths resolve against the manifest directory. Every recording must
// match f; recordings of different lengths are padded with silence.
func LoadBank(manifestPath string, f audio.Format) (*Bank, error) {
	if manifestPath == "" {
		return nil, errors.New("manifest path is required")
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read letter manifest: %w", err)
	}

	var manifest bankManifest

	err = json.Unmarshal(data, &manifest)
	if err != nil {
		return nil, fmt.Errorf("decode letter manifest: %w", err)
	}

	baseDir := filepath.Dir(manifestPath)
	snippets := make(map[rune][]int16, len(manifest.Letters))

	for _, entry := range manifest.Letters {
		if utf8.RuneCountInString(entry.Letter) != 1 {
			return nil, fmt.Errorf("letter manifest entry %q must be a single character", entry.Letter)
		}

		if entry.Path == "" {
			return nil, fmt.Errorf("letter %q has empty path", entry.Letter)
		}

		r, _ := utf8.DecodeRuneInString(entry.Letter)
		if _, exists := snippets[r]; exists {
			return nil, fmt.Errorf("duplicate letter %q", entry.Letter)
		}

		path := entry.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		wav, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("read snippet for %q: %w", entry.Letter, err)
		}

		pcm, err := audio.DecodePCM16(wav, f)
		if err != nil {
			return nil, fmt.Errorf("decode snippet for %q: %w", entry.Letter, err)
		}

		snippets[r] = pcm
	}

	return NewBank(snippets, f)
}
