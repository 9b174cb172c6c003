package synth

import (
	"math"

	"github.com/example/go-fry-tts/internal/audio"
)

const (
	toneBaseHz    = 220.0
	toneAmplitude = 0.3
	toneRampMS    = 10
)

// ToneBank synthesizes a deterministic bank: each letter a-z is a sine tone
// one semitone above the previous one, starting at A3, and space is silence.
// Tones ramp in and out linearly to avoid clicks at letter boundaries.
func ToneBank(f audio.Format, samplesPerLetter int) (*Bank, error) {
	snippets := make(map[rune][]int16, 27)
	for i, r := 0, 'a'; r <= 'z'; i, r = i+1, r+1 {
		hz := toneBaseHz * math.Pow(2, float64(i)/12)
		snippets[r] = tone(hz, f.SampleRate, samplesPerLetter)
	}
	snippets[' '] = make([]int16, samplesPerLetter)

	return NewBank(snippets, f)
}

func tone(hz float64, sampleRate, n int) []int16 {
	ramp := sampleRate * toneRampMS / 1000
	out := make([]int16, n)
	for i := range out {
		gain := 1.0
		if ramp > 0 {
			gain = math.Min(1, math.Min(float64(i), float64(n-1-i))/float64(ramp))
		}
		v := toneAmplitude * gain * math.Sin(2*math.Pi*hz*float64(i)/float64(sampleRate))
		out[i] = int16(math.Round(v * 32767))
	}
	return out
}
