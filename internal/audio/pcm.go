package audio

import "math"

// pcm16Scale matches the cwbudde/wav codec, so int16 samples survive an
// encode/decode cycle unchanged.
const pcm16Scale = 32768

// PCM16ToFloat32 scales signed 16-bit samples into [-1, 1).
func PCM16ToFloat32(samples []int16) []float32 {
	out := make([]float32, len(samples))
	for i, s := range samples {
		out[i] = float32(s) / pcm16Scale
	}
	return out
}

// Float32ToPCM16 converts samples to signed 16-bit, clamping to
// [math.MinInt16, math.MaxInt16].
func Float32ToPCM16(samples []float32) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		v := math.Round(float64(s) * pcm16Scale)
		out[i] = int16(math.Max(math.MinInt16, math.Min(math.MaxInt16, v)))
	}
	return out
}
