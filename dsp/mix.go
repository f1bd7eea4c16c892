// SPDX-License-Identifier: EPL-2.0

package dsp

// Scale returns data with every sample multiplied by gain.
func Scale(data []float32, gain float32) []float32 {
	out := make([]float32, len(data))
	for i, s := range data {
		out[i] = s * gain
	}
	return out
}

// Crossfade blends two equal-length buffers: each output sample is
// dry*(1-amount) + wet*amount. An amount of 0 reproduces dry, 1
// reproduces wet. Callers must pass buffers of the same length.
func Crossfade(dry, wet []float32, amount float32) []float32 {
	out := make([]float32, len(dry))
	for i := range dry {
		out[i] = dry[i]*(1-amount) + wet[i]*amount
	}
	return out
}
