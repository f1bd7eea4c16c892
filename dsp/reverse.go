// SPDX-License-Identifier: EPL-2.0

package dsp

// Reverse returns a time-reversed copy of data.
func Reverse(data []float32) []float32 {
	out := make([]float32, len(data))
	for i, s := range data {
		out[len(data)-1-i] = s
	}
	return out
}
