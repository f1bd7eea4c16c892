// SPDX-License-Identifier: EPL-2.0

package dsp

// FractionalWindow returns the sub-range of data starting at the
// fraction offset of its length and spanning the fraction size of its
// length. Both fractions are relative to len(data), not to any larger
// buffer data may be part of.
//
// The window end is clamped to len(data): an offset+size sum beyond 1
// yields a shortened window rather than an error. The result is a
// sub-slice of data, not a copy.
func FractionalWindow(data []float32, offset, size float64) []float32 {
	start := int(float64(len(data)) * offset)
	end := start + int(float64(len(data))*size)

	if start > len(data) {
		start = len(data)
	}
	if end > len(data) {
		end = len(data)
	}
	if end < start {
		end = start
	}

	return data[start:end]
}
