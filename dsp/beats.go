// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// SplitBeats partitions data into beat-aligned segments.
//
// The beat length is floor(60/bpm * sampleRate) samples and the segment
// count is floor(len(data) / beatLength). The remaining
// len(data) mod count samples are distributed one each across the
// earliest segments, so segment lengths differ by at most one sample
// and the segments together cover data exactly, in temporal order.
//
// The returned segments are sub-slices of data, not copies.
//
// A bpm that yields no complete beat within data is a configuration
// error and returns ErrNoBeats.
func SplitBeats(data []float32, sampleRate, bpm float64) ([][]float32, error) {
	if bpm <= 0 {
		return nil, ErrInvalidBPM
	}

	beatSamples := math.Floor(60 / bpm * sampleRate)
	if beatSamples < 1 {
		return nil, ErrInvalidBPM
	}

	count := int(float64(len(data)) / beatSamples)
	if count < 1 {
		return nil, ErrNoBeats
	}

	base := len(data) / count
	extra := len(data) % count

	segments := make([][]float32, count)
	pos := 0
	for i := range segments {
		size := base
		if i < extra {
			size++
		}
		segments[i] = data[pos : pos+size]
		pos += size
	}

	return segments, nil
}
