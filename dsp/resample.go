// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"

	"github.com/wryhode/slurm/utils"
)

// lowpassAlpha is the coefficient of the one-pole low-pass applied
// before downsampling to tame aliasing. This is a simplified filter -
// for production-grade anti-aliasing, use a proper FIR filter.
const lowpassAlpha = 0.5

// ResampleMultiplier resamples data from sampleRate to
// sampleRate * multiplier using cubic interpolation. The sample count
// scales with the rate, so playback speed and pitch change together.
//
// A multiplier of exactly 1 returns data itself, untouched. A
// multiplier <= 0 returns ErrNonPositiveFactor.
func ResampleMultiplier(data []float32, sampleRate, multiplier float64) ([]float32, error) {
	if multiplier <= 0 {
		return nil, ErrNonPositiveFactor
	}
	if multiplier == 1 {
		return data, nil
	}
	return resampleRatio(data, multiplier), nil
}

// ResampleDivider resamples data from sampleRate to
// sampleRate / divider using cubic interpolation. Dividers above 1
// compress (speed up), dividers below 1 stretch (slow down).
//
// A divider of exactly 1 returns data itself, untouched. A
// divider <= 0 returns ErrNonPositiveFactor.
func ResampleDivider(data []float32, sampleRate, divider float64) ([]float32, error) {
	if divider <= 0 {
		return nil, ErrNonPositiveFactor
	}
	if divider == 1 {
		return data, nil
	}
	return resampleRatio(data, 1/divider), nil
}

// resampleRatio produces ceil(len(data) * ratio) output samples by
// stepping through data at 1/ratio source samples per output sample and
// evaluating a 4-point Catmull-Rom spline at each position. Edge
// positions reuse the first/last sample.
func resampleRatio(data []float32, ratio float64) []float32 {
	if len(data) == 0 {
		return []float32{}
	}

	src := data
	if ratio < 1 {
		src = lowpass(data)
	}

	outLen := int(math.Ceil(float64(len(data)) * ratio))
	out := make([]float32, outLen)

	step := 1 / ratio
	pos := 0.0
	for i := range out {
		idx := int(pos)
		frac := float32(pos - float64(idx))

		y0 := sampleAt(src, idx-1)
		y1 := sampleAt(src, idx)
		y2 := sampleAt(src, idx+1)
		y3 := sampleAt(src, idx+2)

		out[i] = utils.CubicInterpolate(y0, y1, y2, y3, frac)
		pos += step
	}

	return out
}

// lowpass runs a one-pole low-pass over data and returns the filtered
// copy: y[n] = alpha * x[n] + (1-alpha) * y[n-1].
func lowpass(data []float32) []float32 {
	out := make([]float32, len(data))
	prev := data[0]
	for i, s := range data {
		prev = lowpassAlpha*s + (1-lowpassAlpha)*prev
		out[i] = prev
	}
	return out
}

// sampleAt reads data at index i, clamping i to the valid range so
// interpolation windows can extend past either end.
func sampleAt(data []float32, i int) float32 {
	if i < 0 {
		i = 0
	}
	if i >= len(data) {
		i = len(data) - 1
	}
	return data[i]
}
