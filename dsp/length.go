// SPDX-License-Identifier: EPL-2.0

package dsp

import "gonum.org/v1/gonum/dsp/fourier"

// ResampleLength reinterpolates data to exactly targetLength samples
// using FFT spectral resampling: the signal's Fourier coefficients are
// truncated or zero-padded to the new length and transformed back.
// Waveform shape is preserved as closely as the bandwidth allows; this
// reconciles buffer lengths and carries no pitch or speed semantics.
//
// A targetLength equal to len(data) returns data itself, untouched.
// Empty input yields silence of the target length. A targetLength <= 0
// returns ErrNonPositiveLength.
func ResampleLength(data []float32, targetLength int) ([]float32, error) {
	if targetLength <= 0 {
		return nil, ErrNonPositiveLength
	}
	if targetLength == len(data) {
		return data, nil
	}
	if len(data) == 0 {
		return make([]float32, targetLength), nil
	}
	if len(data) == 1 {
		out := make([]float32, targetLength)
		for i := range out {
			out[i] = data[0]
		}
		return out, nil
	}

	src := make([]float64, len(data))
	for i, s := range data {
		src[i] = float64(s)
	}

	fwd := fourier.NewFFT(len(data))
	coeffs := fwd.Coefficients(nil, src)

	outBins := targetLength/2 + 1
	spectrum := make([]complex128, outBins)

	if outBins < len(coeffs) {
		copy(spectrum, coeffs[:outBins])
		// Truncation with an even target: the output Nyquist bin absorbs
		// both halves of the first discarded conjugate pair.
		if targetLength%2 == 0 {
			spectrum[outBins-1] = complex(2*real(coeffs[outBins-1]), 0)
		}
	} else {
		copy(spectrum, coeffs)
		// Padding from an even input: the input Nyquist coefficient stood
		// for two mirrored frequencies; as an interior bin it stands for one.
		if len(data)%2 == 0 {
			nyq := len(data) / 2
			spectrum[nyq] = complex(real(coeffs[nyq])/2, 0)
		}
	}

	inv := fourier.NewFFT(targetLength)
	seq := inv.Sequence(nil, spectrum)

	// gonum's transforms are unnormalized; the forward pass scaled
	// everything by the input length.
	scale := 1 / float64(len(data))
	out := make([]float32, targetLength)
	for i, v := range seq {
		out[i] = float32(v * scale)
	}

	return out, nil
}
