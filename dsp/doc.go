// SPDX-License-Identifier: EPL-2.0

// Package dsp provides the pure numeric building blocks of the slurm
// effect: beat-aligned buffer splitting, fractional windowing,
// rate-changing resampling and fixed-length spectral resampling, and
// time reversal.
//
// All functions are stateless and operate on mono float32 sample
// slices in the range [-1.0, 1.0]. Unless documented otherwise they
// return freshly allocated slices and never mutate their input.
//
// # Resampling
//
// Two distinct operations are offered:
//
//   - ResampleMultiplier / ResampleDivider change the effective playback
//     rate of a buffer. The sample count changes with it, so pitch and
//     duration shift together. Interpolation is 4-point Catmull-Rom.
//   - ResampleLength reinterpolates a buffer to an exact sample count
//     using FFT spectral resampling. It is a length-reconciliation tool,
//     not a pitch effect.
//
// Both treat the identity case (factor 1, target length equal to the
// input length) as a strict passthrough: the input slice is returned
// untouched, with no interpolation applied.
//
// # Beat splitting
//
// SplitBeats partitions a buffer into floor(len/beatSamples) contiguous
// segments of near-equal size. The segments are views into the input
// buffer; concatenating them reproduces the input sample for sample.
package dsp
