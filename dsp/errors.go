// SPDX-License-Identifier: EPL-2.0

package dsp

import "errors"

var (
	// ErrInvalidBPM indicates a non-positive beats-per-minute value.
	ErrInvalidBPM = errors.New("bpm must be positive")

	// ErrNoBeats indicates the buffer is shorter than a single beat, so
	// no beat-aligned split is possible.
	ErrNoBeats = errors.New("buffer shorter than one beat")

	// ErrNonPositiveFactor indicates a resampling factor <= 0.
	ErrNonPositiveFactor = errors.New("resample factor must be positive")

	// ErrNonPositiveLength indicates a target sample count <= 0.
	ErrNonPositiveLength = errors.New("target length must be positive")
)
