// SPDX-License-Identifier: EPL-2.0

package slurm

import "errors"

var (
	// ErrWindowOutOfRange indicates slice window fractions outside
	// their valid ranges, or an offset+size sum beyond the segment.
	ErrWindowOutOfRange = errors.New("slice window must fit within the segment")

	// ErrNonPositiveSpeed indicates the timing curve returned a speed
	// multiplier <= 0, which the resampler cannot honor.
	ErrNonPositiveSpeed = errors.New("timing curve must return a positive speed")

	// ErrInvalidDryWet indicates a crossfade ratio outside [0,1].
	ErrInvalidDryWet = errors.New("drywet must be between 0 and 1")
)
