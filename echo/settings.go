// SPDX-License-Identifier: EPL-2.0

package echo

// Settings controls the feedback echo applied per slice.
type Settings struct {
	// Mix is the gain of the echo buffer in each slice's output.
	Mix float64

	// Multiplier is the per-slice decay applied to the echo buffer.
	// Values in (0,1) decay; values above 1 grow without bound across
	// slices and are the caller's responsibility.
	Multiplier float64

	// SliceMix is the gain at which each slice is fed back into the
	// echo buffer.
	SliceMix float64

	// InternalResampleMultiplier speed-morphs the echo buffer: the
	// buffer is rate-resampled by this factor and refit to its original
	// length, shifting the pitch of the decaying tail without changing
	// its duration. A value of 1 disables the morph.
	InternalResampleMultiplier float64

	// InternalResampleDryWet is the crossfade between the unmorphed (0)
	// and morphed (1) buffer.
	InternalResampleDryWet float64

	// InternalFlip blends each slice with its own reversal before it is
	// fed back.
	InternalFlip bool

	// InternalFlipDryWet is the crossfade between the forward (0) and
	// reversed (1) slice in the feedback input.
	InternalFlipDryWet float64

	// FlipFlop reverses the whole echo buffer after every slice.
	// Despite the name, the reversal is applied on each iteration, not
	// on alternating ones.
	FlipFlop bool
}

// DefaultSettings returns the echo settings the effect was tuned with.
func DefaultSettings() Settings {
	return Settings{
		Mix:                        0.5,
		Multiplier:                 1,
		SliceMix:                   0.65,
		InternalResampleMultiplier: 1.1,
		InternalResampleDryWet:     0.85,
		InternalFlip:               true,
		InternalFlipDryWet:         0.4,
		FlipFlop:                   false,
	}
}
