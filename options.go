// SPDX-License-Identifier: EPL-2.0

package slurm

import (
	"fmt"

	"github.com/wryhode/slurm/dsp"
	"github.com/wryhode/slurm/echo"
)

// TimingFunc maps a normalized track position t in [0,1) to a speed
// multiplier. Values above 1 compress (speed up) the segment at that
// position, values below 1 stretch it. It is called exactly once per
// segment and must be pure; returning a value <= 0 aborts the run.
type TimingFunc func(t float64) float64

// SliceSettings selects the window taken from each beat segment and how
// it is leveled.
type SliceSettings struct {
	// BeatOffset is the fractional start of the window within a
	// segment, in [0,1).
	BeatOffset float64

	// BeatSize is the fractional window length, in (0,1]. Offset and
	// size must fit within the segment: BeatOffset+BeatSize <= 1.
	BeatSize float64

	// Mix is the output gain applied to every windowed slice.
	Mix float64

	// Reverse plays each slice backwards.
	Reverse bool
}

// DefaultSliceSettings returns the slice settings the effect was tuned
// with: the first half of every beat at a low level.
func DefaultSliceSettings() SliceSettings {
	return SliceSettings{
		BeatOffset: 0,
		BeatSize:   0.5,
		Mix:        0.15,
		Reverse:    false,
	}
}

// Options is the full configuration of a slurm run.
type Options struct {
	// BPM is the tempo that defines segment boundaries. Required.
	BPM float64

	// Slice selects and levels the per-beat window.
	Slice SliceSettings

	// Echo configures the feedback echo.
	Echo echo.Settings

	// Timing is the per-segment speed curve. Nil means constant speed 1.
	Timing TimingFunc

	// InputResampleMultiplier rate-resamples the whole buffer before the
	// beat loop; 1 disables it.
	InputResampleMultiplier float64

	// OutputResampleMultiplier rate-resamples the result after the beat
	// loop; 1 disables it.
	OutputResampleMultiplier float64
}

// DefaultOptions returns options at the given tempo with default slice
// and echo settings and no pre/post resampling.
func DefaultOptions(bpm float64) Options {
	return Options{
		BPM:                      bpm,
		Slice:                    DefaultSliceSettings(),
		Echo:                     echo.DefaultSettings(),
		InputResampleMultiplier:  1,
		OutputResampleMultiplier: 1,
	}
}

// Validate reports the first configuration error, or nil. All
// configuration errors are fatal; nothing is partially applied.
func (o Options) Validate() error {
	if o.BPM <= 0 {
		return fmt.Errorf("bpm %v: %w", o.BPM, dsp.ErrInvalidBPM)
	}
	if o.Slice.BeatOffset < 0 || o.Slice.BeatOffset >= 1 {
		return fmt.Errorf("beat offset %v: %w", o.Slice.BeatOffset, ErrWindowOutOfRange)
	}
	if o.Slice.BeatSize <= 0 || o.Slice.BeatSize > 1 {
		return fmt.Errorf("beat size %v: %w", o.Slice.BeatSize, ErrWindowOutOfRange)
	}
	if o.Slice.BeatOffset+o.Slice.BeatSize > 1 {
		return fmt.Errorf("beat offset %v + size %v: %w",
			o.Slice.BeatOffset, o.Slice.BeatSize, ErrWindowOutOfRange)
	}
	if o.Echo.InternalResampleMultiplier <= 0 {
		return fmt.Errorf("internal resample multiplier %v: %w",
			o.Echo.InternalResampleMultiplier, dsp.ErrNonPositiveFactor)
	}
	if o.Echo.InternalResampleDryWet < 0 || o.Echo.InternalResampleDryWet > 1 {
		return fmt.Errorf("internal resample drywet %v: %w",
			o.Echo.InternalResampleDryWet, ErrInvalidDryWet)
	}
	if o.Echo.InternalFlipDryWet < 0 || o.Echo.InternalFlipDryWet > 1 {
		return fmt.Errorf("internal flip drywet %v: %w",
			o.Echo.InternalFlipDryWet, ErrInvalidDryWet)
	}
	if o.InputResampleMultiplier <= 0 {
		return fmt.Errorf("input resample multiplier %v: %w",
			o.InputResampleMultiplier, dsp.ErrNonPositiveFactor)
	}
	if o.OutputResampleMultiplier <= 0 {
		return fmt.Errorf("output resample multiplier %v: %w",
			o.OutputResampleMultiplier, dsp.ErrNonPositiveFactor)
	}
	return nil
}
