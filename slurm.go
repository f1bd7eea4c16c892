// SPDX-License-Identifier: EPL-2.0

package slurm

import (
	"fmt"

	"github.com/wryhode/slurm/dsp"
	"github.com/wryhode/slurm/echo"
)

// Slurm applies the beat-synchronous time-warp and feedback echo to a
// mono buffer at sampleRate.
//
// The buffer is split into beat-length segments from bpm. Each segment
// is windowed by sliceSettings, time-scaled by the speed the timing
// curve returns at t = i/N, leveled and optionally reversed, then run
// through the echo engine in strict index order. The per-segment outputs
// are concatenated; the result's length is the sum of the post-resample
// segment lengths, which in general differs from len(data).
//
// A nil timing curve means constant speed 1. The sample rate of the
// result is unchanged.
func Slurm(data []float32, sampleRate, bpm float64, sliceSettings SliceSettings, echoSettings echo.Settings, timing TimingFunc) ([]float32, error) {
	if timing == nil {
		timing = func(float64) float64 { return 1 }
	}

	if sliceSettings.BeatOffset < 0 || sliceSettings.BeatOffset >= 1 ||
		sliceSettings.BeatSize <= 0 || sliceSettings.BeatSize > 1 ||
		sliceSettings.BeatOffset+sliceSettings.BeatSize > 1 {
		return nil, fmt.Errorf("beat offset %v, size %v: %w",
			sliceSettings.BeatOffset, sliceSettings.BeatSize, ErrWindowOutOfRange)
	}

	segments, err := dsp.SplitBeats(data, sampleRate, bpm)
	if err != nil {
		return nil, fmt.Errorf("split beats: %w", err)
	}

	n := len(segments)
	processed := make([][]float32, n)

	var engine *echo.Engine
	total := 0

	for i, segment := range segments {
		t := float64(i) / float64(n)
		speed := timing(t)
		if speed <= 0 {
			return nil, fmt.Errorf("timing curve returned %v at t=%v: %w", speed, t, ErrNonPositiveSpeed)
		}

		window := dsp.FractionalWindow(segment, sliceSettings.BeatOffset, sliceSettings.BeatSize)

		sliceData, err := dsp.ResampleDivider(window, sampleRate, speed)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}

		sliceData = dsp.Scale(sliceData, float32(sliceSettings.Mix))
		if sliceSettings.Reverse {
			sliceData = dsp.Reverse(sliceData)
		}

		// The engine's buffer is sized to the first processed slice;
		// later slices refit it as their lengths drift.
		if engine == nil {
			engine = echo.NewEngine(len(sliceData))
		}

		out, err := engine.ProcessSlice(sliceData, sampleRate, echoSettings)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}

		processed[i] = out
		total += len(out)
	}

	result := make([]float32, 0, total)
	for _, out := range processed {
		result = append(result, out...)
	}

	return result, nil
}
