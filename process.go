// SPDX-License-Identifier: EPL-2.0

package slurm

import (
	"fmt"

	"github.com/wryhode/slurm/audio"
	"github.com/wryhode/slurm/dsp"
)

// readBufferSize is the chunk size used when draining a source.
const readBufferSize = 4096

// Process runs the full effect on an audio source: the source is
// reduced to mono and drained into memory, optionally rate-resampled by
// Options.InputResampleMultiplier, slurmed, and optionally resampled
// again by Options.OutputResampleMultiplier.
//
// The returned sample rate is the source's rate: the pre/post
// resampling multipliers change content length and pitch, not the
// declared rate. Process does not close src.
func Process(src audio.Source, opts Options) ([]float32, float64, error) {
	if err := opts.Validate(); err != nil {
		return nil, 0, err
	}

	sampleRate := float64(src.SampleRate())

	data, err := audio.ReadAll(audio.NewMonoMixer(src), readBufferSize)
	if err != nil {
		return nil, 0, fmt.Errorf("read source: %w", err)
	}

	if opts.InputResampleMultiplier != 1 {
		data, err = dsp.ResampleMultiplier(data, sampleRate, opts.InputResampleMultiplier)
		if err != nil {
			return nil, 0, fmt.Errorf("input resample: %w", err)
		}
	}

	data, err = Slurm(data, sampleRate, opts.BPM, opts.Slice, opts.Echo, opts.Timing)
	if err != nil {
		return nil, 0, err
	}

	if opts.OutputResampleMultiplier != 1 {
		data, err = dsp.ResampleMultiplier(data, sampleRate, opts.OutputResampleMultiplier)
		if err != nil {
			return nil, 0, fmt.Errorf("output resample: %w", err)
		}
	}

	return data, sampleRate, nil
}
