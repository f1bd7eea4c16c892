// SPDX-License-Identifier: EPL-2.0

package echo

import (
	"fmt"

	"github.com/wryhode/slurm/dsp"
)

// Engine carries the echo buffer across slices. Create one per run
// with NewEngine and call ProcessSlice once per slice, in order.
type Engine struct {
	buf []float32
}

// NewEngine returns an engine whose echo buffer is size samples of
// silence. Size it to the first processed slice.
func NewEngine(size int) *Engine {
	return &Engine{buf: make([]float32, size)}
}

// BufferLen reports the current length of the echo buffer.
func (e *Engine) BufferLen() int { return len(e.buf) }

// ProcessSlice mixes the echo buffer into slice, returning the slice's
// output contribution, and folds slice back into the buffer for the
// slices that follow. See the package documentation for the stage order.
//
// Any resampling failure is fatal: the echo buffer cannot skip a slice
// without losing sync with the segment sequence.
func (e *Engine) ProcessSlice(slice []float32, sampleRate float64, s Settings) ([]float32, error) {
	// Slice lengths vary with the timing curve, so the buffer is refit
	// to the incoming slice before any mixing.
	buf, err := dsp.ResampleLength(e.buf, len(slice))
	if err != nil {
		return nil, fmt.Errorf("refit echo buffer: %w", err)
	}
	e.buf = buf

	out := make([]float32, len(slice))
	mix := float32(s.Mix)
	for i, v := range slice {
		out[i] = v + e.buf[i]*mix
	}

	decay := float32(s.Multiplier)
	for i := range e.buf {
		e.buf[i] *= decay
	}

	if s.InternalResampleMultiplier != 1 {
		if err := e.morph(sampleRate, s); err != nil {
			return nil, err
		}
	}

	toEcho := slice
	if s.InternalFlip {
		toEcho = dsp.Crossfade(slice, dsp.Reverse(slice), float32(s.InternalFlipDryWet))
	}

	feedback := float32(s.SliceMix)
	for i := range e.buf {
		e.buf[i] += toEcho[i] * feedback
	}

	if s.FlipFlop {
		e.buf = dsp.Reverse(e.buf)
	}

	return out, nil
}

// morph rate-resamples the echo buffer by the internal multiplier and
// refits it to its current length, so the tail keeps its duration but
// plays at a shifted pitch. The result is crossfaded with the unmorphed
// buffer.
func (e *Engine) morph(sampleRate float64, s Settings) error {
	morphed, err := dsp.ResampleMultiplier(e.buf, sampleRate, s.InternalResampleMultiplier)
	if err != nil {
		return fmt.Errorf("morph echo buffer: %w", err)
	}

	morphed, err = dsp.ResampleLength(morphed, len(e.buf))
	if err != nil {
		return fmt.Errorf("morph echo buffer: %w", err)
	}

	e.buf = dsp.Crossfade(e.buf, morphed, float32(s.InternalResampleDryWet))
	return nil
}
