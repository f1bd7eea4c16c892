// SPDX-License-Identifier: EPL-2.0

package slurm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wryhode/slurm/internal/audiotest"
)

// failingSource reports an error on the first read.
type failingSource struct {
	err error
}

func (f *failingSource) SampleRate() int { return 44100 }
func (f *failingSource) Channels() int   { return 1 }
func (f *failingSource) Close() error    { return nil }

func (f *failingSource) ReadSamples(dst []float32) (int, error) {
	return 0, f.err
}

// TestProcess_SilentDefaults runs the tuned defaults over four seconds
// of stereo silence.
func TestProcess_SilentDefaults(t *testing.T) {
	src := audiotest.NewSilentSource(44100, 2, 4*44100)

	out, rate, err := Process(src, DefaultOptions(120))
	require.NoError(t, err)

	assert.Equal(t, 44100.0, rate)

	// 8 beats of 22050 samples, halved by the default window.
	require.Len(t, out, 88200)
	for i, s := range out {
		require.Zero(t, s, "sample %d", i)
	}
}

// TestProcess_MixesToMono verifies multi-channel input is averaged
// before the beat loop.
func TestProcess_MixesToMono(t *testing.T) {
	// Left 1.0, right 0.0 -> mono 0.5, scaled by the slice mix.
	src := audiotest.NewMockSource(1000, 2, 2000, func(sample, channel int) float32 {
		if channel == 0 {
			return 1.0
		}
		return 0.0
	})

	opts := DefaultOptions(60)
	opts.Slice = SliceSettings{BeatOffset: 0, BeatSize: 1, Mix: 1}
	opts.Echo = neutralEcho()

	out, rate, err := Process(src, opts)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, rate)
	require.Len(t, out, 2000)
	for i, s := range out {
		require.Equal(t, float32(0.5), s, "sample %d", i)
	}
}

// TestProcess_InputResample verifies the pre-loop resample changes the
// buffer the beat split sees.
func TestProcess_InputResample(t *testing.T) {
	src := audiotest.NewSilentSource(44100, 1, 4*44100)

	opts := DefaultOptions(120)
	opts.InputResampleMultiplier = 0.5

	out, _, err := Process(src, opts)
	require.NoError(t, err)

	// 176400 samples shrink to 88200 before the split: 4 beats of 22050,
	// each halved by the default window.
	assert.Len(t, out, 44100)
}

// TestProcess_OutputResample verifies the post-loop resample scales the
// result length.
func TestProcess_OutputResample(t *testing.T) {
	src := audiotest.NewSilentSource(44100, 1, 4*44100)

	opts := DefaultOptions(120)
	opts.OutputResampleMultiplier = 2

	out, _, err := Process(src, opts)
	require.NoError(t, err)

	// The beat loop yields 88200 samples, doubled afterwards.
	assert.Len(t, out, 176400)
}

// TestProcess_PreservesOrder feeds a ramp through a neutral
// configuration and checks the output is the ramp itself.
func TestProcess_PreservesOrder(t *testing.T) {
	src := audiotest.NewRampSource(1000, 1, 2000)

	opts := DefaultOptions(60)
	opts.Slice = SliceSettings{BeatOffset: 0, BeatSize: 1, Mix: 1}
	opts.Echo = neutralEcho()

	out, _, err := Process(src, opts)
	require.NoError(t, err)
	require.Len(t, out, 2000)

	for i := 1; i < len(out); i++ {
		require.GreaterOrEqual(t, out[i], out[i-1], "sample %d", i)
	}
	assert.Equal(t, float32(0), out[0])
	assert.Equal(t, float32(1), out[len(out)-1])
}

func TestProcess_InvalidOptions(t *testing.T) {
	src := audiotest.NewSilentSource(44100, 1, 44100)

	opts := DefaultOptions(0)

	_, _, err := Process(src, opts)
	assert.Error(t, err)
}

func TestProcess_SourceError(t *testing.T) {
	readErr := errors.New("stream broke")

	_, _, err := Process(&failingSource{err: readErr}, DefaultOptions(120))
	assert.ErrorIs(t, err, readErr)
}
