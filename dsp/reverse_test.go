// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	got := Reverse([]float32{1, 2, 3, 4})
	assert.Equal(t, []float32{4, 3, 2, 1}, got)
}

func TestReverse_OddLength(t *testing.T) {
	got := Reverse([]float32{1, 2, 3})
	assert.Equal(t, []float32{3, 2, 1}, got)
}

// TestReverse_RoundTrip verifies double reversal reproduces the input.
func TestReverse_RoundTrip(t *testing.T) {
	data := sineWave(1001, 44100, 440)

	got := Reverse(Reverse(data))
	assert.Equal(t, data, got)
}

// TestReverse_Copies verifies the input is left untouched.
func TestReverse_Copies(t *testing.T) {
	data := []float32{1, 2, 3}

	out := Reverse(data)
	require.Equal(t, []float32{1, 2, 3}, data)

	out[0] = 9
	assert.Equal(t, float32(1), data[0])
}

func TestReverse_Empty(t *testing.T) {
	assert.Empty(t, Reverse(nil))
}
