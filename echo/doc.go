// SPDX-License-Identifier: EPL-2.0

// Package echo implements the feedback echo engine at the heart of the
// slurm effect.
//
// The engine owns a single mutable buffer of decaying prior audio. Each
// processed slice is mixed with the buffer to form the slice's output,
// then fed back into the buffer so it colors the slices that follow.
// Because slice lengths vary with the timing curve, the buffer is
// spectrally refit to the incoming slice's length on every call.
//
// # Processing order
//
// ProcessSlice applies a fixed stage order per slice:
//
//  1. Refit the echo buffer to the slice length.
//  2. Mix the buffer into the output (Settings.Mix).
//  3. Decay the buffer (Settings.Multiplier).
//  4. Optionally speed-morph the buffer in place
//     (InternalResampleMultiplier + InternalResampleDryWet).
//  5. Build the feedback input, optionally blended with its own
//     reversal (InternalFlip + InternalFlipDryWet).
//  6. Add the feedback input to the buffer (SliceMix).
//  7. Optionally reverse the whole buffer (FlipFlop).
//
// The order is part of the sound; changing it changes the effect.
//
// # State
//
// Engine is strictly sequential: slice i+1 depends on the buffer left
// by slice i, so calls must happen in slice order from a single
// goroutine. There is no way to skip a slice without desynchronizing
// the feedback chain, which is why processing errors are fatal to a run.
package echo
