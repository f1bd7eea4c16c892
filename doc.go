// SPDX-License-Identifier: EPL-2.0

// Package slurm implements a beat-synchronous audio time-warping effect.
//
// The effect slices a mono signal into beat-aligned segments, time
// stretches or compresses each segment according to a per-beat timing
// curve, and layers a decaying, speed-morphing, partially time-reversed
// feedback echo across the segments. Resampling deliberately shifts
// pitch along with speed; that smear is the effect.
//
// Processing is offline and mono only: the whole buffer is transformed
// in one pass, and stereo input is reduced to mono before the core ever
// sees it.
//
// # Quick start
//
// Decode a file with one of the formats subpackages and run Process:
//
//	file, _ := os.Open("track.mp3")
//	src, _ := mp3.Decoder{}.Decode(file)
//
//	opts := slurm.DefaultOptions(120)
//	opts.Timing = func(t float64) float64 { return 1.5 - t*0.5 }
//
//	out, rate, err := slurm.Process(src, opts)
//	if err != nil {
//	    // Handle error
//	}
//
//	dst, _ := os.Create("track-slurmed.wav")
//	wav.Encode(dst, int(rate), out)
//
// # Pipeline
//
// For each beat segment, in order:
//
//  1. A fractional window of the segment is taken
//     (SliceSettings.BeatOffset, SliceSettings.BeatSize).
//  2. The window is resampled by the speed the timing curve returns at
//     that position, then leveled and optionally reversed.
//  3. The echo engine mixes its feedback buffer into the slice and
//     folds the slice back into the buffer (see the echo package).
//
// The outputs are concatenated. Because every segment is independently
// time-scaled, the result's length generally differs from the input's.
//
// The per-segment loop is intrinsically serial: each slice depends on
// the echo buffer left by the previous one.
//
// # Subpackages
//
//   - dsp: pure numeric helpers (splitting, windowing, resampling)
//   - echo: the stateful feedback echo engine
//   - audio: Source interface, mono mixing, decoder registry
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: codecs
package slurm
