// SPDX-License-Identifier: EPL-2.0

// Package audio provides the stream plumbing between format decoders
// and the slurm core.
//
// This package contains:
//   - Source interface for audio input
//   - MonoMixer for channel reduction
//   - ReadAll for draining a source into memory
//   - Format registry for decoder registration
//
// # Source interface
//
// The Source interface is the contract every decoder implements:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 values in the range [-1.0, 1.0].
//
// # Mono reduction
//
// The slurm core is mono only. Reducing stereo (or any channel count)
// to mono is this package's job, not the core's:
//
//	mono := audio.NewMonoMixer(source)
//	samples, err := audio.ReadAll(mono, 4096)
//
// MonoMixer averages the channels of each frame; mono sources pass
// through untouched.
//
// # Decoder registry
//
// The Registry maps format keys to decoders, so callers can pick a
// decoder from a file extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	reg.Register("mp3", mp3.Decoder{})
//
//	dec, ok := reg.Get(filepath.Ext(path))
//
// Keys are case-insensitive and a leading dot is ignored.
package audio
