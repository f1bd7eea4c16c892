// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package wraps github.com/go-audio/wav. Decoding supports PCM at
// 8, 16, 24 and 32 bits, any channel count and any sample rate.
// Encoding writes mono 16-bit PCM, the output format of the slurm
// pipeline.
//
// # Decoding WAV files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0]. Non-seekable readers are buffered
// into memory first; go-audio needs to seek between chunks.
//
// # Writing WAV files
//
// Use Encode to persist processed samples:
//
//	file, _ := os.Create("output.wav")
//	err := wav.Encode(file, 44100, samples)
//
// The destination must be an io.WriteSeeker because the encoder patches
// chunk sizes into the header when it finishes.
//
// # Error handling
//
// The package defines several error values:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrUnsupportedWavLayout: the file has no readable format chunk
//   - ErrUnsupportedBitDepth: the PCM bit depth is not 8/16/24/32
package wav
