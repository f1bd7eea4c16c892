// Package aiff provides AIFF audio file decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF
// (Audio Interchange File Format) files, commonly used on macOS.
//
// # Supported Formats
//
// The decoder supports:
//   - 16-bit PCM AIFF files
//   - Mono and multi-channel audio
//   - Various sample rates
//
// Other bit depths are rejected with ErrOnlyPCM16bitSupported.
//
// # Decoding AIFF Files
//
// Use the Decoder to read AIFF files:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values normalized to the range [-1.0, 1.0].
//
// # Seeking
//
// go-audio requires an io.ReadSeeker. When the provided reader does not
// support seeking, the decoder buffers the entire input in memory.
package aiff
