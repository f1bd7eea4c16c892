package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wryhode/slurm"
	"github.com/wryhode/slurm/audio"
	"github.com/wryhode/slurm/echo"
	"github.com/wryhode/slurm/formats/aiff"
	"github.com/wryhode/slurm/formats/mp3"
	"github.com/wryhode/slurm/formats/vorbis"
	"github.com/wryhode/slurm/formats/wav"
)

// newRegistry returns a registry with every supported input format.
func newRegistry() *audio.Registry {
	registry := audio.NewRegistry()
	registry.Register("wav", wav.Decoder{})
	registry.Register("mp3", mp3.Decoder{})
	registry.Register("ogg", vorbis.Decoder{})
	registry.Register("aiff", aiff.Decoder{})
	registry.Register("aif", aiff.Decoder{})
	return registry
}

// openSource opens path and decodes it with the decoder registered for
// its extension.
func openSource(path string) (audio.Source, error) {
	ext := filepath.Ext(path)
	decoder, ok := newRegistry().Get(ext)
	if !ok {
		return nil, fmt.Errorf("unsupported input format %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}

	src, err := decoder.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	return src, nil
}

// outputPath resolves the output file location. An explicit path wins;
// otherwise the input name gets a "-slurmed" suffix and a .wav
// extension, next to the input.
func outputPath(inputPath, explicit string) string {
	if explicit != "" {
		return explicit
	}

	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	return base + "-slurmed.wav"
}

// linearTiming returns a timing curve that moves linearly from speed
// "from" at the start of the track to speed "to" at the end. Equal
// endpoints collapse to a constant curve.
func linearTiming(from, to float64) slurm.TimingFunc {
	if from == to {
		speed := from
		return func(float64) float64 { return speed }
	}
	return func(t float64) float64 {
		return from + (to-from)*t
	}
}

// echoSettings bundles the echo flags into a settings value.
func echoSettings(mix, multiplier, sliceMix, resample, resampleDryWet float64, flip bool, flipDryWet float64, flipFlop bool) echo.Settings {
	return echo.Settings{
		Mix:                        mix,
		Multiplier:                 multiplier,
		SliceMix:                   sliceMix,
		InternalResampleMultiplier: resample,
		InternalResampleDryWet:     resampleDryWet,
		InternalFlip:               flip,
		InternalFlipDryWet:         flipDryWet,
		FlipFlop:                   flipFlop,
	}
}
