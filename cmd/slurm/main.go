// Command slurm applies a beat-synchronous time-warp and feedback echo
// to an audio file and writes the result as 16-bit mono WAV.
//
// Usage:
//
//	slurm -bpm 120 input.wav
//	slurm -bpm 97 -o warped.wav input.mp3
//	slurm -bpm 140 -speed-from 0.8 -speed-to 1.6 input.ogg
//	slurm -bpm 120 -reverse -flipflop input.wav
//
// The input format is picked by file extension; WAV, MP3, Ogg Vorbis
// and AIFF are supported. Without -o the output lands next to the
// input as <name>-slurmed.wav.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/wryhode/slurm"
	"github.com/wryhode/slurm/formats/wav"
)

const minRequiredArgs = 1

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	bpm := flag.Float64("bpm", 0, "Tempo of the input in beats per minute (required)")
	output := flag.String("o", "", "Output WAV path (default: <input>-slurmed.wav)")

	beatOffset := flag.Float64("beat-offset", 0, "Fractional window start within each beat, in [0,1)")
	beatSize := flag.Float64("beat-size", 0.5, "Fractional window length within each beat, in (0,1]")
	sliceMix := flag.Float64("slice-mix", 0.15, "Output gain of each windowed slice")
	reverse := flag.Bool("reverse", false, "Play each slice backwards")

	echoMix := flag.Float64("echo-mix", 0.5, "Echo buffer gain in each slice's output")
	echoMultiplier := flag.Float64("echo-multiplier", 1, "Per-slice echo decay (values in (0,1) decay)")
	echoSliceMix := flag.Float64("echo-slice-mix", 0.65, "Gain at which each slice feeds the echo buffer")
	echoResample := flag.Float64("echo-resample", 1.1, "Speed-morph factor for the echo tail (1 disables)")
	echoResampleDryWet := flag.Float64("echo-resample-drywet", 0.85, "Blend between unmorphed (0) and morphed (1) echo")
	echoFlip := flag.Bool("echo-flip", true, "Blend each slice with its reversal before feedback")
	echoFlipDryWet := flag.Float64("echo-flip-drywet", 0.4, "Blend between forward (0) and reversed (1) feedback")
	flipFlop := flag.Bool("flipflop", false, "Reverse the echo buffer after every slice")

	speedFrom := flag.Float64("speed-from", 1, "Playback speed at the start of the track")
	speedTo := flag.Float64("speed-to", 1, "Playback speed at the end of the track")

	inResample := flag.Float64("in-resample", 1, "Rate-resample the input before the beat loop (1 disables)")
	outResample := flag.Float64("out-resample", 1, "Rate-resample the result after the beat loop (1 disables)")

	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs || *bpm == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s -bpm <tempo> [options] input.{wav,mp3,ogg,aiff}\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -bpm 120 track.wav                          # defaults\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -bpm 97 -beat-size 0.25 -o out.wav loop.mp3 # shorter slices\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -bpm 140 -speed-from 0.5 -speed-to 2 mix.ogg # accelerating warp\n", os.Args[0])
		return fmt.Errorf("input file and -bpm are required")
	}

	inputPath := args[0]
	outPath := outputPath(inputPath, *output)

	opts := slurm.Options{
		BPM: *bpm,
		Slice: slurm.SliceSettings{
			BeatOffset: *beatOffset,
			BeatSize:   *beatSize,
			Mix:        *sliceMix,
			Reverse:    *reverse,
		},
		Echo: echoSettings(
			*echoMix, *echoMultiplier, *echoSliceMix,
			*echoResample, *echoResampleDryWet,
			*echoFlip, *echoFlipDryWet, *flipFlop,
		),
		Timing:                   linearTiming(*speedFrom, *speedTo),
		InputResampleMultiplier:  *inResample,
		OutputResampleMultiplier: *outResample,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	src, err := openSource(inputPath)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	if *verbose {
		log.Printf("Input: %s (%d Hz, %d channels)", inputPath, src.SampleRate(), src.Channels())
		log.Printf("Output: %s", outPath)
		log.Printf("Tempo: %.2f bpm, window [%.2f, %.2f), speed %.2f -> %.2f",
			*bpm, *beatOffset, *beatOffset+*beatSize, *speedFrom, *speedTo)
	}

	start := time.Now()
	samples, rate, err := slurm.Process(src, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := writeWAV(outPath, int(rate), samples); err != nil {
		return err
	}

	fmt.Printf("Slurmed %s -> %s\n", filepath.Base(inputPath), filepath.Base(outPath))
	fmt.Printf("  %d samples at %.0f Hz (%.2fs of audio)\n",
		len(samples), rate, float64(len(samples))/rate)
	fmt.Printf("  Processed in %.2fs\n", elapsed.Seconds())

	return nil
}

// writeWAV stores samples as a 16-bit mono WAV file.
func writeWAV(path string, sampleRate int, samples []float32) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := wav.Encode(out, sampleRate, samples); err != nil {
		_ = out.Close()
		return fmt.Errorf("write output: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
