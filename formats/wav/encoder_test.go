// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []float32{0, 0.25, -0.25, 0.5, -0.5, 0.99, -0.99, 0}

	path := filepath.Join(t.TempDir(), "roundtrip.wav")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := Encode(out, 44100, samples); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer in.Close()

	src, err := Decoder{}.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	var decoded []float32
	buf := make([]float32, 4)
	for {
		n, err := src.ReadSamples(buf)
		decoded = append(decoded, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(decoded) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(decoded), len(samples))
	}

	// 16-bit quantization loses a little under 1/32768 per sample
	for i := range samples {
		if math.Abs(float64(decoded[i]-samples[i])) > 1.0/32000 {
			t.Errorf("decoded[%d] = %v, want ≈%v", i, decoded[i], samples[i])
		}
	}
}

func TestEncode_Clamping(t *testing.T) {
	t.Parallel()

	// Out-of-range samples must clamp, not wrap
	samples := []float32{2.0, -2.0}

	path := filepath.Join(t.TempDir(), "clamp.wav")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := Encode(out, 8000, samples); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer in.Close()

	src, err := Decoder{}.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf := make([]float32, 2)
	n, _ := src.ReadSamples(buf)
	if n != 2 {
		t.Fatalf("ReadSamples() n = %d, want 2", n)
	}

	if buf[0] < 0.99 || buf[0] > 1 {
		t.Errorf("positive overflow decoded to %v, want ≈1", buf[0])
	}
	if buf[1] > -0.99 || buf[1] < -1 {
		t.Errorf("negative overflow decoded to %v, want ≈-1", buf[1])
	}
}

func TestEncode_Empty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.wav")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer out.Close()

	if err := Encode(out, 8000, nil); err != nil {
		t.Errorf("Encode() error = %v, want nil for empty input", err)
	}
}
