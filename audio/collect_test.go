package audio

import (
	"errors"
	"testing"
)

func TestReadAll(t *testing.T) {
	t.Parallel()

	src := newConstantSource(44100, 1, 1000, 0.25)

	samples, err := ReadAll(src, 256)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if len(samples) != 1000 {
		t.Fatalf("ReadAll() returned %d samples, want 1000", len(samples))
	}

	for i, s := range samples {
		if s != 0.25 {
			t.Fatalf("samples[%d] = %v, want 0.25", i, s)
		}
	}
}

func TestReadAll_BufferLargerThanSource(t *testing.T) {
	t.Parallel()

	src := newConstantSource(44100, 1, 10, 0.5)

	samples, err := ReadAll(src, 4096)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if len(samples) != 10 {
		t.Errorf("ReadAll() returned %d samples, want 10", len(samples))
	}
}

func TestReadAll_EmptySource(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 1, 0)

	samples, err := ReadAll(src, 256)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if len(samples) != 0 {
		t.Errorf("ReadAll() returned %d samples, want 0", len(samples))
	}
}

func TestReadAll_InvalidBufferSize(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 1, 100)

	for _, size := range []int{0, -1, -4096} {
		_, err := ReadAll(src, size)
		if !errors.Is(err, ErrInvalidBufferSize) {
			t.Errorf("ReadAll(size=%d) error = %v, want ErrInvalidBufferSize", size, err)
		}
	}
}

func TestReadAll_SourceError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("device gone")
	src := &failingSource{err: readErr}

	_, err := ReadAll(src, 256)
	if !errors.Is(err, readErr) {
		t.Errorf("ReadAll() error = %v, want wrapped %v", err, readErr)
	}
}

func TestReadAll_ThroughMonoMixer(t *testing.T) {
	t.Parallel()

	src := newMockSource(44100, 2, 100, func(sample, channel int) float32 {
		if channel == 0 {
			return 1.0
		}
		return 0.0
	})

	samples, err := ReadAll(NewMonoMixer(src), 64)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if len(samples) != 100 {
		t.Fatalf("ReadAll() returned %d samples, want 100", len(samples))
	}

	for i, s := range samples {
		if s != 0.5 {
			t.Fatalf("samples[%d] = %v, want 0.5", i, s)
		}
	}
}
