// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ReadAll drains src into a single sample slice, reading bufferSize
// samples at a time. The effect processes whole buffers offline, so
// every source is collected into memory before the beat loop runs.
//
// A bufferSize below 1 returns ErrInvalidBufferSize.
func ReadAll(src Source, bufferSize int) ([]float32, error) {
	if bufferSize < 1 {
		return nil, ErrInvalidBufferSize
	}

	var samples []float32
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return samples, nil
}
