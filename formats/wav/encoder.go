// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/wryhode/slurm/utils"
)

// Encode writes samples as a mono 16-bit PCM WAV at sampleRate. Samples
// are float32 values in [-1,1]; values outside that range are clamped.
//
// go-audio's encoder patches chunk sizes into the header on Close, so
// the destination must be seekable (*os.File qualifies).
func Encode(w io.WriteSeeker, sampleRate int, samples []float32) error {
	enc := gowav.NewEncoder(w, sampleRate, 16, 1, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = int(utils.Float32ToInt16(s))
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
