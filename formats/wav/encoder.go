// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/clarity-layer/assetgen/utils"
)

// WriteMono16 quantizes buf to 16-bit signed PCM and writes it as a
// single-channel WAV file at sampleRate. Each sample is clamped to
// [-1, 1] before scaling. The writer needs to seek because the RIFF
// header sizes are patched once the data chunk is complete.
func WriteMono16(ws io.WriteSeeker, sampleRate int, buf *audio.FloatBuffer) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if buf == nil || len(buf.Data) == 0 {
		return ErrNoSamples
	}

	intBuf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(buf.Data)),
		SourceBitDepth: 16,
	}
	for i, s := range buf.Data {
		intBuf.Data[i] = int(utils.Float64ToInt16(s))
	}

	enc := gowav.NewEncoder(ws, sampleRate, 16, 1, 1)
	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}
