// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/go-audio/audio"
)

// SampleRate is the fixed output rate of every generator, in Hz.
const SampleRate = 44100

// monoFormat is shared by every generated buffer; generators never
// mutate it.
var monoFormat = &audio.Format{
	NumChannels: 1,
	SampleRate:  SampleRate,
}

// NumSamples returns the buffer length for a duration in seconds.
// Non-positive durations yield zero.
func NumSamples(duration float64) int {
	if duration <= 0 {
		return 0
	}
	return int(math.Round(SampleRate * duration))
}

func newBuffer(n int) *audio.FloatBuffer {
	return &audio.FloatBuffer{
		Format: monoFormat,
		Data:   make([]float64, n),
	}
}

// Tone generates a pure sine wave at the given frequency.
func Tone(frequency, duration, amplitude float64) *audio.FloatBuffer {
	buf := newBuffer(NumSamples(duration))
	for i := range buf.Data {
		t := float64(i) / SampleRate
		buf.Data[i] = amplitude * math.Sin(2*math.Pi*frequency*t)
	}
	return buf
}

// Sweep generates a tone whose frequency moves linearly from `from` to
// `to` over the buffer's duration. The instantaneous frequency is
// evaluated at the absolute sample time, not integrated into phase;
// see the package documentation for why this stays as-is.
func Sweep(from, to, duration, amplitude float64) *audio.FloatBuffer {
	buf := newBuffer(NumSamples(duration))
	n := float64(len(buf.Data))
	for i := range buf.Data {
		progress := float64(i) / n
		frequency := from + (to-from)*progress
		t := float64(i) / SampleRate
		buf.Data[i] = amplitude * math.Sin(2*math.Pi*frequency*t)
	}
	return buf
}

// Chord generates a superposition of simultaneous tones. Each tone is
// attenuated by 1/len(frequencies) so the mix never exceeds amplitude.
// An empty frequency list yields silence.
func Chord(frequencies []float64, duration, amplitude float64) *audio.FloatBuffer {
	buf := newBuffer(NumSamples(duration))
	if len(frequencies) == 0 {
		return buf
	}

	perTone := amplitude / float64(len(frequencies))
	for _, frequency := range frequencies {
		for i := range buf.Data {
			t := float64(i) / SampleRate
			buf.Data[i] += perTone * math.Sin(2*math.Pi*frequency*t)
		}
	}
	return buf
}

// Concat joins segment buffers into one sequential buffer. The result
// length is the sum of the segment lengths.
func Concat(bufs ...*audio.FloatBuffer) *audio.FloatBuffer {
	total := 0
	for _, b := range bufs {
		total += len(b.Data)
	}

	out := newBuffer(total)
	pos := 0
	for _, b := range bufs {
		pos += copy(out.Data[pos:], b.Data)
	}
	return out
}
