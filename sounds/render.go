// SPDX-License-Identifier: EPL-2.0

package sounds

import (
	"github.com/go-audio/audio"

	"github.com/clarity-layer/assetgen/synth"
)

// Render synthesizes the effect: each segment is generated, shaped by
// its own envelope and appended in order. The result length is the
// sum of the segment lengths.
func Render(e Effect) (*audio.FloatBuffer, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	segments := make([]*audio.FloatBuffer, 0, len(e.Segments))
	for _, s := range e.Segments {
		var buf *audio.FloatBuffer
		switch s.Kind {
		case KindTone:
			buf = synth.Tone(s.Frequency, s.Duration, s.Amplitude)
		case KindSweep:
			buf = synth.Sweep(s.From, s.To, s.Duration, s.Amplitude)
		case KindChord:
			buf = synth.Chord(s.Frequencies, s.Duration, s.Amplitude)
		}
		segments = append(segments, s.Envelope.Apply(buf))
	}

	if len(segments) == 1 {
		return segments[0], nil
	}
	return synth.Concat(segments...), nil
}
