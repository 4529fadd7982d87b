// SPDX-License-Identifier: EPL-2.0

package synth

import "github.com/go-audio/audio"

// Envelope is a linear ADSR amplitude shape. Attack, Decay and Release
// are durations in seconds; Sustain is a level in [0, 1].
type Envelope struct {
	Attack  float64 `yaml:"attack"`
	Decay   float64 `yaml:"decay"`
	Sustain float64 `yaml:"sustain"`
	Release float64 `yaml:"release"`
}

// Apply shapes buf in place and returns it. Phase sample counts are
// truncated from the durations; if attack+decay+release does not fit
// in the buffer, the sound is too short for a full ADSR cycle and a
// symmetric linear fade over the first and last 10% is applied
// instead. Given samples in [-1, 1], the output stays in [-1, 1].
func (e Envelope) Apply(buf *audio.FloatBuffer) *audio.FloatBuffer {
	n := len(buf.Data)
	if n == 0 {
		return buf
	}

	attack := int(e.Attack * SampleRate)
	decay := int(e.Decay * SampleRate)
	release := int(e.Release * SampleRate)
	sustain := n - attack - decay - release

	if sustain < 0 {
		for i := range buf.Data {
			t := float64(i) / float64(n)
			switch {
			case t < 0.1:
				buf.Data[i] *= t / 0.1
			case t > 0.9:
				buf.Data[i] *= (1 - t) / 0.1
			}
		}
		return buf
	}

	for i := range buf.Data {
		var gain float64
		switch {
		case i < attack:
			gain = float64(i) / float64(attack)
		case i < attack+decay:
			progress := float64(i-attack) / float64(decay)
			gain = 1.0 - (1.0-e.Sustain)*progress
		case i < attack+decay+sustain:
			gain = e.Sustain
		default:
			progress := float64(i-attack-decay-sustain) / float64(release)
			gain = e.Sustain * (1 - progress)
		}
		buf.Data[i] *= gain
	}
	return buf
}
