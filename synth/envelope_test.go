// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"

	"github.com/go-audio/audio"
)

func onesBuffer(n int) *audio.FloatBuffer {
	buf := newBuffer(n)
	for i := range buf.Data {
		buf.Data[i] = 1.0
	}
	return buf
}

func TestEnvelope_ADSRPhases(t *testing.T) {
	t.Parallel()

	env := Envelope{Attack: 0.01, Decay: 0.02, Sustain: 0.7, Release: 0.05}
	buf := env.Apply(onesBuffer(NumSamples(0.2)))

	attack := int(0.01 * SampleRate)
	decay := int(0.02 * SampleRate)
	release := int(0.05 * SampleRate)
	n := len(buf.Data)

	if buf.Data[0] != 0 {
		t.Errorf("attack start = %v, want 0", buf.Data[0])
	}

	// End of attack reaches full level (within one ramp step).
	if got := buf.Data[attack-1]; math.Abs(got-1.0) > 2.0/float64(attack) {
		t.Errorf("attack end = %v, want ≈1", got)
	}

	// Sustain plateau holds the sustain level exactly.
	mid := attack + decay + (n-attack-decay-release)/2
	if got := buf.Data[mid]; got != 0.7 {
		t.Errorf("sustain level = %v, want 0.7", got)
	}

	// Release tail decays toward zero.
	if got := buf.Data[n-1]; got > 2.0/float64(release) {
		t.Errorf("release end = %v, want ≈0", got)
	}
}

func TestEnvelope_OutputStaysNormalized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  Envelope
		dur  float64
	}{
		{
			name: "standard",
			env:  Envelope{Attack: 0.01, Decay: 0.02, Sustain: 0.7, Release: 0.05},
			dur:  0.2,
		},
		{
			name: "fast attack",
			env:  Envelope{Attack: 0.002, Decay: 0.005, Sustain: 0.8, Release: 0.01},
			dur:  0.05,
		},
		{
			name: "full sustain",
			env:  Envelope{Attack: 0.01, Decay: 0.01, Sustain: 1.0, Release: 0.01},
			dur:  0.1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := tt.env.Apply(Tone(440, tt.dur, 1.0))
			for i, s := range buf.Data {
				if math.Abs(s) > 1.0 {
					t.Fatalf("sample %d = %v, outside [-1, 1]", i, s)
				}
			}
		})
	}
}

func TestEnvelope_FadeFallback(t *testing.T) {
	t.Parallel()

	// 10ms buffer cannot hold a 10+20+50ms ADSR cycle, so Apply must
	// take the symmetric fade path.
	env := Envelope{Attack: 0.01, Decay: 0.02, Sustain: 0.7, Release: 0.05}
	n := NumSamples(0.01)
	buf := env.Apply(onesBuffer(n))

	if buf.Data[0] != 0 {
		t.Errorf("fade start = %v, want 0", buf.Data[0])
	}

	// Middle 80% is untouched by the fade.
	if got := buf.Data[n/2]; got != 1.0 {
		t.Errorf("fade middle = %v, want 1", got)
	}

	// Tail ramps back down.
	if got := buf.Data[n-1]; got >= 0.1 {
		t.Errorf("fade end = %v, want <0.1", got)
	}
}

func TestEnvelope_EmptyBuffer(t *testing.T) {
	t.Parallel()

	env := Envelope{Attack: 0.01, Decay: 0.02, Sustain: 0.7, Release: 0.05}
	buf := env.Apply(newBuffer(0))
	if len(buf.Data) != 0 {
		t.Errorf("Apply() on empty buffer changed length to %d", len(buf.Data))
	}
}

func TestEnvelope_InPlace(t *testing.T) {
	t.Parallel()

	buf := onesBuffer(NumSamples(0.2))
	env := Envelope{Attack: 0.01, Decay: 0.02, Sustain: 0.7, Release: 0.05}
	out := env.Apply(buf)

	if out != buf {
		t.Error("Apply() returned a different buffer, want in-place mutation")
	}
}
