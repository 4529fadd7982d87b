// SPDX-License-Identifier: EPL-2.0

package sounds

import (
	"math"
	"testing"

	"github.com/clarity-layer/assetgen/synth"
	"github.com/clarity-layer/assetgen/utils"
)

func TestRender_DefaultPaletteLengths(t *testing.T) {
	t.Parallel()

	effects, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	for _, e := range effects {
		e := e
		t.Run(e.Name, func(t *testing.T) {
			t.Parallel()

			buf, err := Render(e)
			if err != nil {
				t.Fatalf("Render(%q) error = %v", e.Name, err)
			}

			want := 0
			for _, s := range e.Segments {
				want += synth.NumSamples(s.Duration)
			}
			if got := len(buf.Data); got != want {
				t.Errorf("Render(%q) length = %d, want %d", e.Name, got, want)
			}

			for i, v := range buf.Data {
				if math.Abs(v) > 1 {
					t.Fatalf("Render(%q) sample %d = %v, outside [-1, 1]", e.Name, i, v)
				}
			}
		})
	}
}

func TestRender_PanicDuration(t *testing.T) {
	t.Parallel()

	effects, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	for _, e := range effects {
		if e.Name != "panic" {
			continue
		}
		buf, err := Render(e)
		if err != nil {
			t.Fatalf("Render(panic) error = %v", err)
		}
		// 0.15 + 0.15 + 0.2 seconds at 44100 Hz.
		if got, want := len(buf.Data), 22050; got != want {
			t.Errorf("Render(panic) length = %d, want %d", got, want)
		}
		return
	}
	t.Fatal("panic effect not found")
}

// TestRender_Click pins the end-to-end click contract: 1000 Hz for
// 0.05 s at amplitude 0.3 gives 2205 samples starting at silence and
// never quantizing past 32767×0.3.
func TestRender_Click(t *testing.T) {
	t.Parallel()

	click := Effect{
		Name: "click",
		Segments: []Segment{{
			Kind:      KindTone,
			Frequency: 1000,
			Duration:  0.05,
			Amplitude: 0.3,
			Envelope:  synth.Envelope{Attack: 0.002, Decay: 0.005, Sustain: 0.8, Release: 0.01},
		}},
	}

	buf, err := Render(click)
	if err != nil {
		t.Fatalf("Render(click) error = %v", err)
	}

	if got, want := len(buf.Data), 2205; got != want {
		t.Fatalf("Render(click) length = %d, want %d", got, want)
	}
	if got := utils.Float64ToInt16(buf.Data[0]); got != 0 {
		t.Errorf("first quantized sample = %d, want 0", got)
	}

	limit := int16(math.Ceil(32767 * 0.3))
	for i, v := range buf.Data {
		q := utils.Float64ToInt16(v)
		if q > limit || q < -limit {
			t.Errorf("sample %d quantized to %d, beyond ±%d", i, q, limit)
		}
	}
}

func TestRender_InvalidEffect(t *testing.T) {
	t.Parallel()

	if _, err := Render(Effect{Name: "bad"}); err == nil {
		t.Error("Render() on invalid effect succeeded, want error")
	}
}
