// SPDX-License-Identifier: EPL-2.0

package sounds

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/clarity-layer/assetgen/synth"
)

// Segment kinds.
const (
	KindTone  = "tone"
	KindSweep = "sweep"
	KindChord = "chord"
)

// Segment is one synthesized note of an effect. Kind selects the
// generator; only the parameter fields for that kind are meaningful.
type Segment struct {
	Kind        string         `yaml:"kind"`
	Frequency   float64        `yaml:",omitempty"`      // tone
	From        float64        `yaml:",omitempty"`      // sweep
	To          float64        `yaml:",omitempty"`      // sweep
	Frequencies []float64      `yaml:",flow,omitempty"` // chord
	Duration    float64        `yaml:"duration"`
	Amplitude   float64        `yaml:"amplitude"`
	Envelope    synth.Envelope `yaml:"envelope"`
}

// Effect is a named UI feedback sound: one or more segments played
// back to back. The name doubles as the output file base name.
type Effect struct {
	Name     string    `yaml:"name"`
	Segments []Segment `yaml:"segments"`
}

//go:embed palette.yaml
var paletteYAML []byte

var (
	paletteOnce sync.Once
	palette     []Effect
	paletteErr  error
)

// Default returns the built-in effect palette in output order.
func Default() ([]Effect, error) {
	paletteOnce.Do(func() {
		var effects []Effect
		if err := yaml.Unmarshal(paletteYAML, &effects); err != nil {
			paletteErr = fmt.Errorf("parsing embedded palette: %w", err)
			return
		}
		for _, e := range effects {
			if err := e.Validate(); err != nil {
				paletteErr = fmt.Errorf("embedded palette: %w", err)
				return
			}
		}
		palette = effects
	})
	return palette, paletteErr
}

// Validate checks that the segment parameters can drive a generator.
func (s Segment) Validate() error {
	if s.Duration <= 0 {
		return fmt.Errorf("segment duration must be positive, got %v", s.Duration)
	}
	if s.Amplitude <= 0 || s.Amplitude > 1 {
		return fmt.Errorf("segment amplitude must be in (0, 1], got %v", s.Amplitude)
	}
	if s.Envelope.Sustain < 0 || s.Envelope.Sustain > 1 {
		return fmt.Errorf("envelope sustain must be in [0, 1], got %v", s.Envelope.Sustain)
	}
	if s.Envelope.Attack < 0 || s.Envelope.Decay < 0 || s.Envelope.Release < 0 {
		return fmt.Errorf("envelope phase durations must not be negative, got %v/%v/%v",
			s.Envelope.Attack, s.Envelope.Decay, s.Envelope.Release)
	}

	switch s.Kind {
	case KindTone:
		if s.Frequency <= 0 {
			return fmt.Errorf("tone frequency must be positive, got %v", s.Frequency)
		}
	case KindSweep:
		if s.From <= 0 || s.To <= 0 {
			return fmt.Errorf("sweep frequencies must be positive, got %v..%v", s.From, s.To)
		}
	case KindChord:
		if len(s.Frequencies) == 0 {
			return fmt.Errorf("chord needs at least one frequency")
		}
		for _, f := range s.Frequencies {
			if f <= 0 {
				return fmt.Errorf("chord frequency must be positive, got %v", f)
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
	return nil
}

// Validate checks the effect and all of its segments.
func (e Effect) Validate() error {
	if e.Name == "" {
		return ErrUnnamed
	}
	if len(e.Segments) == 0 {
		return fmt.Errorf("%s: %w", e.Name, ErrNoSegments)
	}
	for i, s := range e.Segments {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%s: segment %d: %w", e.Name, i, err)
		}
	}
	return nil
}
