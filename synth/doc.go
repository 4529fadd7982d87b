// SPDX-License-Identifier: EPL-2.0

// Package synth generates short mono waveforms for UI feedback sounds.
//
// All generators are pure functions of their numeric parameters and
// return a *audio.FloatBuffer (github.com/go-audio/audio) holding
// normalized float64 samples at 44100 Hz:
//
//	buf := synth.Tone(440, 0.2, 0.5)          // pure sine
//	buf = synth.Sweep(440, 880, 0.2, 0.5)     // linear frequency sweep
//	buf = synth.Chord([]float64{523.25, 659.25, 783.99}, 0.3, 0.5)
//
// A buffer holds round(44100 × duration) samples, each within
// [-amplitude, amplitude].
//
// # Envelopes
//
// Amplitude shaping uses a linear ADSR envelope that mutates the
// buffer in place:
//
//	env := synth.Envelope{Attack: 0.01, Decay: 0.02, Sustain: 0.7, Release: 0.05}
//	env.Apply(buf)
//
// When the attack, decay and release phases together exceed the buffer
// length, Apply falls back to a plain linear fade-in/fade-out over the
// first and last 10% of the buffer.
//
// # Sweep phase model
//
// Sweep evaluates the instantaneous (interpolated) frequency at the
// absolute sample time rather than integrating phase. For large
// frequency ranges this can produce audible discontinuities; the
// behavior is intentional and kept for parity with the shipped assets.
package synth
