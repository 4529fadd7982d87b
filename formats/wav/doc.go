// SPDX-License-Identifier: EPL-2.0

// Package wav writes synthesized sample buffers as WAV files.
//
// It uses the github.com/go-audio library for robust WAV file
// handling. Output is always mono 16-bit PCM, the format the Clarity
// Layer sound assets are consumed in.
//
// # Writing
//
// WriteMono16 quantizes a normalized float buffer and writes one
// complete file:
//
//	buf := synth.Tone(440, 0.2, 0.5)
//	f, _ := os.Create("tone.wav")
//	defer f.Close()
//	err := wav.WriteMono16(f, 44100, buf)
//
// Samples are clamped to [-1, 1] before quantization, so a buffer
// that was never shaped past full scale still produces a valid file.
//
// # Error Handling
//
//   - ErrNoSamples: the buffer is nil or empty
//   - ErrInvalidSampleRate: the sample rate is not positive
//
// Any underlying I/O error is returned wrapped.
package wav
