// SPDX-License-Identifier: EPL-2.0

// Package assetgen generates the static Clarity Layer application
// assets: the multi-resolution icon and the UI feedback sounds.
//
// Both generators are deterministic, run once at build/setup time and
// take no input beyond the fixed constants compiled into this module.
//
// # Icon
//
// GenerateIcons renders the application icon (a stylized eye with a
// magnifying lens) at 16, 32, 48 and 256 pixels, packs the four
// rasters into clarity.ico and writes the largest one as
// clarity_256.png:
//
//	paths, err := assetgen.GenerateIcons("assets/icons")
//
// # Sounds
//
// GenerateSounds synthesizes the 11-effect feedback palette (enable,
// disable, zoom_in, zoom_out, profile, speak_start, speak_stop,
// panic, error, click, focus) and writes one mono 16-bit 44100 Hz WAV
// file per effect:
//
//	paths, err := assetgen.GenerateSounds("assets/sounds")
//
// Both functions create the output directory if missing and return
// the paths they wrote. Failures abort the whole run; there is no
// partial-failure recovery, which is acceptable for a one-shot
// developer tool.
//
// The cmd/genicon and cmd/gensounds binaries wrap these two calls for
// use from build scripts.
//
// # Building blocks
//
// The underlying pieces are exported for tests and tooling:
//   - icon: drawing and ICO container packing
//   - synth: tone, sweep and chord generators plus the ADSR envelope
//   - sounds: the named effect palette and its renderer
//   - formats/wav: the mono 16-bit PCM writer
package assetgen
