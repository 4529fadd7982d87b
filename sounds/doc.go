// SPDX-License-Identifier: EPL-2.0

// Package sounds defines the Clarity Layer UI feedback palette: the
// named effects the host application plays for enable, disable, zoom,
// profile switching, speech, panic, error, click and focus events.
//
// The palette is data, not code: effect definitions live in the
// embedded palette.yaml and are decoded once on first use. Render
// turns a definition into a sample buffer ready for the WAV writer.
package sounds
