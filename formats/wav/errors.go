// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNoSamples         = errors.New("no samples to write")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
