// SPDX-License-Identifier: EPL-2.0

package utils

// Float64ToInt16 quantizes a normalized sample to 16-bit signed PCM.
// The value is clamped to [-1, 1] first, then scaled by 32767 and
// truncated toward zero, so -1.0 maps to -32767 (not math.MinInt16).
func Float64ToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}
