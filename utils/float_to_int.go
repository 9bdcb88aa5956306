// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM. Input outside
// [-1, 1] is clamped first. The scale factor is 32767 for both polarities,
// so the mapping is symmetric and +1.0 cannot overflow.
func Float32ToInt16(x float32) int16 {
	switch {
	case x > 1:
		x = 1
	case x < -1:
		x = -1
	}

	return int16(x * 32767.0)
}
