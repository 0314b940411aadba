// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clips x to [-1, 1] and scales it to 16-bit PCM.
// 32767 is used for both signs so +1 does not overflow.
func Float32ToInt16(x float32) int16 {
	return int16(Clamp(x, -1, 1) * 32767.0)
}
