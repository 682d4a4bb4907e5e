// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

const (
	// PCM16Scale maps full-scale float samples onto int16 when encoding.
	PCM16Scale = math.MaxInt16 // 2^15 - 1

	// PCM16Divisor normalizes decoded int16 samples into [-1,1).
	PCM16Divisor = 1 << 15
)

// FloatToPCM16 clamps x to [-1,1], scales it by 2^15-1 and rounds to the
// nearest int16.
func FloatToPCM16(x float64) int16 {
	switch {
	case x > 1:
		x = 1
	case x < -1:
		x = -1
	case math.IsNaN(x):
		x = 0
	}

	return int16(math.Round(x * PCM16Scale))
}

// PCM16ToFloat normalizes a 16-bit sample by dividing by 2^15.
func PCM16ToFloat(v int16) float32 {
	return float32(v) / PCM16Divisor
}
