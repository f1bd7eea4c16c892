package utils

// Float32ToInt16 converts a normalized sample in [-1, 1] to a 16-bit PCM
// value. Out-of-range input is clamped first.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Scale by 32767 so +1.0 does not overflow.
	return int16(x * 32767.0)
}
