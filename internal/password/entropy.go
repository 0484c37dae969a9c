package password

import "math"

// Entropy returns the approximate brute-force search-space size in bits
// for a password of the given length drawn from an alphabet of the given
// size: length * log2(alphabetSize). It is an upper bound: information
// lost to constraint patching is not discounted.
func Entropy(alphabetSize, length int) float64 {
	if alphabetSize <= 0 || length <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(alphabetSize))
}
