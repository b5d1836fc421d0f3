package rules

import (
	"math"
	"strings"
)

const (
	digitSequence  = "0123456789"
	letterSequence = "abcdefghijklmnopqrstuvwxyz"

	// runLength is the shortest repeated or sequential run that is penalized.
	runLength = 3
)

func lengthAtLeast(n int) func(Sample) bool {
	return func(s Sample) bool { return s.Length >= n }
}

func lengthBetween(lo, hi int) func(Sample) bool {
	return func(s Sample) bool { return s.Length >= lo && s.Length < hi }
}

func lengthBelow(n int) func(Sample) bool {
	return func(s Sample) bool { return s.Length < n }
}

func containsRange(lo, hi rune) func(Sample) bool {
	return func(s Sample) bool {
		for _, r := range s.Runes {
			if r >= lo && r <= hi {
				return true
			}
		}
		return false
	}
}

func containsAnyOf(set string) func(Sample) bool {
	return func(s Sample) bool {
		for _, r := range s.Runes {
			if strings.ContainsRune(set, r) {
				return true
			}
		}
		return false
	}
}

// distinctRatioAtLeast compares distinct/length against num/den in integers
// so the 0.7 cut point is exact.
func distinctRatioAtLeast(num, den int) func(Sample) bool {
	return func(s Sample) bool {
		if s.Length == 0 {
			return false
		}
		return s.Distinct*den >= s.Length*num
	}
}

// HasRepeatedRun reports whether any rune occurs n or more times in a row.
func HasRepeatedRun(runes []rune, n int) bool {
	if n <= 1 {
		return len(runes) > 0
	}
	count := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			count++
			if count >= n {
				return true
			}
			continue
		}
		count = 1
	}
	return false
}

// HasAscendingRun reports whether text contains n consecutive characters
// that also appear consecutively, in order, in alphabet.
func HasAscendingRun(text, alphabet string, n int) bool {
	runes := []rune(text)
	if n <= 0 || len(runes) < n {
		return false
	}
	for i := 0; i+n <= len(runes); i++ {
		if strings.Contains(alphabet, string(runes[i:i+n])) {
			return true
		}
	}
	return false
}

func repeatedRun(s Sample) bool {
	return HasRepeatedRun(s.Runes, runLength)
}

func sequentialDigits(s Sample) bool {
	return HasAscendingRun(s.Lower, digitSequence, runLength)
}

func sequentialLetters(s Sample) bool {
	return HasAscendingRun(s.Lower, letterSequence, runLength)
}

func containsToken(tokens []string) func(Sample) bool {
	return func(s Sample) bool {
		for _, t := range tokens {
			if strings.Contains(s.Lower, t) {
				return true
			}
		}
		return false
	}
}

func equalsToken(tokens []string) func(Sample) bool {
	return func(s Sample) bool {
		for _, t := range tokens {
			if s.Lower == t {
				return true
			}
		}
		return false
	}
}

// Entropy is length * log2(distinct), and 0 for an empty sample.
func Entropy(s Sample) float64 {
	if s.Length == 0 || s.Distinct < 1 {
		return 0
	}
	return float64(s.Length) * math.Log2(float64(s.Distinct))
}

func entropyAbove(bits float64) func(Sample) bool {
	return func(s Sample) bool { return Entropy(s) > bits }
}
