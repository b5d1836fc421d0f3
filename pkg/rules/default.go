package rules

import "strings"

// Symbols is the canonical special-character set. The generator draws its
// symbols from the same set so generated passwords always satisfy the
// symbol rule.
const Symbols = `!@#$%^&*()_+-=[]{};:"\|,.<>/?`

const (
	LongLength     = 12
	AdequateLength = 8

	EntropyBonusBits = 60
)

// CommonTokens is the built-in denylist of well-known passwords and
// fragments. Matching is done against the lowercased password.
var CommonTokens = []string{
	"123",
	"abc",
	"qwerty",
	"password",
	"admin",
	"welcome",
	"letmein",
	"iloveyou",
}

// Default returns the canonical rule table with the built-in denylist.
func Default() Table {
	return NewTable(CommonTokens)
}

// NewTable returns the canonical rule table using tokens as the common-token
// denylist. Tokens are lowercased; empty and duplicate entries are dropped.
func NewTable(tokens []string) Table {
	denylist := normalizeTokens(tokens)

	return Table{
		{
			Name:    "length-long",
			Match:   lengthAtLeast(LongLength),
			OnMatch: Effect{Points: 25, Positive: "Good length (12+ characters)"},
		},
		{
			Name:  "length-adequate",
			Match: lengthBetween(AdequateLength, LongLength),
			OnMatch: Effect{
				Points:     15,
				Positive:   "Adequate length (8+ characters)",
				Suggestion: "Use 12 or more characters for extra strength",
			},
		},
		{
			Name:    "length-short",
			Match:   lengthBelow(AdequateLength),
			OnMatch: Effect{Suggestion: "Use at least 8 characters"},
		},
		{
			Name:    "lowercase",
			Match:   containsRange('a', 'z'),
			OnMatch: Effect{Points: 10, Positive: "Contains lowercase letters"},
			OnMiss:  Effect{Suggestion: "Add lowercase letters"},
		},
		{
			Name:    "uppercase",
			Match:   containsRange('A', 'Z'),
			OnMatch: Effect{Points: 10, Positive: "Contains uppercase letters"},
			OnMiss:  Effect{Suggestion: "Add uppercase letters"},
		},
		{
			Name:    "digit",
			Match:   containsRange('0', '9'),
			OnMatch: Effect{Points: 10, Positive: "Contains numbers"},
			OnMiss:  Effect{Suggestion: "Add numbers"},
		},
		{
			Name:    "symbol",
			Match:   containsAnyOf(Symbols),
			OnMatch: Effect{Points: 15, Positive: "Contains special characters"},
			OnMiss:  Effect{Suggestion: "Add special characters"},
		},
		{
			Name:    "variety",
			Match:   distinctRatioAtLeast(7, 10),
			OnMatch: Effect{Points: 10, Positive: "Good character variety"},
			OnMiss:  Effect{Suggestion: "Avoid repeated characters"},
		},
		{
			Name:    "repetition",
			Match:   repeatedRun,
			OnMatch: Effect{Points: -10, Suggestion: "Avoid repeating the same character three or more times in a row"},
		},
		{
			Name:    "sequential-digits",
			Match:   sequentialDigits,
			OnMatch: Effect{Points: -5, Suggestion: "Avoid sequential numbers"},
		},
		{
			Name:    "sequential-letters",
			Match:   sequentialLetters,
			OnMatch: Effect{Points: -5, Suggestion: "Avoid sequential letters"},
		},
		{
			Name:    "common-token",
			Match:   containsToken(denylist),
			OnMatch: Effect{Points: -15, Suggestion: "Avoid common words and patterns"},
		},
		{
			Name:    "common-password",
			Match:   equalsToken(denylist),
			OnMatch: Effect{Points: -30, Suggestion: "Do not use a well-known password"},
		},
		{
			Name:    "entropy",
			Match:   entropyAbove(EntropyBonusBits),
			OnMatch: Effect{Points: 10, Positive: "High entropy"},
		},
	}
}

func normalizeTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
