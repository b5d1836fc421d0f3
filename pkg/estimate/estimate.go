// Package estimate adds a pattern-matching guess estimate from zxcvbn next to
// the rule-based score. It is advisory and never affects the score.
package estimate

import (
	"github.com/nbutton23/zxcvbn-go"
)

// maxCheckedLen bounds the input handed to zxcvbn, whose matching cost
// grows quickly with length.
const maxCheckedLen = 50

// Result is a summary of a zxcvbn evaluation.
type Result struct {
	// Score is zxcvbn's 0..4 guessability bucket.
	Score            int     `json:"score" yaml:"score"`
	Entropy          float64 `json:"entropy_bits" yaml:"entropy_bits"`
	CrackTimeSeconds float64 `json:"crack_time_seconds" yaml:"crack_time_seconds"`
	CrackTimeDisplay string  `json:"crack_time" yaml:"crack_time"`
	Truncated        bool    `json:"truncated,omitempty" yaml:"truncated,omitempty"`
}

// Password runs zxcvbn on at most the first maxCheckedLen runes of password.
// userInputs are penalized when they appear in the password, e.g. a username.
func Password(password string, userInputs ...string) Result {
	checked := password
	truncated := false
	if runes := []rune(password); len(runes) > maxCheckedLen {
		checked = string(runes[:maxCheckedLen])
		truncated = true
	}

	m := zxcvbn.PasswordStrength(checked, userInputs)
	return Result{
		Score:            m.Score,
		Entropy:          m.Entropy,
		CrackTimeSeconds: m.CrackTime,
		CrackTimeDisplay: m.CrackTimeDisplay,
		Truncated:        truncated,
	}
}

// Label names a zxcvbn score bucket.
func Label(score int) string {
	switch score {
	case 0:
		return "too guessable"
	case 1:
		return "very guessable"
	case 2:
		return "somewhat guessable"
	case 3:
		return "safely unguessable"
	default:
		return "very unguessable"
	}
}
