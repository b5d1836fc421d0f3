package model

import (
	"fmt"
	"strings"
)

// Level is the coarse strength category derived from a score.
type Level string

const (
	LevelWeak     Level = "Weak"
	LevelModerate Level = "Moderate"
	LevelStrong   Level = "Strong"
)

// Score cut points. A score at or above the cut point belongs to that level.
const (
	StrongThreshold   = 80
	ModerateThreshold = 60

	MinScore = 0
	MaxScore = 100
)

func (l Level) String() string {
	return string(l)
}

// LevelForScore maps a clamped score onto the three fixed tiers.
func LevelForScore(score int) Level {
	switch {
	case score >= StrongThreshold:
		return LevelStrong
	case score >= ModerateThreshold:
		return LevelModerate
	default:
		return LevelWeak
	}
}

// ClampScore bounds a raw rule total to [MinScore, MaxScore].
func ClampScore(total int) int {
	if total < MinScore {
		return MinScore
	}
	if total > MaxScore {
		return MaxScore
	}
	return total
}

type Analysis struct {
	Score         int            `json:"score" yaml:"score"`
	Level         Level          `json:"level" yaml:"level"`
	Positives     []string       `json:"positives" yaml:"positives"`
	Suggestions   []string       `json:"suggestions" yaml:"suggestions"`
	Contributions []Contribution `json:"contributions,omitempty" yaml:"contributions,omitempty"`
}

// Contribution records what a single rule did to one analysis.
type Contribution struct {
	Rule    string `json:"rule" yaml:"rule"`
	Points  int    `json:"points" yaml:"points"`
	Message string `json:"message" yaml:"message"`
}

// Rank orders levels from weakest (0) to strongest.
func (l Level) Rank() int {
	switch l {
	case LevelStrong:
		return 2
	case LevelModerate:
		return 1
	default:
		return 0
	}
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	for _, l := range []Level{LevelWeak, LevelModerate, LevelStrong} {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown level %q (supported: weak, moderate, strong)", s)
}
