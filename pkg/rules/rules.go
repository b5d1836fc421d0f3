package rules

import (
	"strings"
	"unicode/utf8"
)

// Effect is what a rule contributes when its branch is taken.
// Positive and Suggestion are routed to the matching feedback lists.
type Effect struct {
	Points     int
	Positive   string
	Suggestion string
}

// IsZero reports whether the effect neither scores nor produces feedback.
func (e Effect) IsZero() bool {
	return e.Points == 0 && e.Positive == "" && e.Suggestion == ""
}

// Rule is a named predicate with one effect per outcome.
//
// Rules never short-circuit each other: every rule in a Table is evaluated
// for every password, in table order.
type Rule struct {
	Name    string
	Match   func(s Sample) bool
	OnMatch Effect
	OnMiss  Effect
}

// Evaluate runs the predicate and returns the effect for the branch taken.
func (r Rule) Evaluate(s Sample) Effect {
	if r.Match(s) {
		return r.OnMatch
	}
	return r.OnMiss
}

// Table is an ordered rule set. Order determines feedback order.
type Table []Rule

// Names lists rule names in evaluation order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for _, r := range t {
		names = append(names, r.Name)
	}
	return names
}

// Sample holds everything the predicates need about a password.
// It is built per evaluation and must not outlive it.
type Sample struct {
	Runes    []rune
	Lower    string
	Length   int
	Distinct int
}

// NewSample precomputes a Sample. Length is measured in runes.
func NewSample(password string) Sample {
	runes := []rune(password)
	seen := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		seen[r] = struct{}{}
	}
	return Sample{
		Runes:    runes,
		Lower:    strings.ToLower(password),
		Length:   utf8.RuneCountInString(password),
		Distinct: len(seen),
	}
}
