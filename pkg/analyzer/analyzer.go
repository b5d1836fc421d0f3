package analyzer

import (
	"golang.org/x/text/unicode/norm"

	"github.com/helmcode/pwcheck/pkg/model"
	"github.com/helmcode/pwcheck/pkg/rules"
)

const emptySuggestion = "Enter a password"

// Analyzer scores passwords against an ordered rule table.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	rules rules.Table
}

type Option func(*Analyzer)

// WithRules replaces the rule table entirely.
func WithRules(t rules.Table) Option {
	return func(a *Analyzer) {
		a.rules = append(rules.Table(nil), t...)
	}
}

// WithCommonTokens extends the built-in denylist with extra tokens.
func WithCommonTokens(tokens ...string) Option {
	return func(a *Analyzer) {
		all := append(append([]string(nil), rules.CommonTokens...), tokens...)
		a.rules = rules.NewTable(all)
	}
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{rules: rules.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewWithRules is a shorthand for New(WithRules(t)).
func NewWithRules(t rules.Table) *Analyzer {
	return New(WithRules(t))
}

var defaultAnalyzer = New()

// Analyze scores password with the canonical rule table.
func Analyze(password string) *model.Analysis {
	return defaultAnalyzer.Analyze(password)
}

// Analyze evaluates every rule in order and returns the clamped score,
// its level and the feedback each rule produced. The password is not
// retained in the result.
func (a *Analyzer) Analyze(password string) *model.Analysis {
	if password == "" {
		return &model.Analysis{
			Score:       0,
			Level:       model.LevelWeak,
			Positives:   []string{},
			Suggestions: []string{emptySuggestion},
		}
	}

	sample := rules.NewSample(norm.NFC.String(password))

	analysis := &model.Analysis{
		Positives:   []string{},
		Suggestions: []string{},
	}
	total := 0

	for _, rule := range a.rules {
		effect := rule.Evaluate(sample)
		if effect.IsZero() {
			continue
		}

		total += effect.Points
		message := effect.Positive
		if effect.Positive != "" {
			analysis.Positives = append(analysis.Positives, effect.Positive)
		}
		if effect.Suggestion != "" {
			analysis.Suggestions = append(analysis.Suggestions, effect.Suggestion)
			if message == "" {
				message = effect.Suggestion
			}
		}

		analysis.Contributions = append(analysis.Contributions, model.Contribution{
			Rule:    rule.Name,
			Points:  effect.Points,
			Message: message,
		})
	}

	analysis.Score = model.ClampScore(total)
	analysis.Level = model.LevelForScore(analysis.Score)

	return analysis
}
