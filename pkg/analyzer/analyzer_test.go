package analyzer

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/helmcode/pwcheck/pkg/model"
	"github.com/helmcode/pwcheck/pkg/rules"
)

func TestAnalyzeEmpty(t *testing.T) {
	got := Analyze("")

	if got.Score != 0 {
		t.Errorf("expected score 0, got %d", got.Score)
	}
	if got.Level != model.LevelWeak {
		t.Errorf("expected Weak, got %s", got.Level)
	}
	if len(got.Positives) != 0 {
		t.Errorf("expected no positives, got %v", got.Positives)
	}
	if diff := cmp.Diff([]string{"Enter a password"}, got.Suggestions); diff != "" {
		t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeScores(t *testing.T) {
	tests := []struct {
		password string
		score    int
		level    model.Level
	}{
		{"Aa1!Bb2@Cc3#Dd4$", 90, model.LevelStrong},
		{"Aa1!Bb2@Cc3#", 80, model.LevelStrong},
		{"Tr0ub4dor&3", 70, model.LevelModerate},
		{"a!b@c#d$e%f^", 60, model.LevelModerate},
		{"Aa1Bb2Cc", 55, model.LevelWeak},
		{"mountain", 35, model.LevelWeak},
		{"aaaaaaaa", 15, model.LevelWeak},
		{"password", 0, model.LevelWeak},
		{"abc", 0, model.LevelWeak},
	}
	for _, tt := range tests {
		got := Analyze(tt.password)
		if got.Score != tt.score {
			t.Errorf("Analyze(%q) score = %d, want %d (contributions: %+v)", tt.password, got.Score, tt.score, got.Contributions)
		}
		if got.Level != tt.level {
			t.Errorf("Analyze(%q) level = %s, want %s", tt.password, got.Level, tt.level)
		}
	}
}

func TestAnalyzeCommonPasswordFeedback(t *testing.T) {
	want := &model.Analysis{
		Score: 0,
		Level: model.LevelWeak,
		Positives: []string{
			"Adequate length (8+ characters)",
			"Contains lowercase letters",
			"Good character variety",
		},
		Suggestions: []string{
			"Use 12 or more characters for extra strength",
			"Add uppercase letters",
			"Add numbers",
			"Add special characters",
			"Avoid common words and patterns",
			"Do not use a well-known password",
		},
		Contributions: []model.Contribution{
			{Rule: "length-adequate", Points: 15, Message: "Adequate length (8+ characters)"},
			{Rule: "lowercase", Points: 10, Message: "Contains lowercase letters"},
			{Rule: "uppercase", Points: 0, Message: "Add uppercase letters"},
			{Rule: "digit", Points: 0, Message: "Add numbers"},
			{Rule: "symbol", Points: 0, Message: "Add special characters"},
			{Rule: "variety", Points: 10, Message: "Good character variety"},
			{Rule: "common-token", Points: -15, Message: "Avoid common words and patterns"},
			{Rule: "common-password", Points: -30, Message: "Do not use a well-known password"},
		},
	}

	if diff := cmp.Diff(want, Analyze("password")); diff != "" {
		t.Errorf("analysis mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeExactMatchStacksWithSubstring(t *testing.T) {
	exact := Analyze("Qwerty")
	partial := Analyze("Qwerty!x")

	var exactPenalty, partialPenalty int
	for _, c := range exact.Contributions {
		if c.Points < 0 {
			exactPenalty += c.Points
		}
	}
	for _, c := range partial.Contributions {
		if c.Points < 0 {
			partialPenalty += c.Points
		}
	}
	if exactPenalty != -45 {
		t.Errorf("expected exact match to cost 45 points, got %d", exactPenalty)
	}
	if partialPenalty != -15 {
		t.Errorf("expected substring match to cost 15 points, got %d", partialPenalty)
	}
}

func TestAnalyzeScoreBounds(t *testing.T) {
	inputs := []string{
		"a", "1", "!", " ", "aaa", "123", "abc", "password", "PASSWORD",
		"qwerty123", "welcome1", "Admin!234", "ÄÖÜäöü", "日本語のパスワード",
		"Aa1!Bb2@Cc3#Dd4$Ee5%Ff6^Gg7&Hh8*", "zzzzzzzzzzzzzzzzzzzzzzzzzzzz",
		"\x00\x01\x02", "correct horse battery staple",
	}
	for _, in := range inputs {
		got := Analyze(in)
		if got.Score < model.MinScore || got.Score > model.MaxScore {
			t.Errorf("Analyze(%q) score %d out of bounds", in, got.Score)
		}
		if got.Level != model.LevelForScore(got.Score) {
			t.Errorf("Analyze(%q) level %s does not match score %d", in, got.Level, got.Score)
		}
	}
}

func TestAnalyzeAddingMissingClassNeverLowersScore(t *testing.T) {
	words := []string{"mountain", "sunflower", "aaaa", "zebra", "xylophone", "qqqqqqqqqqqq"}
	for _, w := range words {
		base := Analyze(w)

		withDigit := Analyze(w + "7")
		if withDigit.Score < base.Score {
			t.Errorf("adding a digit to %q lowered score %d -> %d", w, base.Score, withDigit.Score)
		}

		replaced := Analyze(w[:len(w)-1] + "7")
		if len(w) > 1 && w[len(w)-2] != w[len(w)-1] && replaced.Score < base.Score {
			t.Errorf("replacing last char of %q with a digit lowered score %d -> %d", w, base.Score, replaced.Score)
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	for _, in := range []string{"", "Tr0ub4dor&3", "hunter2", "Aa1!Bb2@Cc3#"} {
		if diff := cmp.Diff(Analyze(in), Analyze(in)); diff != "" {
			t.Errorf("Analyze(%q) not deterministic:\n%s", in, diff)
		}
	}
}

func TestAnalyzeConcurrent(t *testing.T) {
	a := New()
	want := a.Analyze("Tr0ub4dor&3")

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if diff := cmp.Diff(want, a.Analyze("Tr0ub4dor&3")); diff != "" {
				errs <- diff
			}
		}()
	}
	wg.Wait()
	close(errs)

	for diff := range errs {
		t.Errorf("concurrent analysis diverged:\n%s", diff)
	}
}

func TestAnalyzeNormalizesUnicode(t *testing.T) {
	composed := Analyze("caf\u00e9Latte1!")
	decomposed := Analyze("cafe\u0301Latte1!")

	if diff := cmp.Diff(composed, decomposed); diff != "" {
		t.Errorf("composed and decomposed forms scored differently:\n%s", diff)
	}
}

func TestWithCommonTokens(t *testing.T) {
	plain := New().Analyze("Dragonfly!92")
	custom := New(WithCommonTokens("dragon")).Analyze("Dragonfly!92")

	if custom.Score != plain.Score-15 {
		t.Errorf("expected configured token to cost 15 points, got %d -> %d", plain.Score, custom.Score)
	}

	// Built-in tokens stay active.
	if got := New(WithCommonTokens("dragon")).Analyze("password"); got.Score != 0 {
		t.Errorf("expected built-in denylist to remain, got score %d", got.Score)
	}
}

func TestNewWithRules(t *testing.T) {
	table := rules.Table{
		{
			Name:    "always",
			Match:   func(rules.Sample) bool { return true },
			OnMatch: rules.Effect{Points: 120, Positive: "always"},
		},
	}
	got := NewWithRules(table).Analyze("x")

	if got.Score != model.MaxScore {
		t.Errorf("expected score clamped to %d, got %d", model.MaxScore, got.Score)
	}
	if got.Level != model.LevelStrong {
		t.Errorf("expected Strong, got %s", got.Level)
	}
}

func TestAnalysisDoesNotEchoPassword(t *testing.T) {
	const secret = "S3cret!Value"
	got := Analyze(secret)

	for _, s := range append(append([]string{}, got.Positives...), got.Suggestions...) {
		if s == secret {
			t.Fatal("analysis must not contain the password")
		}
	}
}
