package model

import "testing"

func TestLevelForScoreBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{0, LevelWeak},
		{59, LevelWeak},
		{60, LevelModerate},
		{79, LevelModerate},
		{80, LevelStrong},
		{100, LevelStrong},
	}
	for _, tt := range tests {
		if got := LevelForScore(tt.score); got != tt.want {
			t.Errorf("LevelForScore(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-45, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{130, 100},
	}
	for _, tt := range tests {
		if got := ClampScore(tt.in); got != tt.want {
			t.Errorf("ClampScore(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	if LevelModerate.String() != "Moderate" {
		t.Errorf("unexpected level string %q", LevelModerate.String())
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"weak": LevelWeak, "MODERATE": LevelModerate, "Strong": LevelStrong} {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseLevel("medium"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLevelRank(t *testing.T) {
	if !(LevelWeak.Rank() < LevelModerate.Rank() && LevelModerate.Rank() < LevelStrong.Rank()) {
		t.Error("expected Weak < Moderate < Strong")
	}
}
