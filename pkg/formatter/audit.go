package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/helmcode/pwcheck/pkg/model"
)

// AuditEntry is one scored line of a password list.
type AuditEntry struct {
	Line     int         `json:"line" yaml:"line"`
	Password string      `json:"password,omitempty" yaml:"password,omitempty"`
	Score    int         `json:"score" yaml:"score"`
	Level    model.Level `json:"level" yaml:"level"`

	// Human output shows only the first suggestion.
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
}

type AuditSummary struct {
	Total    int `json:"total" yaml:"total"`
	Strong   int `json:"strong" yaml:"strong"`
	Moderate int `json:"moderate" yaml:"moderate"`
	Weak     int `json:"weak" yaml:"weak"`

	// AverageScore is rounded down.
	AverageScore int `json:"average_score" yaml:"average_score"`

	scoreSum int
}

type AuditReport struct {
	Source  string       `json:"source" yaml:"source"`
	Summary AuditSummary `json:"summary" yaml:"summary"`
	Entries []AuditEntry `json:"entries" yaml:"entries"`
}

// Add records an entry and updates the summary.
func (r *AuditReport) Add(e AuditEntry) {
	r.Entries = append(r.Entries, e)

	s := &r.Summary
	s.Total++
	s.scoreSum += e.Score
	s.AverageScore = s.scoreSum / s.Total

	switch e.Level {
	case model.LevelStrong:
		s.Strong++
	case model.LevelModerate:
		s.Moderate++
	default:
		s.Weak++
	}
}

// DisplayAudit formats and writes an audit report.
func DisplayAudit(w io.Writer, report *AuditReport, format string) error {
	switch strings.ToLower(format) {
	case "json":
		return displayJSON(w, report)
	case "yaml":
		return displayYAML(w, report)
	default:
		displayAuditHuman(w, report)
	}
	return nil
}

func displayAuditHuman(w io.Writer, report *AuditReport) {
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Fprintln(w)
	cyan.Fprintf(w, "📋 Password Audit: %s\n\n", report.Source)

	if len(report.Entries) == 0 {
		fmt.Fprintf(w, "   %s\n", color.HiBlackString("No passwords found"))
		return
	}

	for _, e := range report.Entries {
		label := fmt.Sprintf("line %d", e.Line)
		if e.Password != "" {
			label = fmt.Sprintf("line %d  %s", e.Line, e.Password)
		}
		fmt.Fprintf(w, "   %s %-30s %s %3d/100",
			LevelIcon(e.Level), label, LevelColor(e.Level).Sprintf("%-8s", e.Level), e.Score)
		if len(e.Suggestions) > 0 {
			fmt.Fprintf(w, "  %s", color.HiBlackString(e.Suggestions[0]))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)

	s := report.Summary
	white.Fprintln(w, "📊 SUMMARY:")
	fmt.Fprintf(w, "   Total:    %d\n", s.Total)
	fmt.Fprintf(w, "   Strong:   %s\n", LevelColor(model.LevelStrong).Sprint(s.Strong))
	fmt.Fprintf(w, "   Moderate: %s\n", LevelColor(model.LevelModerate).Sprint(s.Moderate))
	fmt.Fprintf(w, "   Weak:     %s\n", LevelColor(model.LevelWeak).Sprint(s.Weak))
	fmt.Fprintf(w, "   Average:  %d/100\n", s.AverageScore)
}
