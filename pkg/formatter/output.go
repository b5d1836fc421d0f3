package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/helmcode/pwcheck/pkg/estimate"
	"github.com/helmcode/pwcheck/pkg/model"
)

const barWidth = 20

// Report is everything shown for a single password.
// Password is only set when the caller asked to reveal it.
type Report struct {
	Password       string `json:"password,omitempty" yaml:"password,omitempty"`
	model.Analysis `yaml:",inline"`
	Estimate       *estimate.Result `json:"estimate,omitempty" yaml:"estimate,omitempty"`
}

// Options control the human renderer.
type Options struct {
	// Verbose adds the per-rule point breakdown.
	Verbose bool

	// MaskedPassword is shown in the header when the password is hidden.
	MaskedPassword string
}

// DisplayResults formats and writes a single report.
func DisplayResults(w io.Writer, report *Report, format string, opts Options) error {
	switch strings.ToLower(format) {
	case "json":
		return displayJSON(w, report)
	case "yaml":
		return displayYAML(w, report)
	case "human":
		fallthrough
	default:
		displayHuman(w, report, opts)
	}
	return nil
}

func displayJSON(w io.Writer, v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func displayYAML(w io.Writer, v interface{}) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(output))
	return err
}

func displayHuman(w io.Writer, report *Report, opts Options) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	white := color.New(color.FgWhite, color.Bold)

	levelColor := LevelColor(report.Level)

	fmt.Fprintln(w)
	switch {
	case report.Password != "":
		fmt.Fprintf(w, "🔑 Password: %s\n", report.Password)
	case opts.MaskedPassword != "":
		fmt.Fprintf(w, "🔑 Password: %s\n", opts.MaskedPassword)
	}
	levelColor.Fprintf(w, "%s Password Strength: %s\n", LevelIcon(report.Level), report.Level)
	fmt.Fprintf(w, "   %s %d/100\n\n", levelColor.Sprint(ScoreBar(report.Score, barWidth)), report.Score)

	white.Fprintln(w, "✅ STRENGTHS:")
	if len(report.Positives) == 0 {
		fmt.Fprintf(w, "   %s\n", color.HiBlackString("No strengths found"))
	}
	for _, p := range report.Positives {
		fmt.Fprintf(w, "   %s %s\n", green.Sprint("✔"), p)
	}
	fmt.Fprintln(w)

	white.Fprintln(w, "💡 SUGGESTIONS:")
	if len(report.Suggestions) == 0 {
		fmt.Fprintf(w, "   %s\n", color.HiBlackString("No suggestions needed"))
	}
	for i, s := range report.Suggestions {
		fmt.Fprintf(w, "   %d. %s\n", i+1, yellow.Sprint(s))
	}
	fmt.Fprintln(w)

	if opts.Verbose && len(report.Contributions) > 0 {
		white.Fprintln(w, "📄 RULE BREAKDOWN:")
		for _, c := range report.Contributions {
			fmt.Fprintf(w, "   %-20s %s  %s\n", c.Rule, formatPoints(c.Points), c.Message)
		}
		fmt.Fprintln(w)
	}

	if report.Estimate != nil {
		white.Fprintln(w, "⏱️  GUESS ESTIMATE (zxcvbn):")
		fmt.Fprintf(w, "   Score: %d/4 (%s)\n", report.Estimate.Score, estimate.Label(report.Estimate.Score))
		fmt.Fprintf(w, "   Entropy: %.1f bits\n", report.Estimate.Entropy)
		fmt.Fprintf(w, "   Crack time: %s\n", report.Estimate.CrackTimeDisplay)
		if report.Estimate.Truncated {
			fmt.Fprintf(w, "   %s\n", color.HiBlackString("Only the first 50 characters were estimated"))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

// LevelColor maps a strength level to its display color.
func LevelColor(level model.Level) *color.Color {
	switch level {
	case model.LevelStrong:
		return color.New(color.FgGreen, color.Bold)
	case model.LevelModerate:
		return color.New(color.FgYellow, color.Bold)
	case model.LevelWeak:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgWhite)
	}
}

func LevelIcon(level model.Level) string {
	switch level {
	case model.LevelStrong:
		return "🟢"
	case model.LevelModerate:
		return "🟡"
	case model.LevelWeak:
		return "🔴"
	default:
		return "⚪"
	}
}

// ScoreBar renders score (0..100) as a fixed-width bar.
func ScoreBar(score, width int) string {
	filled := model.ClampScore(score) * width / model.MaxScore
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func formatPoints(points int) string {
	if points > 0 {
		return fmt.Sprintf("%+4d", points)
	}
	if points < 0 {
		return color.RedString("%+4d", points)
	}
	return "   0"
}

// Mask hides a password, keeping only its length visible.
func Mask(password string) string {
	return strings.Repeat("•", len([]rune(password)))
}

// DisplayReports writes several reports; structured formats emit one list.
func DisplayReports(w io.Writer, reports []*Report, format string, opts Options) error {
	switch strings.ToLower(format) {
	case "json":
		return displayJSON(w, reports)
	case "yaml":
		return displayYAML(w, reports)
	default:
		for _, r := range reports {
			displayHuman(w, r, opts)
		}
	}
	return nil
}

// DisplayPasswords writes bare passwords, one per line in human format.
func DisplayPasswords(w io.Writer, passwords []string, format string) error {
	wrapped := struct {
		Passwords []string `json:"passwords" yaml:"passwords"`
	}{passwords}

	switch strings.ToLower(format) {
	case "json":
		return displayJSON(w, wrapped)
	case "yaml":
		return displayYAML(w, wrapped)
	default:
		for _, p := range passwords {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
		}
	}
	return nil
}
