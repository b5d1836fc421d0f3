package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/helmcode/pwcheck/pkg/analyzer"
	"github.com/helmcode/pwcheck/pkg/formatter"
	"github.com/helmcode/pwcheck/pkg/model"
	"github.com/helmcode/pwcheck/pkg/parser"
)

var (
	auditOutputFormat string
	auditShow         bool
	auditFailOn       string
)

func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit FILE",
		Short: "Score every password in a list",
		Long: `Score a newline-separated list of passwords and summarize how many are
Weak, Moderate and Strong. Blank lines and lines starting with # are skipped.
Use - to read the list from stdin.

Entries are reported by line number; the passwords themselves are only
printed with --show.

Examples:
  # Audit an exported list
  pwcheck audit passwords.txt

  # Fail a CI job if any password is Weak
  pwcheck audit --fail-on weak -o json - < fixtures/passwords.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runAudit,
	}

	cmd.Flags().StringVarP(&auditOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().BoolVar(&auditShow, "show", false, "Show passwords in the output")
	cmd.Flags().StringVar(&auditFailOn, "fail-on", "", "Exit with an error if any password is at or below this level (weak, moderate)")
	addConfigFlag(cmd)

	return cmd
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, &auditOutputFormat)
	if err != nil {
		return err
	}

	var failLevel model.Level
	if auditFailOn != "" {
		failLevel, err = model.ParseLevel(auditFailOn)
		if err != nil {
			return fmt.Errorf("invalid --fail-on: %w", err)
		}
	}

	source := args[0]
	in, err := openInput(cmd, source)
	if err != nil {
		return err
	}
	defer in.Close()

	entries, err := parser.ParsePasswordList(in)
	if err != nil {
		return err
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Writer = cmd.ErrOrStderr()
	s.Suffix = fmt.Sprintf(" Scoring %d passwords...", len(entries))
	s.Start()

	a := analyzer.New(analyzer.WithCommonTokens(cfg.CommonTokens...))
	report := &formatter.AuditReport{Source: source, Entries: []formatter.AuditEntry{}}
	failing := 0
	for _, e := range entries {
		result := a.Analyze(e.Value)
		entry := formatter.AuditEntry{
			Line:        e.Line,
			Score:       result.Score,
			Level:       result.Level,
			Suggestions: result.Suggestions,
		}
		if auditShow {
			entry.Password = e.Value
		}
		report.Add(entry)

		if failLevel != "" && result.Level.Rank() <= failLevel.Rank() {
			failing++
		}
	}

	s.Stop()
	if auditOutputFormat == "human" {
		printSuccess(cmd.ErrOrStderr(), fmt.Sprintf("Scored %d passwords", len(entries)))
	}

	if err := formatter.DisplayAudit(cmd.OutOrStdout(), report, auditOutputFormat); err != nil {
		return err
	}

	if failing > 0 {
		return fmt.Errorf("%d password(s) rated %s or weaker", failing, failLevel)
	}
	return nil
}
