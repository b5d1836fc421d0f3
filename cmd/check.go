package cmd

import (
	"github.com/spf13/cobra"

	"github.com/helmcode/pwcheck/pkg/analyzer"
	"github.com/helmcode/pwcheck/pkg/estimate"
	"github.com/helmcode/pwcheck/pkg/formatter"
)

var (
	checkOutputFormat string
	checkShow         bool
	checkEstimate     bool
	checkVerbose      bool
	checkUserInputs   []string
)

func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [PASSWORD]",
		Short: "Score a password and suggest improvements",
		Long: `Score a password from 0 to 100, classify it as Weak, Moderate or Strong,
and list what helped the score and what would improve it.

The score is a heuristic advisory rating, not a formal entropy measurement.
Without an argument the password is read from a masked prompt, or from the
first line of stdin when input is piped.

Examples:
  # Prompt for the password without echoing it
  pwcheck check

  # Read from a pipe
  pass show mail/work | pwcheck check

  # Machine-readable output with a per-rule breakdown and zxcvbn estimate
  pwcheck check --estimate -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}

	cmd.Flags().StringVarP(&checkOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().BoolVar(&checkShow, "show", false, "Show the password in the output")
	cmd.Flags().BoolVar(&checkEstimate, "estimate", false, "Add a zxcvbn guess and crack-time estimate")
	cmd.Flags().StringSliceVar(&checkUserInputs, "user-input", []string{}, "Personal words (username, email) the estimate should penalize")
	cmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Show the points each rule contributed")
	addConfigFlag(cmd)

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, &checkOutputFormat)
	if err != nil {
		return err
	}

	if len(args) > 0 && checkOutputFormat == "human" {
		printWarning(cmd.ErrOrStderr(), "Passwords given as arguments can end up in shell history; omit it to be prompted")
	}

	password, err := readPassword(cmd, args)
	if err != nil {
		return err
	}

	a := analyzer.New(analyzer.WithCommonTokens(cfg.CommonTokens...))
	report := &formatter.Report{Analysis: *a.Analyze(password)}
	opts := formatter.Options{Verbose: checkVerbose}
	if checkShow {
		report.Password = password
	} else {
		opts.MaskedPassword = formatter.Mask(password)
	}
	if checkEstimate && password != "" {
		result := estimate.Password(password, checkUserInputs...)
		report.Estimate = &result
	}

	return formatter.DisplayResults(cmd.OutOrStdout(), report, checkOutputFormat, opts)
}
