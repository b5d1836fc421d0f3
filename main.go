package main

import (
	"fmt"
	"os"

	"github.com/helmcode/pwcheck/cmd"
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pwcheck",
		Short: "Password strength checker and generator",
		Long: `pwcheck scores passwords with a transparent set of rules, explains every
point gained or lost, and generates random passwords that cover lowercase,
uppercase, digits and special characters.

Scores are heuristic advice, not a certified entropy measurement.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewCheckCmd(),
		cmd.NewGenerateCmd(),
		cmd.NewAuditCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pwcheck version %s\n", version)
		},
	}
}
