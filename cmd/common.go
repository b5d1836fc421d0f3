package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/helmcode/pwcheck/pkg/config"
)

var configPath string

func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default $PWCHECK_CONFIG or ~/.pwcheck/config.yaml)")
}

// loadConfig loads the config and lets an explicitly set --output flag win
// over the configured output format.
func loadConfig(cmd *cobra.Command, output *string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if output != nil {
		if !cmd.Flags().Changed("output") {
			*output = cfg.Output
		}
		if !config.ValidOutput(*output) {
			return nil, fmt.Errorf("unsupported output format %q (supported: human, json, yaml)", *output)
		}
	}
	return cfg, nil
}

// readPassword takes the password from args, a masked terminal prompt, or
// the first line of piped stdin, in that order.
func readPassword(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "🔒 Enter password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open password list: %w", err)
	}
	return f, nil
}

func printSuccess(w io.Writer, msg string) {
	green := color.New(color.FgGreen)
	green.Fprintf(w, "✓ %s\n", msg)
}

func printWarning(w io.Writer, msg string) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(w, "⚠ %s\n", msg)
}

func printInfo(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s\n", color.HiBlackString(msg))
}
