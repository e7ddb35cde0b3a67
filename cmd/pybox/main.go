package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/michaelbrown/pybox/internal/config"
	"github.com/michaelbrown/pybox/internal/interp"
	"github.com/michaelbrown/pybox/internal/sandbox"
)

var (
	profileFlag string
	timeoutFlag int
)

var rootCmd = &cobra.Command{
	Use:   "pybox",
	Short: "Pybox - sandboxed Python snippet execution",
	Long: `Pybox runs untrusted Python snippets in short-lived child processes,
captures their stdout/stderr, and scores every run for agent feedback loops.

It serves a REST and WebSocket API, ships MCP tool servers, and includes an
interactive REPL for poking at the sandbox.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profileFlag, "profile", "", "Interpreter profile to use (overrides config)")
	rootCmd.PersistentFlags().IntVar(&timeoutFlag, "timeout", 0, "Execution timeout in seconds (overrides config)")
}

// newInterpreter builds the execution façade from config plus flag overrides.
func newInterpreter(cfg *config.Config) (*interp.Interpreter, error) {
	if profileFlag != "" {
		cfg.Sandbox.Profile = profileFlag
	}
	if timeoutFlag > 0 {
		cfg.Sandbox.Timeout = timeoutFlag
	}

	profile, err := cfg.InterpreterProfile()
	if err != nil {
		return nil, fmt.Errorf("resolving interpreter profile: %w", err)
	}

	return interp.New(sandbox.NewLocal(profile, cfg.Timeout())), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
