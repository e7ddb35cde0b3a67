package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/michaelbrown/pybox/internal/config"
	"github.com/michaelbrown/pybox/internal/interp"
)

var execCmd = &cobra.Command{
	Use:   "exec <code>",
	Short: "Run a single snippet and print its result",
	Long: `Run one snippet end to end: rewrite, sandbox, score.

Pass "-" to read the snippet from stdin.

Examples:
  pybox exec "1 + 1"
  echo "import sys; sys.version" | pybox exec -`,
	Args: cobra.ExactArgs(1),
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	code := args[0]
	if code == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		code = string(data)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	it, err := newInterpreter(cfg)
	if err != nil {
		return err
	}

	id := it.Create("")
	defer it.Release(id)

	output, reward, _ := it.Execute(context.Background(), id, code)

	if res, ok := interp.ParseEnvelope(output); ok {
		if res.Stdout != "" {
			fmt.Println(res.Stdout)
		}
		if res.Stderr != "" {
			fmt.Fprintln(os.Stderr, res.Stderr)
		}
	} else {
		// Truncated envelope; print it raw.
		fmt.Println(output)
	}
	fmt.Printf("reward: %.1f\n", reward)
	return nil
}
