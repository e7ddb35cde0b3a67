package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/michaelbrown/pybox/internal/config"
	"github.com/michaelbrown/pybox/internal/interp"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive snippet REPL",
	Long: `Start an interactive loop that runs each entered snippet in the
sandbox and prints its output and reward. Each line is an independent
execution; no interpreter state carries over.

Examples:
  pybox repl
  pybox repl --timeout 10`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
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

	fmt.Printf("Pybox REPL (session %s)\n", id[:8])
	fmt.Printf("Timeout: %ds | each snippet runs in a fresh process\n", cfg.Sandbox.Timeout)
	fmt.Printf("Type /help for commands, /quit to exit\n\n")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[36mpy>\033[0m ",
		HistoryFile:     "/tmp/pybox_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	for {
		input, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				fmt.Println("\nGoodbye!")
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if done := handleReplCommand(input, it, &id); done {
				return nil
			}
			continue
		}

		output, reward, _ := it.Execute(context.Background(), id, input)
		printResult(output, reward)
	}
}

func handleReplCommand(input string, it *interp.Interpreter, id *string) bool {
	switch strings.ToLower(strings.Fields(input)[0]) {
	case "/quit", "/exit", "/q":
		fmt.Println("Goodbye!")
		return true
	case "/session":
		fmt.Printf("session: %s\n\n", *id)
	case "/reset":
		it.Release(*id)
		*id = it.Create("")
		fmt.Printf("New session %s\n\n", (*id)[:8])
	case "/help":
		fmt.Println("Commands:")
		fmt.Println("  /help     - Show this help")
		fmt.Println("  /session  - Show the current session id")
		fmt.Println("  /reset    - Release the session and open a fresh one")
		fmt.Println("  /quit     - Exit")
		fmt.Println()
	default:
		fmt.Printf("Unknown command: %s (try /help)\n\n", input)
	}
	return false
}

func printResult(output string, reward float64) {
	res, ok := interp.ParseEnvelope(output)
	if !ok {
		fmt.Printf("%s\n\n", output)
		return
	}
	if res.Stdout != "" {
		fmt.Println(res.Stdout)
	}
	if res.Stderr != "" {
		fmt.Printf("\033[31m%s\033[0m\n", res.Stderr)
	}
	fmt.Printf("\033[90mreward: %.1f\033[0m\n\n", reward)
}
