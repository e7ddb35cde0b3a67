package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/michaelbrown/pybox/internal/config"
)

// timeoutMessage is the synthetic stderr text returned when the deadline
// fires. Callers distinguish a timeout from an organic error only by this
// literal.
const timeoutMessage = "Execution timed out"

// Local runs snippets as direct child processes of the host.
type Local struct {
	profile config.Profile
	timeout time.Duration
}

// NewLocal creates a sandbox that runs snippets with the given interpreter
// profile and per-run deadline.
func NewLocal(profile config.Profile, timeout time.Duration) *Local {
	return &Local{profile: profile, timeout: timeout}
}

func (s *Local) Run(ctx context.Context, code string) (string, string) {
	f, err := os.CreateTemp("", "pybox-*"+s.profile.Extension)
	if err != nil {
		return "", fmt.Sprintf("creating snippet file: %v", err)
	}
	path := f.Name()
	// Removal may race with tmp cleanup elsewhere; already-gone is fine.
	defer os.Remove(path)

	if _, err := f.WriteString(code); err != nil {
		f.Close()
		return "", fmt.Sprintf("writing snippet file: %v", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Sprintf("writing snippet file: %v", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	args := append(append([]string{}, s.profile.Args...), path)
	cmd := exec.CommandContext(runCtx, s.profile.Binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Own process group, so a timeout kills the snippet together with
	// anything it spawned, not just the immediate child.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}

	err = cmd.Run()
	if runCtx.Err() == context.DeadlineExceeded {
		// Partial output from a killed run is not trustworthy; drop it.
		return "", timeoutMessage
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// Interpreter missing or unrunnable.
			return "", fmt.Sprintf("launching %s: %v", s.profile.Binary, err)
		}
		// Non-zero exit is not a runner fault; stderr already says why.
	}

	return strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String())
}
