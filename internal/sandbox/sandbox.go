// Package sandbox materializes code snippets as transient files and runs
// them in child processes with a hard wall-clock deadline.
package sandbox

import "context"

// Sandbox executes one snippet per call. Implementations never return an
// error value: every failure mode, including timeouts and a missing
// interpreter, is reported as stderr text so callers treat all runs
// uniformly.
type Sandbox interface {
	Run(ctx context.Context, code string) (stdout, stderr string)
}
