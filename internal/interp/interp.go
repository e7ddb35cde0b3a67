// Package interp is the entry point for snippet execution: it rewrites the
// snippet, runs it in the sandbox, scores the run, and formats the bounded
// response envelope.
package interp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/michaelbrown/pybox/internal/rewrite"
	"github.com/michaelbrown/pybox/internal/sandbox"
	"github.com/michaelbrown/pybox/internal/session"
)

const (
	// EnvelopeOpen and EnvelopeClose delimit the serialized result in the
	// text returned to callers.
	EnvelopeOpen  = "<tool_output>"
	EnvelopeClose = "</tool_output>"

	// maxEnvelopeLen caps the returned text, even mid-token, so downstream
	// consumers never see an unbounded payload.
	maxEnvelopeLen = 3000

	errPenalty = -0.1
)

// Result is the captured output of one execution.
type Result struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
}

// Interpreter executes snippets against a sandbox, scoped by session ids.
type Interpreter struct {
	sandbox  sandbox.Sandbox
	sessions *session.Manager
}

// New creates an Interpreter with an empty session registry.
func New(sb sandbox.Sandbox) *Interpreter {
	return &Interpreter{sandbox: sb, sessions: session.NewManager()}
}

// Create opens a session and returns its id. An empty hint yields a fresh
// generated id.
func (t *Interpreter) Create(hint string) string {
	return t.sessions.Open(hint)
}

// Release closes a session. Unknown ids are ignored.
func (t *Interpreter) Release(id string) {
	t.sessions.Close(id)
}

// Sessions exposes the live-session registry.
func (t *Interpreter) Sessions() *session.Manager {
	return t.sessions
}

// Execute runs one snippet and returns the envelope text, the reward, and a
// metadata record. An unknown session id does not fail the execution; the
// id only scopes future per-session state.
//
// The reward is -0.1 when the run produced stderr text and 0.0 otherwise.
// Success is not separately rewarded, and the exit code is never inspected.
func (t *Interpreter) Execute(ctx context.Context, sessionID, code string) (string, float64, map[string]any) {
	_, _ = t.sessions.Get(sessionID)

	code = rewrite.Dedent(rewrite.Rewrite(code))
	stdout, stderr := t.sandbox.Run(ctx, code)

	reward := 0.0
	if stderr != "" {
		reward = errPenalty
	}

	payload, err := json.Marshal(Result{Stdout: stdout, Stderr: stderr})
	if err != nil {
		// Two strings always marshal; the guard keeps the contract total.
		payload = []byte(`{"stdout":"","stderr":"internal error"}`)
		reward = errPenalty
	}

	env := EnvelopeOpen + string(payload) + EnvelopeClose
	if len(env) > maxEnvelopeLen {
		env = env[:maxEnvelopeLen]
	}
	return env, reward, map[string]any{}
}

// ParseEnvelope decodes an envelope back into a Result. It reports false
// for envelopes whose payload was cut by truncation.
func ParseEnvelope(env string) (Result, bool) {
	inner, ok := strings.CutPrefix(env, EnvelopeOpen)
	if !ok {
		return Result{}, false
	}
	inner, ok = strings.CutSuffix(inner, EnvelopeClose)
	if !ok {
		return Result{}, false
	}
	var res Result
	if err := json.Unmarshal([]byte(inner), &res); err != nil {
		return Result{}, false
	}
	return res, true
}
