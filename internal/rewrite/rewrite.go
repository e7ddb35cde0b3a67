// Package rewrite decides whether a Python snippet should have its trailing
// expression wrapped in a print call, so its value reaches stdout when the
// snippet runs.
package rewrite

import (
	"strings"

	"github.com/michaelbrown/pybox/internal/rewrite/pyexpr"
)

// Rewrite appends print(<expr>) when the snippet ends in a pure expression.
//
// The check is deliberately syntactic. Snippets that already call print,
// whose last logical line contains "=", or whose last line does not parse
// as a standalone expression are returned unchanged. "Contains =" catches
// keyword arguments and comparisons too; that over-conservatism is part of
// the contract, wrapping those could change semantics.
func Rewrite(code string) string {
	if strings.Contains(code, "print(") {
		return code
	}

	// Semicolons separate statements the same way newlines do.
	var lines []string
	for _, ln := range strings.Split(strings.ReplaceAll(code, ";", "\n"), "\n") {
		if s := strings.TrimSpace(ln); s != "" {
			lines = append(lines, s)
		}
	}
	if len(lines) == 0 {
		return code
	}

	last := lines[len(lines)-1]
	if strings.Contains(last, "=") {
		return code
	}
	if !pyexpr.Valid(last) {
		return code
	}

	return strings.TrimRight(Dedent(code), " \t\r\n") + "\nprint(" + last + ")"
}

// Dedent removes the longest common leading whitespace from every non-blank
// line, like Python's textwrap.dedent. Blank lines are ignored when
// computing the shared prefix.
func Dedent(code string) string {
	lines := strings.Split(code, "\n")

	prefix := ""
	found := false
	for _, ln := range lines {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		indent := ln[:len(ln)-len(strings.TrimLeft(ln, " \t"))]
		if !found {
			prefix, found = indent, true
			continue
		}
		n := min(len(prefix), len(indent))
		i := 0
		for i < n && prefix[i] == indent[i] {
			i++
		}
		prefix = prefix[:i]
	}
	if prefix == "" {
		return code
	}

	for i, ln := range lines {
		if strings.HasPrefix(ln, prefix) {
			lines[i] = ln[len(prefix):]
		}
	}
	return strings.Join(lines, "\n")
}
