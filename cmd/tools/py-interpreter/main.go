package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/michaelbrown/pybox/internal/config"
	"github.com/michaelbrown/pybox/internal/interp"
	"github.com/michaelbrown/pybox/internal/sandbox"
)

var tool *interp.Interpreter

func main() {
	timeout := 5 * time.Second
	if v := os.Getenv("PYBOX_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}
	tool = interp.New(sandbox.NewLocal(config.DefaultProfile(), timeout))

	s := server.NewMCPServer("pybox-py-interpreter", "0.1.0")

	s.AddTool(mcp.Tool{
		Name: "python_execute",
		Description: "Execute a Python code snippet in a sandbox and return " +
			"its stdout/stderr plus a reward signal (-0.1 on stderr, 0.0 otherwise). " +
			"A trailing pure expression is printed automatically.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"code": map[string]any{
					"type":        "string",
					"description": "Python source code to execute",
				},
				"session": map[string]any{
					"type":        "string",
					"description": "Session id from python_session_open (optional)",
				},
			},
			Required: []string{"code"},
		},
	}, handleExecute)

	s.AddTool(mcp.Tool{
		Name:        "python_session_open",
		Description: "Open an execution session and return its id.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"session": map[string]any{
					"type":        "string",
					"description": "Session id to register (optional; generated when omitted)",
				},
			},
		},
	}, handleSessionOpen)

	s.AddTool(mcp.Tool{
		Name:        "python_session_close",
		Description: "Release an execution session. Closing an unknown session is a no-op.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"session": map[string]any{
					"type":        "string",
					"description": "Session id to release",
				},
			},
			Required: []string{"session"},
		},
	}, handleSessionClose)

	if err := server.ServeStdio(s); err != nil {
		fmt.Printf("server error: %v\n", err)
	}
}

func handleExecute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]any)
	if args == nil {
		return errResult("error: invalid arguments"), nil
	}

	code, _ := args["code"].(string)
	if code == "" {
		return errResult("error: 'code' is required"), nil
	}
	session, _ := args["session"].(string)

	output, reward, _ := tool.Execute(ctx, session, code)

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{
			Type: "text",
			Text: fmt.Sprintf("%s\nreward: %.1f", output, reward),
		}},
	}, nil
}

func handleSessionOpen(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]any)
	hint := ""
	if args != nil {
		hint, _ = args["session"].(string)
	}

	id := tool.Create(hint)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: id}},
	}, nil
}

func handleSessionClose(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]any)
	if args == nil {
		return errResult("error: invalid arguments"), nil
	}

	session, _ := args["session"].(string)
	if session == "" {
		return errResult("error: 'session' is required"), nil
	}

	tool.Release(session)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: "released"}},
	}, nil
}

func errResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: text}},
		IsError: true,
	}
}
