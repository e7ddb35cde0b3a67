package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/michaelbrown/pybox/internal/score"
)

func main() {
	s := server.NewMCPServer("pybox-answer-score", "0.1.0")

	s.AddTool(mcp.Tool{
		Name: "answer_score",
		Description: "Score a model solution against a ground-truth answer. " +
			"The final answer is extracted from an <answer> tag, a '#### <number>' " +
			"marker, or (in flexible mode) the last number in the text.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"solution": map[string]any{
					"type":        "string",
					"description": "Full solution text to grade",
				},
				"ground_truth": map[string]any{
					"type":        "string",
					"description": "Expected final answer",
				},
				"method": map[string]any{
					"type":        "string",
					"description": "Extraction method: strict (default) or flexible",
				},
			},
			Required: []string{"solution", "ground_truth"},
		},
	}, handleScore)

	if err := server.ServeStdio(s); err != nil {
		fmt.Printf("server error: %v\n", err)
	}
}

func handleScore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]any)
	if args == nil {
		return errResult("error: invalid arguments"), nil
	}

	solution, _ := args["solution"].(string)
	groundTruth, _ := args["ground_truth"].(string)
	if solution == "" || groundTruth == "" {
		return errResult("error: 'solution' and 'ground_truth' are required"), nil
	}

	method := score.Strict
	if m, _ := args["method"].(string); m != "" {
		switch score.Method(m) {
		case score.Strict, score.Flexible:
			method = score.Method(m)
		default:
			return errResult(fmt.Sprintf("error: unknown method %q", m)), nil
		}
	}

	answer, ok := score.ExtractAnswer(solution, method)
	if !ok {
		answer = "(none)"
	}
	result := score.ComputeScore(solution, groundTruth, method, 0.0, 1.0)

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{
			Type: "text",
			Text: fmt.Sprintf("answer: %s\nscore: %g", answer, result),
		}},
	}, nil
}

func errResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: text}},
		IsError: true,
	}
}
