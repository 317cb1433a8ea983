package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SaveReportInput defines the input schema for the save_report tool.
type SaveReportInput struct {
	ID      string `json:"id" jsonschema:"required,Report id, e.g. security/audit"`
	Content string `json:"content" jsonschema:"required,Raw markdown content including optional frontmatter"`
	Message string `json:"message,omitempty" jsonschema:"Commit message (defaulted when omitted)"`
}

// SaveReportResult is the response from the save_report tool.
type SaveReportResult struct {
	ID     string `json:"id"`
	Action string `json:"action"` // "created" or "updated"
}

// NewSaveReportHandler creates the save_report tool handler.
// Content is stored verbatim; it is parsed on the next read.
func NewSaveReportHandler(deps *Dependencies) mcp.ToolHandlerFor[SaveReportInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SaveReportInput) (
		*mcp.CallToolResult, any, error,
	) {
		if !validID(input.ID) {
			return ErrorResult("Invalid report id", "Provide a repository-relative id like security/audit"), nil, nil
		}
		if input.Content == "" {
			return ErrorResult("Content is required", "Provide the report's markdown content"), nil, nil
		}

		action, err := deps.Store.Save(ctx, input.ID, input.Content, input.Message)
		if err != nil {
			deps.Logger.Error("save failed", "id", input.ID, "error", err)
			return ErrorResult("Failed to save report", "GitHub may be unavailable"), nil, nil
		}

		result := SaveReportResult{ID: input.ID, Action: action}
		jsonBytes, _ := json.MarshalIndent(result, "", "  ")

		deps.Logger.Info("save_report completed", "id", input.ID, "action", action)
		return TextResult(string(jsonBytes)), nil, nil
	}
}
