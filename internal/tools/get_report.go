package tools

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/grubhold/repo-reports-mcp/internal/store"
)

// GetReportInput defines the input schema for the get_report tool.
type GetReportInput struct {
	ID string `json:"id" jsonschema:"required,Report id, e.g. security/audit"`
}

// NewGetReportHandler creates the get_report tool handler.
// Returns the full report including its sections.
func NewGetReportHandler(deps *Dependencies) mcp.ToolHandlerFor[GetReportInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetReportInput) (
		*mcp.CallToolResult, any, error,
	) {
		if !validID(input.ID) {
			return ErrorResult("Invalid report id", "Provide a repository-relative id like security/audit"), nil, nil
		}

		r, err := deps.Store.Get(ctx, input.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrorResult("Report not found: "+input.ID,
					"Use list_reports to see available report ids"), nil, nil
			}
			deps.Logger.Error("get failed", "id", input.ID, "error", err)
			return ErrorResult("Failed to fetch report", "GitHub may be unavailable"), nil, nil
		}

		jsonBytes, _ := json.MarshalIndent(r, "", "  ")

		deps.Logger.Info("get_report completed", "id", input.ID, "sections", len(r.Sections))
		return TextResult(string(jsonBytes)), nil, nil
	}
}
