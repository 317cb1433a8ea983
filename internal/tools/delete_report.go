package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/grubhold/repo-reports-mcp/internal/store"
)

// DeleteReportInput defines the input schema for the delete_report tool.
type DeleteReportInput struct {
	ID      string `json:"id" jsonschema:"required,Report id to delete"`
	Message string `json:"message,omitempty" jsonschema:"Commit message (defaulted when omitted)"`
}

// NewDeleteReportHandler creates the delete_report tool handler.
func NewDeleteReportHandler(deps *Dependencies) mcp.ToolHandlerFor[DeleteReportInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DeleteReportInput) (
		*mcp.CallToolResult, any, error,
	) {
		if !validID(input.ID) {
			return ErrorResult("Invalid report id", "Provide a repository-relative id like security/audit"), nil, nil
		}

		if err := deps.Store.Delete(ctx, input.ID, input.Message); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrorResult("Report not found: "+input.ID,
					"Use list_reports to see available report ids"), nil, nil
			}
			deps.Logger.Error("delete failed", "id", input.ID, "error", err)
			return ErrorResult("Failed to delete report", "GitHub may be unavailable"), nil, nil
		}

		deps.Logger.Info("delete_report completed", "id", input.ID)
		return TextResult(fmt.Sprintf("Deleted report %s", input.ID)), nil, nil
	}
}
