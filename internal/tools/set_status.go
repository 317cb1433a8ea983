package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/grubhold/repo-reports-mcp/internal/report"
)

// SetStatusInput defines the input schema for the set_report_status tool.
type SetStatusInput struct {
	ID     string `json:"id" jsonschema:"required,Report id"`
	Status string `json:"status" jsonschema:"required,One of unread, read, dismissed"`
}

// NewSetStatusHandler creates the set_report_status tool handler.
// Marking a report unread removes its entry from the persisted map.
func NewSetStatusHandler(deps *Dependencies) mcp.ToolHandlerFor[SetStatusInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SetStatusInput) (
		*mcp.CallToolResult, any, error,
	) {
		if !validID(input.ID) {
			return ErrorResult("Invalid report id", "Provide a repository-relative id like security/audit"), nil, nil
		}
		status := report.LifecycleStatus(input.Status)
		if !status.Valid() {
			return ErrorResult("Unknown lifecycle status: "+input.Status,
				"Use one of unread, read, dismissed"), nil, nil
		}

		if err := deps.Store.SetStatus(ctx, input.ID, status); err != nil {
			deps.Logger.Error("set status failed", "id", input.ID, "status", status, "error", err)
			return ErrorResult("Failed to update report status", "GitHub may be unavailable"), nil, nil
		}

		deps.Logger.Info("set_report_status completed", "id", input.ID, "status", status)
		return TextResult(fmt.Sprintf("Marked report %s as %s", input.ID, status)), nil, nil
	}
}
