package tools

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/grubhold/repo-reports-mcp/internal/report"
)

// ListReportsInput defines the input schema for the list_reports tool.
type ListReportsInput struct {
	Category   string `json:"category,omitempty" jsonschema:"Only reports in this category"`
	Status     string `json:"status,omitempty" jsonschema:"Only reports with this status (passing, warning, failing, info)"`
	Tag        string `json:"tag,omitempty" jsonschema:"Only reports carrying this tag"`
	UnreadOnly bool   `json:"unreadOnly,omitempty" jsonschema:"Only reports not yet read or dismissed"`
}

// ListReportsResult is the response from the list_reports tool.
type ListReportsResult struct {
	Reports []report.Summary `json:"reports"`
	Count   int              `json:"count"`
}

// NewListReportsHandler creates the list_reports tool handler.
// Returns the summary projection (no sections), newest first.
func NewListReportsHandler(deps *Dependencies) mcp.ToolHandlerFor[ListReportsInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListReportsInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.Status != "" && !report.Status(input.Status).Valid() {
			return ErrorResult("Unknown status filter: "+input.Status,
				"Use one of passing, warning, failing, info"), nil, nil
		}

		summaries, err := deps.Store.List(ctx)
		if err != nil {
			deps.Logger.Error("list failed", "error", err)
			return ErrorResult("Failed to list reports", "GitHub may be unavailable"), nil, nil
		}

		filtered := make([]report.Summary, 0, len(summaries))
		for _, s := range summaries {
			if input.Category != "" && s.Category != input.Category {
				continue
			}
			if input.Status != "" && s.Status != report.Status(input.Status) {
				continue
			}
			if input.Tag != "" && !slices.Contains(s.Tags, input.Tag) {
				continue
			}
			if input.UnreadOnly && s.LifecycleStatus != "" {
				continue
			}
			filtered = append(filtered, s)
		}

		result := ListReportsResult{
			Reports: filtered,
			Count:   len(filtered),
		}
		jsonBytes, _ := json.MarshalIndent(result, "", "  ")

		deps.Logger.Info("list_reports completed", "total", len(summaries), "returned", len(filtered))
		return TextResult(string(jsonBytes)), nil, nil
	}
}
