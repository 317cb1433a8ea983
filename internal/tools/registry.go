package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterAll registers all tools with the MCP server.
// This is called from main after server creation but before Run().
func RegisterAll(server *mcp.Server, deps *Dependencies) {
	// Ping tool - transport test
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ping",
		Description: "Test tool - responds with pong or echoes input",
	}, NewPingHandler(deps))

	// Listing - summary projection with optional filters
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_reports",
		Description: "List all reports (metadata only, newest first) with optional category/status/tag filters",
	}, NewListReportsHandler(deps))

	// Full report by id
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_report",
		Description: "Retrieve one report by id including its sections",
	}, NewGetReportHandler(deps))

	// Create or update raw report content
	mcp.AddTool(server, &mcp.Tool{
		Name:        "save_report",
		Description: "Create or update a report's raw markdown content by id",
	}, NewSaveReportHandler(deps))

	// Delete a report file
	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_report",
		Description: "Delete a report by id",
	}, NewDeleteReportHandler(deps))

	// Lifecycle transitions
	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_report_status",
		Description: "Mark a report as unread, read, or dismissed",
	}, NewSetStatusHandler(deps))
}
