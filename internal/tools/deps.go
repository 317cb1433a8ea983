// Package tools provides MCP tool handlers and registration.
package tools

import (
	"log/slog"
	"strings"

	"github.com/grubhold/repo-reports-mcp/internal/store"
)

// Dependencies holds shared services for tool handlers.
// Passed to handler factories via closure capture.
type Dependencies struct {
	Store  *store.Store
	Logger *slog.Logger
}

// validID rejects report ids that would escape the reports directory
// or address nothing at all.
func validID(id string) bool {
	if id == "" || strings.HasPrefix(id, "/") {
		return false
	}
	for _, seg := range strings.Split(id, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return false
		}
	}
	return true
}
