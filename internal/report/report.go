// Package report implements the report document model: Markdown files
// with YAML frontmatter parsed into structured Report values, plus the
// lifecycle-status map persisted alongside them.
package report

// Status is the health status a report declares in its frontmatter.
type Status string

const (
	StatusPassing Status = "passing"
	StatusWarning Status = "warning"
	StatusFailing Status = "failing"
	StatusInfo    Status = "info"
)

// Valid reports whether s is one of the four known status literals.
// The comparison is case-sensitive.
func (s Status) Valid() bool {
	switch s {
	case StatusPassing, StatusWarning, StatusFailing, StatusInfo:
		return true
	}
	return false
}

// Summary is the metadata-only projection of a report, used for bulk
// listing. Sections are only carried by the full Report.
type Summary struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Category        string          `json:"category"`
	Status          Status          `json:"status"`
	Summary         string          `json:"summary,omitempty"`
	UpdatedAt       string          `json:"updatedAt"`
	Source          *string         `json:"source,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	LifecycleStatus LifecycleStatus `json:"lifecycleStatus,omitempty"`
}

// Report is a fully parsed report document. Sections is never nil: a
// file with no frontmatter sections and an empty body parses to an
// empty slice, not an error.
type Report struct {
	Summary
	Sections []Section `json:"sections"`
}
