package report

import (
	"time"
)

// ParseSummary parses the metadata-only projection of a report file.
// rootPath is the configured reports directory inside the repository;
// statuses is the lifecycle map the summary's lifecycleStatus is looked
// up from. Pure: no I/O, never fails.
func ParseSummary(raw, filePath, rootPath string, statuses map[string]LifecycleStatus) Summary {
	fm, _ := SplitFrontmatter(raw)
	return buildSummary(fm, filePath, rootPath, statuses)
}

// ParseReport parses the full report including its sections: every
// frontmatter sections entry that validates, in original order, then
// one trailing markdown section holding the body when it is non-empty.
func ParseReport(raw, filePath, rootPath string, statuses map[string]LifecycleStatus) Report {
	fm, body := SplitFrontmatter(raw)

	sections := make([]Section, 0)
	if declared, ok := fm["sections"].([]any); ok {
		for _, v := range declared {
			if s, valid := SectionFromValue(v); valid {
				sections = append(sections, s)
			}
		}
	}
	if body != "" {
		sections = append(sections, MarkdownSection{Content: body})
	}

	return Report{
		Summary:  buildSummary(fm, filePath, rootPath, statuses),
		Sections: sections,
	}
}

func buildSummary(fm map[string]any, filePath, rootPath string, statuses map[string]LifecycleStatus) Summary {
	id := DeriveID(filePath, rootPath)

	s := Summary{
		ID:        id,
		Title:     DeriveTitle(id, stringValue(fm["title"])),
		Category:  stringOr(fm["category"], "general"),
		Status:    clampStatus(fm["status"]),
		Summary:   stringValue(fm["summary"]),
		UpdatedAt: timeValue(fm["updatedAt"]),
		Tags:      MergeTags(ImplicitTags(id), stringSlice(fm["tags"])),
	}

	if src := stringValue(fm["source"]); src != "" {
		s.Source = &src
	}
	if ls, ok := statuses[id]; ok && ls != LifecycleUnread {
		s.LifecycleStatus = ls
	}

	return s
}

// clampStatus accepts only the four known status literals,
// case-sensitively; everything else degrades to info.
func clampStatus(v any) Status {
	if s, ok := v.(string); ok && Status(s).Valid() {
		return Status(s)
	}
	return StatusInfo
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

// timeValue coerces a frontmatter updatedAt value to a string,
// defaulting to the current time when absent. YAML resolves unquoted
// timestamps to time.Time, so both representations are handled.
func timeValue(v any) string {
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case time.Time:
		return t.Format(time.RFC3339)
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
