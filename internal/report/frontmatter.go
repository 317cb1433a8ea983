package report

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// SplitFrontmatter separates the YAML frontmatter block from the
// Markdown body of a raw report file. Malformed input never fails:
// missing or unterminated delimiters and YAML parse errors all degrade
// to an empty frontmatter map with the full original text as body.
func SplitFrontmatter(raw string) (map[string]any, string) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, frontmatterDelimiter) {
		return map[string]any{}, raw
	}

	rest := trimmed[len(frontmatterDelimiter):]
	end := strings.Index(rest, "\n"+frontmatterDelimiter)
	if end < 0 {
		// Unterminated frontmatter: treat the whole file as body.
		return map[string]any{}, raw
	}

	var fm map[string]any
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return map[string]any{}, raw
	}
	if fm == nil {
		// An empty block between delimiters is valid, just empty.
		fm = map[string]any{}
	}

	body := rest[end+1+len(frontmatterDelimiter):]
	if nl := strings.Index(body, "\n"); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = ""
	}

	return fm, strings.TrimSpace(body)
}
