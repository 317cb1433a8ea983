package report

import (
	"regexp"
	"strings"
	"unicode"
)

// wordSeparators matches runs of dashes and underscores in file names.
var wordSeparators = regexp.MustCompile(`[-_]+`)

// DeriveID turns a repository file path into a report id: the path
// relative to rootPath with the ".md" extension stripped. Nested paths
// keep their "/" separators; the id is the canonical report identity.
func DeriveID(filePath, rootPath string) string {
	id := filePath
	if root := strings.TrimSuffix(rootPath, "/"); root != "" {
		id = strings.TrimPrefix(id, root+"/")
	}
	return strings.TrimSuffix(id, ".md")
}

// ImplicitTags returns the directory segments of a report id, in
// left-to-right order. A top-level id yields no implicit tags.
func ImplicitTags(id string) []string {
	parts := strings.Split(id, "/")
	if len(parts) <= 1 {
		return nil
	}
	return parts[:len(parts)-1]
}

// DeriveTitle picks the explicit frontmatter title when present,
// otherwise humanizes the last path segment of the id: runs of "-" and
// "_" become single spaces and every word is capitalized.
func DeriveTitle(id, explicit string) string {
	if explicit != "" {
		return explicit
	}
	base := id
	if i := strings.LastIndex(id, "/"); i >= 0 {
		base = id[i+1:]
	}
	words := strings.Fields(wordSeparators.ReplaceAllString(base, " "))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// MergeTags combines implicit directory tags with explicitly declared
// ones, implicit first, dropping duplicates. Returns nil when both are
// empty so the tags field is omitted from serialized output.
func MergeTags(implicit, explicit []string) []string {
	seen := make(map[string]bool, len(implicit)+len(explicit))
	var tags []string
	for _, t := range implicit {
		if !seen[t] {
			seen[t] = true
			tags = append(tags, t)
		}
	}
	for _, t := range explicit {
		if !seen[t] {
			seen[t] = true
			tags = append(tags, t)
		}
	}
	return tags
}
