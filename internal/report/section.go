package report

import "encoding/json"

// SectionKind discriminates the closed set of section shapes a report
// may contain.
type SectionKind string

const (
	KindMarkdown   SectionKind = "markdown"
	KindNote       SectionKind = "note"
	KindMetrics    SectionKind = "metrics"
	KindTable      SectionKind = "table"
	KindCriteria   SectionKind = "criteria"
	KindRankedList SectionKind = "ranked-list"
)

// Section is one typed block of a report body. The concrete types
// below are the only implementations.
type Section interface {
	Kind() SectionKind
}

// MarkdownSection is a free-text Markdown block.
type MarkdownSection struct {
	Content string
}

// NoteSection is a short free-text callout.
type NoteSection struct {
	Content string
}

// MetricsSection lists labeled metric values. Item elements are kept
// as-is: validation is shallow and consumers treat element fields as
// best-effort.
type MetricsSection struct {
	Title string
	Items []any
}

// TableSection is a plain column/row table.
type TableSection struct {
	Title   string
	Columns []any
	Rows    []any
}

// CriteriaSection lists pass/fail criteria descriptions.
type CriteriaSection struct {
	Title string
	Items []any
}

// RankedListSection is a leaderboard-style table with position deltas.
type RankedListSection struct {
	Title   string
	Columns []any
	Rows    []any
}

func (MarkdownSection) Kind() SectionKind   { return KindMarkdown }
func (NoteSection) Kind() SectionKind       { return KindNote }
func (MetricsSection) Kind() SectionKind    { return KindMetrics }
func (TableSection) Kind() SectionKind      { return KindTable }
func (CriteriaSection) Kind() SectionKind   { return KindCriteria }
func (RankedListSection) Kind() SectionKind { return KindRankedList }

func (s MarkdownSection) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    SectionKind `json:"type"`
		Content string      `json:"content"`
	}{KindMarkdown, s.Content})
}

func (s NoteSection) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    SectionKind `json:"type"`
		Content string      `json:"content"`
	}{KindNote, s.Content})
}

func (s MetricsSection) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  SectionKind `json:"type"`
		Title string      `json:"title,omitempty"`
		Items []any       `json:"items"`
	}{KindMetrics, s.Title, s.Items})
}

func (s TableSection) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    SectionKind `json:"type"`
		Title   string      `json:"title,omitempty"`
		Columns []any       `json:"columns"`
		Rows    []any       `json:"rows"`
	}{KindTable, s.Title, s.Columns, s.Rows})
}

func (s CriteriaSection) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  SectionKind `json:"type"`
		Title string      `json:"title,omitempty"`
		Items []any       `json:"items"`
	}{KindCriteria, s.Title, s.Items})
}

func (s RankedListSection) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    SectionKind `json:"type"`
		Title   string      `json:"title,omitempty"`
		Columns []any       `json:"columns"`
		Rows    []any       `json:"rows"`
	}{KindRankedList, s.Title, s.Columns, s.Rows})
}

// SectionFromValue validates one frontmatter sections entry and builds
// the matching Section variant. Only the discriminant and the
// shape-specific required container fields are checked; element shapes
// inside items/rows are deliberately not inspected. Anything that does
// not conform returns (nil, false) and is dropped by the caller.
func SectionFromValue(v any) (Section, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	kind, _ := m["type"].(string)
	title, _ := m["title"].(string)

	switch SectionKind(kind) {
	case KindMarkdown:
		content, ok := m["content"].(string)
		if !ok {
			return nil, false
		}
		return MarkdownSection{Content: content}, true

	case KindNote:
		content, ok := m["content"].(string)
		if !ok {
			return nil, false
		}
		return NoteSection{Content: content}, true

	case KindMetrics:
		items, ok := m["items"].([]any)
		if !ok {
			return nil, false
		}
		return MetricsSection{Title: title, Items: items}, true

	case KindTable:
		columns, ok := m["columns"].([]any)
		if !ok {
			return nil, false
		}
		rows, ok := m["rows"].([]any)
		if !ok {
			return nil, false
		}
		return TableSection{Title: title, Columns: columns, Rows: rows}, true

	case KindCriteria:
		items, ok := m["items"].([]any)
		if !ok {
			return nil, false
		}
		return CriteriaSection{Title: title, Items: items}, true

	case KindRankedList:
		columns, ok := m["columns"].([]any)
		if !ok {
			return nil, false
		}
		rows, ok := m["rows"].([]any)
		if !ok {
			return nil, false
		}
		return RankedListSection{Title: title, Columns: columns, Rows: rows}, true
	}

	return nil, false
}
