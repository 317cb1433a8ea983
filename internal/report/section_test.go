package report

import "testing"

func TestSectionFromValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		wantKind SectionKind
		wantOK   bool
	}{
		{
			name:     "markdown with content",
			value:    map[string]any{"type": "markdown", "content": "hello"},
			wantKind: KindMarkdown,
			wantOK:   true,
		},
		{
			name:     "note with content",
			value:    map[string]any{"type": "note", "content": "heads up"},
			wantKind: KindNote,
			wantOK:   true,
		},
		{
			name:   "markdown missing content",
			value:  map[string]any{"type": "markdown"},
			wantOK: false,
		},
		{
			name:   "markdown content wrong type",
			value:  map[string]any{"type": "markdown", "content": 42},
			wantOK: false,
		},
		{
			name:     "metrics with items array",
			value:    map[string]any{"type": "metrics", "items": []any{map[string]any{"label": "Uptime", "value": 99.9}}},
			wantKind: KindMetrics,
			wantOK:   true,
		},
		{
			name: "metrics items elements not inspected",
			value: map[string]any{
				"type":  "metrics",
				"items": []any{"not an object", 17, nil},
			},
			wantKind: KindMetrics,
			wantOK:   true,
		},
		{
			name:   "metrics items not an array",
			value:  map[string]any{"type": "metrics", "items": "nope"},
			wantOK: false,
		},
		{
			name: "table with columns and rows",
			value: map[string]any{
				"type":    "table",
				"columns": []any{"Name", "Count"},
				"rows":    []any{[]any{"a", 1}},
			},
			wantKind: KindTable,
			wantOK:   true,
		},
		{
			name:   "table missing rows",
			value:  map[string]any{"type": "table", "columns": []any{"Name"}},
			wantOK: false,
		},
		{
			name:     "criteria with items",
			value:    map[string]any{"type": "criteria", "items": []any{}},
			wantKind: KindCriteria,
			wantOK:   true,
		},
		{
			name: "ranked list with columns and rows",
			value: map[string]any{
				"type":    "ranked-list",
				"columns": []any{"Pos"},
				"rows":    []any{},
			},
			wantKind: KindRankedList,
			wantOK:   true,
		},
		{
			name:   "unknown type",
			value:  map[string]any{"type": "chart", "content": "x"},
			wantOK: false,
		},
		{
			name:   "missing type",
			value:  map[string]any{"content": "x"},
			wantOK: false,
		},
		{
			name:   "not an object",
			value:  "markdown",
			wantOK: false,
		},
		{
			name:   "nil value",
			value:  nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := SectionFromValue(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("SectionFromValue() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if s.Kind() != tt.wantKind {
				t.Errorf("Kind() = %q, want %q", s.Kind(), tt.wantKind)
			}
		})
	}
}

func TestSectionFromValueTitleOptional(t *testing.T) {
	s, ok := SectionFromValue(map[string]any{
		"type":  "metrics",
		"title": "KPIs",
		"items": []any{},
	})
	if !ok {
		t.Fatal("expected valid metrics section")
	}
	metrics, ok := s.(MetricsSection)
	if !ok {
		t.Fatalf("expected MetricsSection, got %T", s)
	}
	if metrics.Title != "KPIs" {
		t.Errorf("Title = %q, want %q", metrics.Title, "KPIs")
	}

	// Non-string title is ignored, not rejected.
	s, ok = SectionFromValue(map[string]any{
		"type":  "metrics",
		"title": 5,
		"items": []any{},
	})
	if !ok {
		t.Fatal("expected valid metrics section with bad title")
	}
	if s.(MetricsSection).Title != "" {
		t.Errorf("Title = %q, want empty", s.(MetricsSection).Title)
	}
}
