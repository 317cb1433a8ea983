package report

import (
	"reflect"
	"testing"
)

func TestDeriveID(t *testing.T) {
	tests := []struct {
		name     string
		filePath string
		rootPath string
		want     string
	}{
		{"nested path", "reports/farm/thing.md", "reports", "farm/thing"},
		{"trailing slash on root", "reports/check.md", "reports/", "check"},
		{"top level", "reports/check.md", "reports", "check"},
		{"deeply nested", "reports/security/api/audit.md", "reports", "security/api/audit"},
		{"non-md extension passes through", "reports/data.json", "reports", "data.json"},
		{"empty root", "check.md", "", "check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveID(tt.filePath, tt.rootPath); got != tt.want {
				t.Errorf("DeriveID(%q, %q) = %q, want %q", tt.filePath, tt.rootPath, got, tt.want)
			}
		})
	}
}

func TestImplicitTags(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want []string
	}{
		{"two directories", "security/api/audit", []string{"security", "api"}},
		{"one directory", "farm/thing", []string{"farm"}},
		{"top level", "check", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImplicitTags(tt.id)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ImplicitTags(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		explicit string
		want     string
	}{
		{"explicit title wins", "farm/thing", "My Report", "My Report"},
		{"dashes become spaces", "weekly-status", "", "Weekly Status"},
		{"underscores become spaces", "api_audit_log", "", "Api Audit Log"},
		{"mixed separator runs collapse", "some--mixed__name", "", "Some Mixed Name"},
		{"last segment only", "security/api/rate-limits", "", "Rate Limits"},
		{"single word", "check", "", "Check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveTitle(tt.id, tt.explicit); got != tt.want {
				t.Errorf("DeriveTitle(%q, %q) = %q, want %q", tt.id, tt.explicit, got, tt.want)
			}
		})
	}
}

func TestMergeTags(t *testing.T) {
	tests := []struct {
		name     string
		implicit []string
		explicit []string
		want     []string
	}{
		{
			name:     "implicit first, duplicates removed",
			implicit: []string{"security"},
			explicit: []string{"critical", "security"},
			want:     []string{"security", "critical"},
		},
		{
			name:     "explicit only",
			implicit: nil,
			explicit: []string{"a", "b"},
			want:     []string{"a", "b"},
		},
		{
			name:     "both empty yields nil",
			implicit: nil,
			explicit: nil,
			want:     nil,
		},
		{
			name:     "duplicate implicit segments",
			implicit: []string{"a", "a", "b"},
			explicit: nil,
			want:     []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeTags(tt.implicit, tt.explicit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeTags(%v, %v) = %v, want %v", tt.implicit, tt.explicit, got, tt.want)
			}
		})
	}
}
