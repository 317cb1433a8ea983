package report

import "testing"

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKeys map[string]string
		wantBody string
	}{
		{
			name:     "no frontmatter",
			raw:      "# Just a heading\n\nSome text.",
			wantKeys: map[string]string{},
			wantBody: "# Just a heading\n\nSome text.",
		},
		{
			name:     "basic frontmatter",
			raw:      "---\ntitle: Hello\ncategory: ops\n---\n\nBody text.",
			wantKeys: map[string]string{"title": "Hello", "category": "ops"},
			wantBody: "Body text.",
		},
		{
			name:     "leading whitespace before delimiter",
			raw:      "\n\n---\ntitle: Padded\n---\nBody.",
			wantKeys: map[string]string{"title": "Padded"},
			wantBody: "Body.",
		},
		{
			name:     "unterminated frontmatter is all body",
			raw:      "---\ntitle: Broken\nno closing delimiter",
			wantKeys: map[string]string{},
			wantBody: "---\ntitle: Broken\nno closing delimiter",
		},
		{
			name:     "invalid yaml is all body",
			raw:      "---\n: [ not yaml ::\n---\nBody.",
			wantKeys: map[string]string{},
			wantBody: "---\n: [ not yaml ::\n---\nBody.",
		},
		{
			name:     "empty frontmatter block",
			raw:      "---\n---\nBody only.",
			wantKeys: map[string]string{},
			wantBody: "Body only.",
		},
		{
			name:     "frontmatter only, no body",
			raw:      "---\ntitle: Meta\n---",
			wantKeys: map[string]string{"title": "Meta"},
			wantBody: "",
		},
		{
			name:     "body is trimmed",
			raw:      "---\ntitle: T\n---\n\n\nBody.\n\n",
			wantKeys: map[string]string{"title": "T"},
			wantBody: "Body.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body := SplitFrontmatter(tt.raw)

			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
			if len(fm) != len(tt.wantKeys) {
				t.Errorf("frontmatter has %d keys, want %d: %v", len(fm), len(tt.wantKeys), fm)
			}
			for k, want := range tt.wantKeys {
				if got, _ := fm[k].(string); got != want {
					t.Errorf("frontmatter[%q] = %q, want %q", k, got, want)
				}
			}
		})
	}
}
