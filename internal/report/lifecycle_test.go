package report

import (
	"encoding/json"
	"testing"
)

func TestParseLifecycleStatuses(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]LifecycleStatus
	}{
		{
			name: "valid map",
			raw:  `{"farm/thing": "read", "check": "dismissed"}`,
			want: map[string]LifecycleStatus{"farm/thing": LifecycleRead, "check": LifecycleDismissed},
		},
		{
			name: "explicit unread is honored",
			raw:  `{"a": "unread"}`,
			want: map[string]LifecycleStatus{"a": LifecycleUnread},
		},
		{
			name: "invalid json",
			raw:  `{not json`,
			want: map[string]LifecycleStatus{},
		},
		{
			name: "top-level array",
			raw:  `["read"]`,
			want: map[string]LifecycleStatus{},
		},
		{
			name: "top-level string",
			raw:  `"read"`,
			want: map[string]LifecycleStatus{},
		},
		{
			name: "top-level null",
			raw:  `null`,
			want: map[string]LifecycleStatus{},
		},
		{
			name: "empty input",
			raw:  ``,
			want: map[string]LifecycleStatus{},
		},
		{
			name: "unrecognized values dropped",
			raw:  `{"a": "archived", "b": 3, "c": null, "d": "read"}`,
			want: map[string]LifecycleStatus{"d": LifecycleRead},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLifecycleStatuses(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d: %v", len(got), len(tt.want), got)
			}
			for id, want := range tt.want {
				if got[id] != want {
					t.Errorf("statuses[%q] = %q, want %q", id, got[id], want)
				}
			}
		})
	}
}

func TestMarshalLifecycleStatusesPrunesUnread(t *testing.T) {
	statuses := map[string]LifecycleStatus{
		"a": LifecycleRead,
		"b": LifecycleUnread,
		"c": LifecycleDismissed,
	}

	data, err := MarshalLifecycleStatuses(statuses)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round-trip decode: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("got %d persisted entries, want 2: %v", len(decoded), decoded)
	}
	if decoded["a"] != "read" || decoded["c"] != "dismissed" {
		t.Errorf("persisted map = %v", decoded)
	}
	if _, ok := decoded["b"]; ok {
		t.Error("unread entry was persisted")
	}
}

func TestSetLifecycleStatus(t *testing.T) {
	statuses := map[string]LifecycleStatus{"a": LifecycleRead}

	SetLifecycleStatus(statuses, "b", LifecycleDismissed)
	if statuses["b"] != LifecycleDismissed {
		t.Errorf("statuses[b] = %q, want dismissed", statuses["b"])
	}

	// Transition back to unread deletes the key.
	SetLifecycleStatus(statuses, "a", LifecycleUnread)
	if _, ok := statuses["a"]; ok {
		t.Error("unread transition left an explicit entry")
	}
}
