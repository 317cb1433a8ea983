package report

import "encoding/json"

// LifecycleStatus is the per-report read/unread/dismissed flag, stored
// separately from the report content. Absence of an entry means unread.
type LifecycleStatus string

const (
	LifecycleUnread    LifecycleStatus = "unread"
	LifecycleRead      LifecycleStatus = "read"
	LifecycleDismissed LifecycleStatus = "dismissed"
)

// Valid reports whether s is one of the three lifecycle literals.
func (s LifecycleStatus) Valid() bool {
	switch s {
	case LifecycleUnread, LifecycleRead, LifecycleDismissed:
		return true
	}
	return false
}

// ParseLifecycleStatuses decodes the persisted status file. It never
// fails: invalid JSON, a non-object top-level value, and entries whose
// value is not a known literal all degrade to their absence.
func ParseLifecycleStatuses(raw string) map[string]LifecycleStatus {
	statuses := make(map[string]LifecycleStatus)

	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return statuses
	}
	for id, v := range decoded {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if ls := LifecycleStatus(s); ls.Valid() {
			statuses[id] = ls
		}
	}
	return statuses
}

// MarshalLifecycleStatuses serializes the status map as pretty-printed
// JSON, omitting unread entries: unread is the default, so persisting
// it would only grow the file.
func MarshalLifecycleStatuses(statuses map[string]LifecycleStatus) ([]byte, error) {
	pruned := make(map[string]LifecycleStatus, len(statuses))
	for id, s := range statuses {
		if s.Valid() && s != LifecycleUnread {
			pruned[id] = s
		}
	}
	return json.MarshalIndent(pruned, "", "  ")
}

// SetLifecycleStatus applies a transition to the in-memory map. Moving
// a report back to unread deletes its entry rather than writing the
// default explicitly.
func SetLifecycleStatus(statuses map[string]LifecycleStatus, id string, s LifecycleStatus) {
	if s == LifecycleUnread {
		delete(statuses, id)
		return
	}
	statuses[id] = s
}
