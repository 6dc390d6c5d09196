package audit

import "github.com/google/go-cmp/cmp"

// Change types
const (
	ChangeAdded    = "added"
	ChangeRemoved  = "removed"
	ChangeModified = "modified"
)

// FieldChange describes how one field moved between two snapshots.
type FieldChange struct {
	Field      string      `json:"field"`
	Label      string      `json:"label"`
	OldValue   interface{} `json:"old_value"`
	NewValue   interface{} `json:"new_value"`
	OldDisplay string      `json:"old_display"`
	NewDisplay string      `json:"new_display"`
	ChangeType string      `json:"change_type"`
}

// Diff compares previous and current key by key. Unchanged keys are omitted.
// A key absent or nil on one side is reported as added or removed.
func Diff(previous, current map[string]interface{}) map[string]FieldChange {
	changes := make(map[string]FieldChange)

	for field, newValue := range current {
		oldValue := previous[field]
		if cmp.Equal(oldValue, newValue) {
			continue
		}
		changes[field] = FieldChange{
			Field:      field,
			OldValue:   oldValue,
			NewValue:   newValue,
			ChangeType: changeType(oldValue, newValue),
		}
	}

	for field, oldValue := range previous {
		if _, ok := current[field]; ok || oldValue == nil {
			continue
		}
		changes[field] = FieldChange{
			Field:      field,
			OldValue:   oldValue,
			ChangeType: ChangeRemoved,
		}
	}

	return changes
}

func changeType(oldValue, newValue interface{}) string {
	switch {
	case oldValue == nil:
		return ChangeAdded
	case newValue == nil:
		return ChangeRemoved
	default:
		return ChangeModified
	}
}
