package audit

import (
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/pkg/validators"
)

// Actions
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionRemove = "remove"
)

// LogEntry is one recorded version of an audited object.
type LogEntry struct {
	ID          string                 `validate:"required,uuid4"`
	Action      string                 `validate:"required,oneof=create update remove"`
	LoggedAt    time.Time              `validate:"required"`
	ObjectID    string                 `validate:"required,max=64"`
	ObjectClass string                 `validate:"required,max=255"`
	Version     int                    `validate:"required,gt=0"`
	Data        map[string]interface{} `validate:"-"`
	Username    string                 `validate:"max=255"`
}

// Validate for validating LogEntry struct
func (e *LogEntry) Validate() error {
	return validators.Struct(e)
}

// Replay merges the data of entries, oldest first, into the object state
// after the last of them.
func Replay(entries []*LogEntry) map[string]interface{} {
	state := map[string]interface{}{}
	for _, entry := range entries {
		for field, value := range entry.Data {
			state[field] = value
		}
	}
	return state
}

// Query filters audit log listings.
type Query struct {
	ObjectClass string `validate:"omitempty,max=255"`
	ObjectID    string `validate:"omitempty,max=64"`
	Action      string `validate:"omitempty,oneof=create update remove"`
	Username    string `validate:"omitempty,max=255"`
	From        *time.Time
	To          *time.Time
	Limit       int `validate:"omitempty,gt=0,max=500"`
	Offset      int `validate:"omitempty,gte=0"`
}

// NewQuery creates a Query with default values.
func NewQuery() *Query {
	return &Query{Limit: 50}
}

// Validate for validating Query struct
func (q *Query) Validate() error {
	return validators.Struct(q)
}

// HistoryEntry is a log entry decorated with the changes it introduced.
type HistoryEntry struct {
	Entry   *LogEntry
	Changes []FieldChange
}
