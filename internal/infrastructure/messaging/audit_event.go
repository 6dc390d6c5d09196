package messaging

import (
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
)

// AuditEvent is the JSON payload published for each recorded log entry.
type AuditEvent struct {
	ID          string                 `json:"id"`
	Action      string                 `json:"action"`
	LoggedAt    time.Time              `json:"logged_at"`
	ObjectID    string                 `json:"object_id"`
	ObjectClass string                 `json:"object_class"`
	Version     int                    `json:"version"`
	Changes     map[string]interface{} `json:"changes"`
	Username    string                 `json:"username,omitempty"`
}

// NewAuditEvent converts a log entry into its published form.
func NewAuditEvent(entry *audit.LogEntry) AuditEvent {
	return AuditEvent{
		ID:          entry.ID,
		Action:      entry.Action,
		LoggedAt:    entry.LoggedAt,
		ObjectID:    entry.ObjectID,
		ObjectClass: entry.ObjectClass,
		Version:     entry.Version,
		Changes:     entry.Data,
		Username:    entry.Username,
	}
}
