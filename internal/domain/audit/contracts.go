package audit

import (
	"context"
	"time"
)

// Recorder records versions of audited objects. Business services depend on
// this narrow side of AuditService.
type Recorder interface {
	// Record stores the fields of snapshot that differ from the last known
	// state of the object as a new version.
	Record(ctx context.Context, action, objectClass, objectID string, snapshot map[string]interface{}, username string) (*LogEntry, error)
}

// AuditService defines the audit log operations.
type AuditService interface {
	Recorder
	// History returns the versions of an object newest first with their changes.
	History(ctx context.Context, objectClass, objectID string) ([]*HistoryEntry, error)
	List(ctx context.Context, query *Query) ([]*LogEntry, error)
	Get(ctx context.Context, entryID string) (*HistoryEntry, error)
	// Purge deletes entries logged before olderThan and returns how many were removed.
	Purge(ctx context.Context, olderThan time.Time) (int64, error)
}

// AuditRepository defines persistence operations for log entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *LogEntry) error
	List(ctx context.Context, query *Query) ([]*LogEntry, error)
	GetByID(ctx context.Context, entryID string) (*LogEntry, error)
	// ListByObject returns the entries of an object oldest first.
	ListByObject(ctx context.Context, objectClass, objectID string) ([]*LogEntry, error)
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
	// ListObjectsLoggedBefore returns each object having entries logged before before.
	ListObjectsLoggedBefore(ctx context.Context, before time.Time) ([]ObjectRef, error)
	UpdateData(ctx context.Context, entryID string, data map[string]interface{}) error
}

// ObjectRef identifies an audited object.
type ObjectRef struct {
	ObjectClass string
	ObjectID    string
}

// EventPublisher broadcasts recorded entries to other systems.
type EventPublisher interface {
	Publish(ctx context.Context, entry *LogEntry) error
	Close() error
}
