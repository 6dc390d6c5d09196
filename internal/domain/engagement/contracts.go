package engagement

import (
	"context"
	"time"
)

// EngagementService defines engagement tracking and dashboard operations.
type EngagementService interface {
	// UpsertRecord evaluates the dropout risk of record and stores it.
	UpsertRecord(ctx context.Context, record *StudentEngagement, username string) (*StudentEngagement, error)
	Get(ctx context.Context, studentID string) (*StudentEngagement, error)
	ListAtRisk(ctx context.Context) ([]*StudentEngagement, error)
	// Reevaluate stores the records whose risk changed with the passing of
	// time and returns how many were updated.
	Reevaluate(ctx context.Context, username string) (int, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
	Export(ctx context.Context, format string) (*ExportFile, error)
}

// EngagementRepository defines persistence operations for engagement records.
type EngagementRepository interface {
	Upsert(ctx context.Context, record *StudentEngagement) error
	GetByStudentID(ctx context.Context, studentID string) (*StudentEngagement, error)
	List(ctx context.Context) ([]*StudentEngagement, error)
}

// DashboardCache keeps the last computed dashboard.
type DashboardCache interface {
	// Get returns ErrCacheMiss when nothing is cached.
	Get(ctx context.Context) (*Dashboard, error)
	Set(ctx context.Context, dashboard *Dashboard, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// Exporter renders engagement data in one file format.
type Exporter interface {
	Format() string
	ContentType() string
	Export(data *ExportData) ([]byte, error)
}

// Archiver stores a copy of generated exports.
type Archiver interface {
	Archive(ctx context.Context, key string, content []byte, contentType string) (string, error)
}

// RiskNotifier is told when a student becomes at risk.
type RiskNotifier interface {
	NotifyAtRisk(ctx context.Context, record *StudentEngagement) error
}
