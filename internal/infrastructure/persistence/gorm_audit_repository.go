package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/persistence/models"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAuditRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAuditRepository creates a new GORM-based AuditRepository implementation
func NewGormAuditRepository(db *gorm.DB, logger logger.Logger) (audit.AuditRepository, error) {
	return &gormAuditRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAuditRepository) Create(ctx context.Context, entry *audit.LogEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AuditLogModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}

	r.logger.Debug("Logged ", entry.Action, " of ", entry.ObjectClass, " ", entry.ObjectID, " version ", entry.Version)
	return nil
}

func (r *gormAuditRepository) List(ctx context.Context, query *audit.Query) ([]*audit.LogEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.AuditLogModel{})
	if query.ObjectClass != "" {
		dbQuery = dbQuery.Where("object_class = ?", query.ObjectClass)
	}
	if query.ObjectID != "" {
		dbQuery = dbQuery.Where("object_id = ?", query.ObjectID)
	}
	if query.Action != "" {
		dbQuery = dbQuery.Where("action = ?", query.Action)
	}
	if query.Username != "" {
		dbQuery = dbQuery.Where("username = ?", query.Username)
	}
	if query.From != nil {
		dbQuery = dbQuery.Where("logged_at >= ?", *query.From)
	}
	if query.To != nil {
		dbQuery = dbQuery.Where("logged_at <= ?", *query.To)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*models.AuditLogModel
	if err := dbQuery.Order("logged_at desc, version desc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch audit log entries: %w", err)
	}
	return toLogEntries(modelList), nil
}

func (r *gormAuditRepository) GetByID(ctx context.Context, entryID string) (*audit.LogEntry, error) {
	var model models.AuditLogModel
	if err := r.db.WithContext(ctx).Where("id = ?", entryID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("audit log entry with ID %s %w", entryID, audit.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch audit log entry: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAuditRepository) ListByObject(ctx context.Context, objectClass, objectID string) ([]*audit.LogEntry, error) {
	var modelList []*models.AuditLogModel
	err := r.db.WithContext(ctx).
		Where("object_class = ? AND object_id = ?", objectClass, objectID).
		Order("version asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history of %s %s: %w", objectClass, objectID, err)
	}
	return toLogEntries(modelList), nil
}

func (r *gormAuditRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("logged_at < ?", before).Delete(&models.AuditLogModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge audit log: %w", result.Error)
	}

	r.logger.Info("Purged ", result.RowsAffected, " audit log entries older than ", before.Format(time.RFC3339))
	return result.RowsAffected, nil
}

func (r *gormAuditRepository) ListObjectsLoggedBefore(ctx context.Context, before time.Time) ([]audit.ObjectRef, error) {
	var refs []audit.ObjectRef
	err := r.db.WithContext(ctx).Model(&models.AuditLogModel{}).
		Distinct("object_class", "object_id").
		Where("logged_at < ?", before).
		Order("object_class, object_id").
		Find(&refs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list objects logged before %s: %w", before.Format(time.RFC3339), err)
	}
	return refs, nil
}

func (r *gormAuditRepository) UpdateData(ctx context.Context, entryID string, data map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.AuditLogModel{ID: entryID}).
		Select("Data").
		Updates(&models.AuditLogModel{Data: data})
	if result.Error != nil {
		return fmt.Errorf("failed to update audit log entry %s: %w", entryID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("audit log entry with ID %s %w", entryID, audit.ErrNotFound)
	}
	return nil
}

func toLogEntries(modelList []*models.AuditLogModel) []*audit.LogEntry {
	entries := make([]*audit.LogEntry, len(modelList))
	for i, model := range modelList {
		entries[i] = model.ToDomain()
	}
	return entries
}
