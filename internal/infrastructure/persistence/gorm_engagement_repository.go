package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/persistence/models"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormEngagementRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEngagementRepository creates a new GORM-based EngagementRepository implementation
func NewGormEngagementRepository(db *gorm.DB, logger logger.Logger) (engagement.EngagementRepository, error) {
	return &gormEngagementRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormEngagementRepository) Upsert(ctx context.Context, record *engagement.StudentEngagement) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EngagementModel{}
	model.FromDomain(record)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}},
			UpdateAll: true,
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert engagement record: %w", err)
	}

	record.UpdatedAt = model.UpdatedAt
	r.logger.Info("Upserted engagement record of student ", record.StudentID)
	return nil
}

func (r *gormEngagementRepository) GetByStudentID(ctx context.Context, studentID string) (*engagement.StudentEngagement, error) {
	var model models.EngagementModel
	if err := r.db.WithContext(ctx).Where("student_id = ?", studentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("engagement record of student %s %w", studentID, engagement.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch engagement record: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormEngagementRepository) List(ctx context.Context) ([]*engagement.StudentEngagement, error) {
	return r.find(r.db.WithContext(ctx).Order("student_name asc"))
}

func (r *gormEngagementRepository) find(db *gorm.DB) ([]*engagement.StudentEngagement, error) {
	var modelList []*models.EngagementModel
	if err := db.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch engagement records: %w", err)
	}

	records := make([]*engagement.StudentEngagement, len(modelList))
	for i, model := range modelList {
		records[i] = model.ToDomain()
	}
	return records, nil
}
