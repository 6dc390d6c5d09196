package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/alternance"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/persistence/models"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormMentorRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMentorRepository creates a new GORM-based MentorRepository implementation
func NewGormMentorRepository(db *gorm.DB, logger logger.Logger) (alternance.MentorRepository, error) {
	return &gormMentorRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMentorRepository) Create(ctx context.Context, mentor *alternance.Mentor) error {
	if err := mentor.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MentorModel{}
	model.FromDomain(mentor)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create mentor: %w", err)
	}

	mentor.CreatedAt = model.CreatedAt
	mentor.UpdatedAt = model.UpdatedAt
	r.logger.Info("Created mentor with id ", mentor.ID)
	return nil
}

func (r *gormMentorRepository) List(ctx context.Context, query *alternance.MentorQuery) ([]*alternance.Mentor, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.MentorModel{})
	if query.Active != nil {
		dbQuery = dbQuery.Where("active = ?", *query.Active)
	}
	if query.Search != "" {
		pattern := "%" + strings.ToLower(query.Search) + "%"
		dbQuery = dbQuery.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(company_name) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*models.MentorModel
	if err := dbQuery.Order("last_name asc, first_name asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch mentors: %w", err)
	}

	mentors := make([]*alternance.Mentor, len(modelList))
	for i, model := range modelList {
		mentors[i] = model.ToDomain()
	}
	return mentors, nil
}

func (r *gormMentorRepository) GetByID(ctx context.Context, mentorID string) (*alternance.Mentor, error) {
	var model models.MentorModel
	if err := r.db.WithContext(ctx).Where("id = ?", mentorID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("mentor with ID %s %w", mentorID, alternance.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch mentor: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormMentorRepository) UpdateByID(ctx context.Context, mentor *alternance.Mentor) error {
	if err := mentor.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MentorModel{}
	model.FromDomain(mentor)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update mentor: %w", err)
	}

	mentor.UpdatedAt = model.UpdatedAt
	r.logger.Info("Updated mentor with id ", mentor.ID)
	return nil
}

type gormContractRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormContractRepository creates a new GORM-based ContractRepository implementation
func NewGormContractRepository(db *gorm.DB, logger logger.Logger) (alternance.ContractRepository, error) {
	return &gormContractRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormContractRepository) Create(ctx context.Context, contract *alternance.Contract) error {
	if err := contract.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ContractModel{}
	model.FromDomain(contract)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}

	contract.CreatedAt = model.CreatedAt
	contract.UpdatedAt = model.UpdatedAt
	r.logger.Info("Created alternance contract with id ", contract.ID)
	return nil
}

func (r *gormContractRepository) List(ctx context.Context, query *alternance.ContractQuery) ([]*alternance.Contract, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.ContractModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.MentorID != "" {
		dbQuery = dbQuery.Where("mentor_id = ?", query.MentorID)
	}
	if query.StudentID != "" {
		dbQuery = dbQuery.Where("student_id = ?", query.StudentID)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*models.ContractModel
	if err := dbQuery.Order("start_date desc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch contracts: %w", err)
	}

	contracts := make([]*alternance.Contract, len(modelList))
	for i, model := range modelList {
		contracts[i] = model.ToDomain()
	}
	return contracts, nil
}

func (r *gormContractRepository) GetByID(ctx context.Context, contractID string) (*alternance.Contract, error) {
	var model models.ContractModel
	if err := r.db.WithContext(ctx).Where("id = ?", contractID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("contract with ID %s %w", contractID, alternance.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch contract: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormContractRepository) UpdateByID(ctx context.Context, contract *alternance.Contract) error {
	if err := contract.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ContractModel{}
	model.FromDomain(contract)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update contract: %w", err)
	}

	contract.UpdatedAt = model.UpdatedAt
	r.logger.Info("Updated alternance contract with id ", contract.ID)
	return nil
}

func (r *gormContractRepository) CountRunningByMentor(ctx context.Context, mentorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ContractModel{}).
		Where("mentor_id = ? AND status IN ?", mentorID, runningContractStatuses).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count contracts of mentor %s: %w", mentorID, err)
	}
	return count, nil
}

var runningContractStatuses = []string{
	alternance.ContractStatusValidated,
	alternance.ContractStatusActive,
	alternance.ContractStatusSuspended,
}
