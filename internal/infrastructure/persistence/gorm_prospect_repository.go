package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/persistence/models"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormProspectRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProspectRepository creates a new GORM-based ProspectRepository implementation
func NewGormProspectRepository(db *gorm.DB, logger logger.Logger) (prospects.ProspectRepository, error) {
	return &gormProspectRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProspectRepository) Create(ctx context.Context, prospect *prospects.Prospect) error {
	if err := prospect.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProspectModel{}
	model.FromDomain(prospect)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create prospect: %w", err)
	}

	prospect.CreatedAt = model.CreatedAt
	prospect.UpdatedAt = model.UpdatedAt
	r.logger.Info("Created prospect with id ", prospect.ID)
	return nil
}

func (r *gormProspectRepository) List(ctx context.Context, query *prospects.ProspectQuery) ([]*prospects.Prospect, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.preloaded(ctx).Model(&models.ProspectModel{})

	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.Priority != "" {
		dbQuery = dbQuery.Where("priority = ?", query.Priority)
	}
	if query.Source != "" {
		dbQuery = dbQuery.Where("source = ?", query.Source)
	}
	if query.AssignedToID != "" {
		dbQuery = dbQuery.Where("assigned_to_id = ?", query.AssignedToID)
	}
	if query.Search != "" {
		pattern := "%" + strings.ToLower(query.Search) + "%"
		dbQuery = dbQuery.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*models.ProspectModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch prospects: %w", err)
	}
	return toProspects(modelList), nil
}

func (r *gormProspectRepository) ListAll(ctx context.Context) ([]*prospects.Prospect, error) {
	var modelList []*models.ProspectModel
	if err := r.preloaded(ctx).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch prospects: %w", err)
	}
	return toProspects(modelList), nil
}

func (r *gormProspectRepository) GetByID(ctx context.Context, prospectID string) (*prospects.Prospect, error) {
	var model models.ProspectModel
	if err := r.preloaded(ctx).Where("id = ?", prospectID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("prospect with ID %s %w", prospectID, prospects.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch prospect: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProspectRepository) UpdateByID(ctx context.Context, prospect *prospects.Prospect) error {
	if err := prospect.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProspectModel{}
	model.FromDomain(prospect)

	result := r.db.WithContext(ctx).Omit(clause.Associations).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update prospect: %w", result.Error)
	}

	prospect.UpdatedAt = model.UpdatedAt
	r.logger.Info("Updated prospect with id ", prospect.ID)
	return nil
}

func (r *gormProspectRepository) DeleteByID(ctx context.Context, prospectID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{&models.ContactRequestModel{}, &models.NeedsAnalysisModel{}, &models.NoteModel{}} {
			if err := tx.Where("prospect_id = ?", prospectID).Delete(child).Error; err != nil {
				return err
			}
		}
		result := tx.Where("id = ?", prospectID).Delete(&models.ProspectModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("prospect with ID %s %w", prospectID, prospects.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, prospects.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete prospect: %w", err)
	}

	r.logger.Info("Deleted prospect with id ", prospectID)
	return nil
}

func (r *gormProspectRepository) CreateNote(ctx context.Context, note *prospects.Note) error {
	if err := note.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.NoteModel{}
	model.FromDomain(note)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	note.CreatedAt = model.CreatedAt
	note.UpdatedAt = model.UpdatedAt
	r.logger.Info("Created note ", note.ID, " on prospect ", note.ProspectID)
	return nil
}

func (r *gormProspectRepository) ListNotes(ctx context.Context, prospectID string) ([]*prospects.Note, error) {
	var modelList []*models.NoteModel
	err := r.db.WithContext(ctx).
		Where("prospect_id = ?", prospectID).
		Order("created_at desc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notes: %w", err)
	}

	notes := make([]*prospects.Note, len(modelList))
	for i, model := range modelList {
		notes[i] = model.ToDomain()
	}
	return notes, nil
}

func (r *gormProspectRepository) CreateContactRequest(ctx context.Context, request *prospects.ContactRequest) error {
	if err := request.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ContactRequestModel{}
	model.FromDomain(request)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create contact request: %w", err)
	}

	request.CreatedAt = model.CreatedAt
	r.logger.Info("Created contact request ", request.ID, " on prospect ", request.ProspectID)
	return nil
}

func (r *gormProspectRepository) CreateNeedsAnalysis(ctx context.Context, analysis *prospects.NeedsAnalysisRequest) error {
	if err := analysis.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.NeedsAnalysisModel{}
	model.FromDomain(analysis)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create needs analysis: %w", err)
	}

	analysis.CreatedAt = model.CreatedAt
	r.logger.Info("Created needs analysis ", analysis.ID, " on prospect ", analysis.ProspectID)
	return nil
}

func (r *gormProspectRepository) GetNeedsAnalysis(ctx context.Context, analysisID string) (*prospects.NeedsAnalysisRequest, error) {
	var model models.NeedsAnalysisModel
	if err := r.db.WithContext(ctx).Where("id = ?", analysisID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("needs analysis with ID %s %w", analysisID, prospects.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch needs analysis: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProspectRepository) UpdateNeedsAnalysis(ctx context.Context, analysis *prospects.NeedsAnalysisRequest) error {
	if err := analysis.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.NeedsAnalysisModel{}
	model.FromDomain(analysis)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update needs analysis: %w", err)
	}

	r.logger.Info("Updated needs analysis with id ", analysis.ID)
	return nil
}

func (r *gormProspectRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("ContactRequests", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		Preload("NeedsAnalyses", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") })
}

func toProspects(modelList []*models.ProspectModel) []*prospects.Prospect {
	domainList := make([]*prospects.Prospect, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
