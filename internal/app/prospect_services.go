package app

import (
	"context"
	"fmt"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/utils"
	"github.com/google/uuid"
)

// prospectService implements the ProspectService interface
type prospectService struct {
	repo     prospects.ProspectRepository
	recorder audit.Recorder
	logger   logger.Logger
}

// NewProspectService creates a new instance of ProspectService
func NewProspectService(repo prospects.ProspectRepository, recorder audit.Recorder, logger logger.Logger) (prospects.ProspectService, error) {
	return &prospectService{
		repo:     repo,
		recorder: recorder,
		logger:   logger,
	}, nil
}

// Create stores a new prospect. Child records are added through the activity service.
func (s *prospectService) Create(ctx context.Context, prospect *prospects.Prospect, username string) (*prospects.Prospect, error) {
	if prospect.ID == "" {
		prospect.ID = uuid.New().String()
	}
	if prospect.Status == "" {
		prospect.Status = prospects.StatusLead
	}
	if prospect.Priority == "" {
		prospect.Priority = prospects.PriorityMedium
	}
	prospect.ContactRequests = nil
	prospect.NeedsAnalyses = nil

	if err := s.repo.Create(ctx, prospect); err != nil {
		return nil, fmt.Errorf("failed to create prospect: %w", err)
	}

	s.record(ctx, audit.ActionCreate, prospect.ID, prospect.Snapshot(), username)
	return prospect, nil
}

// Get returns a prospect with its contact requests and needs analyses.
func (s *prospectService) Get(ctx context.Context, prospectID string) (*prospects.Prospect, error) {
	return s.repo.GetByID(ctx, prospectID)
}

// List returns the prospects matching query.
func (s *prospectService) List(ctx context.Context, query *prospects.ProspectQuery) ([]*prospects.Prospect, error) {
	if query == nil {
		query = prospects.NewProspectQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	return s.repo.List(ctx, query)
}

// Update overwrites the editable fields of an existing prospect.
func (s *prospectService) Update(ctx context.Context, prospect *prospects.Prospect, username string) (*prospects.Prospect, error) {
	existing, err := s.repo.GetByID(ctx, prospect.ID)
	if err != nil {
		return nil, err
	}

	prospect.CreatedAt = existing.CreatedAt
	prospect.ContactRequests = existing.ContactRequests
	prospect.NeedsAnalyses = existing.NeedsAnalyses
	if prospect.LastContactDate == nil {
		prospect.LastContactDate = existing.LastContactDate
	}

	if err := s.repo.UpdateByID(ctx, prospect); err != nil {
		return nil, fmt.Errorf("failed to update prospect: %w", err)
	}

	s.record(ctx, audit.ActionUpdate, prospect.ID, prospect.Snapshot(), username)
	return prospect, nil
}

// Delete removes a prospect and its child records.
func (s *prospectService) Delete(ctx context.Context, prospectID, username string) error {
	if err := s.repo.DeleteByID(ctx, prospectID); err != nil {
		return err
	}

	s.record(ctx, audit.ActionRemove, prospectID, nil, username)
	return nil
}

// Statistics summarises the funnel as of now.
func (s *prospectService) Statistics(ctx context.Context, now time.Time) (*prospects.Statistics, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load prospects: %w", err)
	}

	stats := &prospects.Statistics{
		Total:    len(all),
		ByStatus: map[string]int{},
	}
	if len(all) == 0 {
		return stats, nil
	}

	scoreSum := 0
	for _, p := range all {
		stats.ByStatus[p.Status]++
		score := p.LeadScore()
		scoreSum += score
		if prospects.LevelForScore(score) == prospects.ScoreLevelHot {
			stats.HotLeads++
		}
		if p.IsOverdueFollowUp(now) {
			stats.OverdueFollowUps++
		}
	}

	total := float64(len(all))
	stats.AverageLeadScore = utils.RoundTo(float64(scoreSum)/total, 1)
	stats.ConversionRatePct = utils.RoundTo(float64(stats.ByStatus[prospects.StatusCustomer])/total*100, 1)
	return stats, nil
}

func (s *prospectService) record(ctx context.Context, action, prospectID string, snapshot map[string]interface{}, username string) {
	recordAudit(ctx, s.recorder, s.logger, action, prospects.EntityClass, prospectID, snapshot, username)
}

// prospectActivityService implements the ProspectActivityService interface
type prospectActivityService struct {
	repo         prospects.ProspectRepository
	acknowledger prospects.ContactAcknowledger
	logger       logger.Logger
	now          func() time.Time
}

// NewProspectActivityService creates a new instance of ProspectActivityService.
// acknowledger may be nil, in which case no acknowledgment is sent.
func NewProspectActivityService(repo prospects.ProspectRepository, acknowledger prospects.ContactAcknowledger, logger logger.Logger) (prospects.ProspectActivityService, error) {
	return &prospectActivityService{
		repo:         repo,
		acknowledger: acknowledger,
		logger:       logger,
		now:          time.Now,
	}, nil
}

// AddNote logs an interaction on a prospect.
func (s *prospectActivityService) AddNote(ctx context.Context, note *prospects.Note, username string) (*prospects.Note, error) {
	if _, err := s.repo.GetByID(ctx, note.ProspectID); err != nil {
		return nil, err
	}

	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	if note.Type == "" {
		note.Type = prospects.NoteTypeNote
	}
	if note.Status == "" {
		note.Status = prospects.NoteStatusPending
	}
	if note.CreatedByID == "" {
		note.CreatedByID = username
	}

	if err := s.repo.CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	s.logger.Info("Created note with id ", note.ID, " on prospect ", note.ProspectID)
	return note, nil
}

// ListNotes returns the notes visible to userID.
func (s *prospectActivityService) ListNotes(ctx context.Context, prospectID, userID string) ([]*prospects.Note, error) {
	if _, err := s.repo.GetByID(ctx, prospectID); err != nil {
		return nil, err
	}

	notes, err := s.repo.ListNotes(ctx, prospectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	visible := make([]*prospects.Note, 0, len(notes))
	for _, n := range notes {
		if n.VisibleTo(userID) {
			visible = append(visible, n)
		}
	}
	return visible, nil
}

// AddContactRequest records the request, updates the last contact date of
// the prospect and acknowledges the request by email.
func (s *prospectActivityService) AddContactRequest(ctx context.Context, request *prospects.ContactRequest, username string) (*prospects.ContactRequest, error) {
	prospect, err := s.repo.GetByID(ctx, request.ProspectID)
	if err != nil {
		return nil, err
	}

	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	if err := s.repo.CreateContactRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create contact request: %w", err)
	}

	now := s.now()
	prospect.LastContactDate = &now
	if err := s.repo.UpdateByID(ctx, prospect); err != nil {
		return nil, fmt.Errorf("failed to update last contact date: %w", err)
	}
	s.logger.Info("Created contact request with id ", request.ID, " on prospect ", prospect.ID, " by ", username)

	if s.acknowledger != nil {
		if err := s.acknowledger.AcknowledgeContactRequest(ctx, prospect, request); err != nil {
			s.logger.Warn("Failed to acknowledge contact request ", request.ID, ": ", err)
		}
	}
	return request, nil
}

// AddNeedsAnalysis sends a needs analysis to a prospect.
func (s *prospectActivityService) AddNeedsAnalysis(ctx context.Context, analysis *prospects.NeedsAnalysisRequest, username string) (*prospects.NeedsAnalysisRequest, error) {
	if _, err := s.repo.GetByID(ctx, analysis.ProspectID); err != nil {
		return nil, err
	}

	if analysis.ID == "" {
		analysis.ID = uuid.New().String()
	}
	analysis.Completed = false
	analysis.CompletedAt = nil

	if err := s.repo.CreateNeedsAnalysis(ctx, analysis); err != nil {
		return nil, fmt.Errorf("failed to create needs analysis: %w", err)
	}
	s.logger.Info("Created needs analysis with id ", analysis.ID, " on prospect ", analysis.ProspectID, " by ", username)
	return analysis, nil
}

// CompleteNeedsAnalysis marks an analysis of prospectID as completed.
func (s *prospectActivityService) CompleteNeedsAnalysis(ctx context.Context, prospectID, analysisID, username string) (*prospects.NeedsAnalysisRequest, error) {
	analysis, err := s.repo.GetNeedsAnalysis(ctx, analysisID)
	if err != nil {
		return nil, err
	}
	if analysis.ProspectID != prospectID {
		return nil, fmt.Errorf("needs analysis with ID %s on prospect %s %w", analysisID, prospectID, prospects.ErrNotFound)
	}
	if analysis.Completed {
		return analysis, nil
	}

	analysis.Complete(s.now())
	if err := s.repo.UpdateNeedsAnalysis(ctx, analysis); err != nil {
		return nil, fmt.Errorf("failed to complete needs analysis: %w", err)
	}
	s.logger.Info("Completed needs analysis with id ", analysisID, " by ", username)
	return analysis, nil
}
