package app

import (
	"context"
	"fmt"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/alternance"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"
	"github.com/google/uuid"
)

// mentorService implements the MentorService interface
type mentorService struct {
	repo     alternance.MentorRepository
	recorder audit.Recorder
	logger   logger.Logger
}

// NewMentorService creates a new instance of MentorService
func NewMentorService(repo alternance.MentorRepository, recorder audit.Recorder, logger logger.Logger) (alternance.MentorService, error) {
	return &mentorService{
		repo:     repo,
		recorder: recorder,
		logger:   logger,
	}, nil
}

// Create stores a new mentor. New mentors are active.
func (s *mentorService) Create(ctx context.Context, mentor *alternance.Mentor, username string) (*alternance.Mentor, error) {
	if mentor.ID == "" {
		mentor.ID = uuid.New().String()
	}
	mentor.Active = true

	if err := s.repo.Create(ctx, mentor); err != nil {
		return nil, fmt.Errorf("failed to create mentor: %w", err)
	}

	recordAudit(ctx, s.recorder, s.logger, audit.ActionCreate, alternance.MentorEntityClass, mentor.ID, mentor.Snapshot(), username)
	return mentor, nil
}

func (s *mentorService) Get(ctx context.Context, mentorID string) (*alternance.Mentor, error) {
	return s.repo.GetByID(ctx, mentorID)
}

func (s *mentorService) List(ctx context.Context, query *alternance.MentorQuery) ([]*alternance.Mentor, error) {
	if query == nil {
		query = &alternance.MentorQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	return s.repo.List(ctx, query)
}

// Update overwrites an existing mentor.
func (s *mentorService) Update(ctx context.Context, mentor *alternance.Mentor, username string) (*alternance.Mentor, error) {
	existing, err := s.repo.GetByID(ctx, mentor.ID)
	if err != nil {
		return nil, err
	}
	mentor.CreatedAt = existing.CreatedAt

	if err := s.repo.UpdateByID(ctx, mentor); err != nil {
		return nil, fmt.Errorf("failed to update mentor: %w", err)
	}

	recordAudit(ctx, s.recorder, s.logger, audit.ActionUpdate, alternance.MentorEntityClass, mentor.ID, mentor.Snapshot(), username)
	return mentor, nil
}

// Deactivate flags a mentor as inactive. Running contracts are left untouched.
func (s *mentorService) Deactivate(ctx context.Context, mentorID, username string) (*alternance.Mentor, error) {
	mentor, err := s.repo.GetByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if !mentor.Active {
		return mentor, nil
	}

	mentor.Active = false
	if err := s.repo.UpdateByID(ctx, mentor); err != nil {
		return nil, fmt.Errorf("failed to deactivate mentor: %w", err)
	}

	recordAudit(ctx, s.recorder, s.logger, audit.ActionUpdate, alternance.MentorEntityClass, mentor.ID, mentor.Snapshot(), username)
	return mentor, nil
}

// contractService implements the ContractService interface
type contractService struct {
	contracts alternance.ContractRepository
	mentors   alternance.MentorRepository
	recorder  audit.Recorder
	logger    logger.Logger
}

// NewContractService creates a new instance of ContractService
func NewContractService(contracts alternance.ContractRepository, mentors alternance.MentorRepository, recorder audit.Recorder, logger logger.Logger) (alternance.ContractService, error) {
	return &contractService{
		contracts: contracts,
		mentors:   mentors,
		recorder:  recorder,
		logger:    logger,
	}, nil
}

// Create stores a draft contract once its mentor is confirmed available.
func (s *contractService) Create(ctx context.Context, contract *alternance.Contract, username string) (*alternance.Contract, error) {
	if err := s.ensureMentorAvailable(ctx, contract.MentorID); err != nil {
		return nil, err
	}

	if contract.ID == "" {
		contract.ID = uuid.New().String()
	}
	if contract.Status == "" {
		contract.Status = alternance.ContractStatusDraft
	}

	if err := s.contracts.Create(ctx, contract); err != nil {
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	recordAudit(ctx, s.recorder, s.logger, audit.ActionCreate, alternance.ContractEntityClass, contract.ID, contract.Snapshot(), username)
	return contract, nil
}

func (s *contractService) Get(ctx context.Context, contractID string) (*alternance.Contract, error) {
	return s.contracts.GetByID(ctx, contractID)
}

func (s *contractService) List(ctx context.Context, query *alternance.ContractQuery) ([]*alternance.Contract, error) {
	if query == nil {
		query = &alternance.ContractQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	return s.contracts.List(ctx, query)
}

// TransitionStatus moves a contract to status. Entering a running status
// requires the mentor to still have a free slot.
func (s *contractService) TransitionStatus(ctx context.Context, contractID, status, username string) (*alternance.Contract, error) {
	contract, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	wasRunning := contract.IsRunning()
	if err := contract.TransitionTo(status); err != nil {
		return nil, err
	}
	if !wasRunning && contract.IsRunning() {
		if err := s.ensureMentorAvailable(ctx, contract.MentorID); err != nil {
			return nil, err
		}
	}

	if err := s.contracts.UpdateByID(ctx, contract); err != nil {
		return nil, fmt.Errorf("failed to update contract: %w", err)
	}

	recordAudit(ctx, s.recorder, s.logger, audit.ActionUpdate, alternance.ContractEntityClass, contract.ID, contract.Snapshot(), username)
	return contract, nil
}

func (s *contractService) ensureMentorAvailable(ctx context.Context, mentorID string) error {
	mentor, err := s.mentors.GetByID(ctx, mentorID)
	if err != nil {
		return err
	}
	running, err := s.contracts.CountRunningByMentor(ctx, mentorID)
	if err != nil {
		return fmt.Errorf("failed to count contracts of mentor %s: %w", mentorID, err)
	}
	if !mentor.CanSuperviseMore(int(running)) {
		return fmt.Errorf("%w: %s is inactive or already supervises %d contracts", alternance.ErrMentorUnavailable, mentor.FullName(), running)
	}
	return nil
}
