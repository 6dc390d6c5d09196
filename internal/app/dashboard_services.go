package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/alternance"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/dashboard"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/identity"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"
)

// dashboardService implements the DashboardService interface
type dashboardService struct {
	prospects  prospects.ProspectService
	engagement engagement.EngagementService
	contracts  alternance.ContractService
	logger     logger.Logger
	now        func() time.Time
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(prospectService prospects.ProspectService, engagementService engagement.EngagementService, contractService alternance.ContractService, logger logger.Logger) (dashboard.DashboardService, error) {
	return &dashboardService{
		prospects:  prospectService,
		engagement: engagementService,
		contracts:  contractService,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// Summary builds the summary of the most privileged role held by principal.
func (s *dashboardService) Summary(ctx context.Context, principal *identity.Principal) (*dashboard.Summary, error) {
	summary := &dashboard.Summary{Role: principal.PrimaryRole()}

	switch summary.Role {
	case identity.RoleAdmin:
		stats, err := s.prospects.Statistics(ctx, s.now())
		if err != nil {
			return nil, fmt.Errorf("failed to compute prospect statistics: %w", err)
		}
		summary.ProspectStatistics = stats

		d, err := s.engagement.Dashboard(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to compute engagement dashboard: %w", err)
		}
		summary.Engagement = d

	case identity.RoleTeacher:
		atRisk, err := s.engagement.ListAtRisk(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list at-risk students: %w", err)
		}
		summary.AtRiskStudents = atRisk

	case identity.RoleMentor:
		contracts, err := s.contracts.List(ctx, &alternance.ContractQuery{MentorID: principal.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to list mentor contracts: %w", err)
		}
		summary.Contracts = contracts

	case identity.RoleStudent:
		record, err := s.engagement.Get(ctx, principal.ID)
		if err != nil && !errors.Is(err, engagement.ErrNotFound) {
			return nil, fmt.Errorf("failed to load engagement record: %w", err)
		}
		summary.EngagementRecord = record

	default:
		s.logger.Warn("No dashboard for user ", principal.ID, " without a known role")
	}

	return summary, nil
}
