// Package dashboard defines the landing summary each role sees after login.
package dashboard

import (
	"context"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/alternance"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/identity"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"
)

// Summary holds the sections relevant to the caller's role. Sections that do
// not apply are left nil.
type Summary struct {
	Role               string
	ProspectStatistics *prospects.Statistics
	Engagement         *engagement.Dashboard
	AtRiskStudents     []*engagement.StudentEngagement
	Contracts          []*alternance.Contract
	EngagementRecord   *engagement.StudentEngagement
}

// DashboardService builds role based summaries.
type DashboardService interface {
	Summary(ctx context.Context, principal *identity.Principal) (*Summary, error)
}
