//go:build unit
// +build unit

package v1

import (
	"context"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/alternance"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/dashboard"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/identity"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"

	"github.com/stretchr/testify/mock"
)

// MockProspectService is a mock implementation of ProspectService
type MockProspectService struct {
	mock.Mock
}

func (m *MockProspectService) Create(ctx context.Context, p *prospects.Prospect, username string) (*prospects.Prospect, error) {
	args := m.Called(ctx, p, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prospects.Prospect), args.Error(1)
}

func (m *MockProspectService) Get(ctx context.Context, prospectID string) (*prospects.Prospect, error) {
	args := m.Called(ctx, prospectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prospects.Prospect), args.Error(1)
}

func (m *MockProspectService) List(ctx context.Context, query *prospects.ProspectQuery) ([]*prospects.Prospect, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*prospects.Prospect), args.Error(1)
}

func (m *MockProspectService) Update(ctx context.Context, p *prospects.Prospect, username string) (*prospects.Prospect, error) {
	args := m.Called(ctx, p, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prospects.Prospect), args.Error(1)
}

func (m *MockProspectService) Delete(ctx context.Context, prospectID, username string) error {
	return m.Called(ctx, prospectID, username).Error(0)
}

func (m *MockProspectService) Statistics(ctx context.Context, now time.Time) (*prospects.Statistics, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prospects.Statistics), args.Error(1)
}

// MockProspectActivityService is a mock implementation of ProspectActivityService
type MockProspectActivityService struct {
	mock.Mock
}

func (m *MockProspectActivityService) AddNote(ctx context.Context, note *prospects.Note, username string) (*prospects.Note, error) {
	args := m.Called(ctx, note, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prospects.Note), args.Error(1)
}

func (m *MockProspectActivityService) ListNotes(ctx context.Context, prospectID, userID string) ([]*prospects.Note, error) {
	args := m.Called(ctx, prospectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*prospects.Note), args.Error(1)
}

func (m *MockProspectActivityService) AddContactRequest(ctx context.Context, request *prospects.ContactRequest, username string) (*prospects.ContactRequest, error) {
	args := m.Called(ctx, request, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prospects.ContactRequest), args.Error(1)
}

func (m *MockProspectActivityService) AddNeedsAnalysis(ctx context.Context, analysis *prospects.NeedsAnalysisRequest, username string) (*prospects.NeedsAnalysisRequest, error) {
	args := m.Called(ctx, analysis, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prospects.NeedsAnalysisRequest), args.Error(1)
}

func (m *MockProspectActivityService) CompleteNeedsAnalysis(ctx context.Context, prospectID, analysisID, username string) (*prospects.NeedsAnalysisRequest, error) {
	args := m.Called(ctx, prospectID, analysisID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prospects.NeedsAnalysisRequest), args.Error(1)
}

// MockMentorService is a mock implementation of MentorService
type MockMentorService struct {
	mock.Mock
}

func (m *MockMentorService) Create(ctx context.Context, mentor *alternance.Mentor, username string) (*alternance.Mentor, error) {
	args := m.Called(ctx, mentor, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*alternance.Mentor), args.Error(1)
}

func (m *MockMentorService) Get(ctx context.Context, mentorID string) (*alternance.Mentor, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*alternance.Mentor), args.Error(1)
}

func (m *MockMentorService) List(ctx context.Context, query *alternance.MentorQuery) ([]*alternance.Mentor, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*alternance.Mentor), args.Error(1)
}

func (m *MockMentorService) Update(ctx context.Context, mentor *alternance.Mentor, username string) (*alternance.Mentor, error) {
	args := m.Called(ctx, mentor, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*alternance.Mentor), args.Error(1)
}

func (m *MockMentorService) Deactivate(ctx context.Context, mentorID, username string) (*alternance.Mentor, error) {
	args := m.Called(ctx, mentorID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*alternance.Mentor), args.Error(1)
}

// MockContractService is a mock implementation of ContractService
type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) Create(ctx context.Context, contract *alternance.Contract, username string) (*alternance.Contract, error) {
	args := m.Called(ctx, contract, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*alternance.Contract), args.Error(1)
}

func (m *MockContractService) Get(ctx context.Context, contractID string) (*alternance.Contract, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*alternance.Contract), args.Error(1)
}

func (m *MockContractService) List(ctx context.Context, query *alternance.ContractQuery) ([]*alternance.Contract, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*alternance.Contract), args.Error(1)
}

func (m *MockContractService) TransitionStatus(ctx context.Context, contractID, status, username string) (*alternance.Contract, error) {
	args := m.Called(ctx, contractID, status, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*alternance.Contract), args.Error(1)
}

// MockEngagementService is a mock implementation of EngagementService
type MockEngagementService struct {
	mock.Mock
}

func (m *MockEngagementService) UpsertRecord(ctx context.Context, record *engagement.StudentEngagement, username string) (*engagement.StudentEngagement, error) {
	args := m.Called(ctx, record, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engagement.StudentEngagement), args.Error(1)
}

func (m *MockEngagementService) Get(ctx context.Context, studentID string) (*engagement.StudentEngagement, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engagement.StudentEngagement), args.Error(1)
}

func (m *MockEngagementService) ListAtRisk(ctx context.Context) ([]*engagement.StudentEngagement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*engagement.StudentEngagement), args.Error(1)
}

func (m *MockEngagementService) Reevaluate(ctx context.Context, username string) (int, error) {
	args := m.Called(ctx, username)
	return args.Int(0), args.Error(1)
}

func (m *MockEngagementService) Dashboard(ctx context.Context) (*engagement.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engagement.Dashboard), args.Error(1)
}

func (m *MockEngagementService) Export(ctx context.Context, format string) (*engagement.ExportFile, error) {
	args := m.Called(ctx, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engagement.ExportFile), args.Error(1)
}

// MockAuditService is a mock implementation of AuditService
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, action, objectClass, objectID string, snapshot map[string]interface{}, username string) (*audit.LogEntry, error) {
	args := m.Called(ctx, action, objectClass, objectID, snapshot, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*audit.LogEntry), args.Error(1)
}

func (m *MockAuditService) History(ctx context.Context, objectClass, objectID string) ([]*audit.HistoryEntry, error) {
	args := m.Called(ctx, objectClass, objectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.HistoryEntry), args.Error(1)
}

func (m *MockAuditService) List(ctx context.Context, query *audit.Query) ([]*audit.LogEntry, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.LogEntry), args.Error(1)
}

func (m *MockAuditService) Get(ctx context.Context, entryID string) (*audit.HistoryEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*audit.HistoryEntry), args.Error(1)
}

func (m *MockAuditService) Purge(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

// MockDashboardService is a mock implementation of DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context, principal *identity.Principal) (*dashboard.Summary, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Summary), args.Error(1)
}

// newMockServices returns a Services whose members are all fresh mocks.
func newMockServices() (*Services, *mockSet) {
	set := &mockSet{
		prospects:  new(MockProspectService),
		activity:   new(MockProspectActivityService),
		mentors:    new(MockMentorService),
		contracts:  new(MockContractService),
		engagement: new(MockEngagementService),
		audit:      new(MockAuditService),
		dashboard:  new(MockDashboardService),
	}
	return &Services{
		Prospects:  set.prospects,
		Activity:   set.activity,
		Mentors:    set.mentors,
		Contracts:  set.contracts,
		Engagement: set.engagement,
		Audit:      set.audit,
		Dashboard:  set.dashboard,
	}, set
}

type mockSet struct {
	prospects  *MockProspectService
	activity   *MockProspectActivityService
	mentors    *MockMentorService
	contracts  *MockContractService
	engagement *MockEngagementService
	audit      *MockAuditService
	dashboard  *MockDashboardService
}
