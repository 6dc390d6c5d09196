//go:build unit
// +build unit

package app

import (
	"context"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/alternance"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"

	"github.com/stretchr/testify/mock"
)

type mockAuditRepository struct{ mock.Mock }

func (m *mockAuditRepository) Create(ctx context.Context, entry *audit.LogEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockAuditRepository) List(ctx context.Context, query *audit.Query) ([]*audit.LogEntry, error) {
	args := m.Called(ctx, query)
	entries, _ := args.Get(0).([]*audit.LogEntry)
	return entries, args.Error(1)
}

func (m *mockAuditRepository) GetByID(ctx context.Context, entryID string) (*audit.LogEntry, error) {
	args := m.Called(ctx, entryID)
	entry, _ := args.Get(0).(*audit.LogEntry)
	return entry, args.Error(1)
}

func (m *mockAuditRepository) ListByObject(ctx context.Context, objectClass, objectID string) ([]*audit.LogEntry, error) {
	args := m.Called(ctx, objectClass, objectID)
	entries, _ := args.Get(0).([]*audit.LogEntry)
	return entries, args.Error(1)
}

func (m *mockAuditRepository) ListObjectsLoggedBefore(ctx context.Context, before time.Time) ([]audit.ObjectRef, error) {
	args := m.Called(ctx, before)
	refs, _ := args.Get(0).([]audit.ObjectRef)
	return refs, args.Error(1)
}

func (m *mockAuditRepository) UpdateData(ctx context.Context, entryID string, data map[string]interface{}) error {
	return m.Called(ctx, entryID, data).Error(0)
}

func (m *mockAuditRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, entry *audit.LogEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockPublisher) Close() error { return nil }

type mockRecorder struct{ mock.Mock }

func (m *mockRecorder) Record(ctx context.Context, action, objectClass, objectID string, snapshot map[string]interface{}, username string) (*audit.LogEntry, error) {
	args := m.Called(ctx, action, objectClass, objectID, snapshot, username)
	entry, _ := args.Get(0).(*audit.LogEntry)
	return entry, args.Error(1)
}

type mockEngagementRepository struct{ mock.Mock }

func (m *mockEngagementRepository) Upsert(ctx context.Context, record *engagement.StudentEngagement) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockEngagementRepository) GetByStudentID(ctx context.Context, studentID string) (*engagement.StudentEngagement, error) {
	args := m.Called(ctx, studentID)
	record, _ := args.Get(0).(*engagement.StudentEngagement)
	return record, args.Error(1)
}

func (m *mockEngagementRepository) List(ctx context.Context) ([]*engagement.StudentEngagement, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]*engagement.StudentEngagement)
	return records, args.Error(1)
}

type mockDashboardCache struct{ mock.Mock }

func (m *mockDashboardCache) Get(ctx context.Context) (*engagement.Dashboard, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).(*engagement.Dashboard)
	return d, args.Error(1)
}

func (m *mockDashboardCache) Set(ctx context.Context, d *engagement.Dashboard, ttl time.Duration) error {
	return m.Called(ctx, d, ttl).Error(0)
}

func (m *mockDashboardCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockRiskNotifier struct{ mock.Mock }

func (m *mockRiskNotifier) NotifyAtRisk(ctx context.Context, record *engagement.StudentEngagement) error {
	return m.Called(ctx, record).Error(0)
}

type mockArchiver struct{ mock.Mock }

func (m *mockArchiver) Archive(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, content, contentType)
	return args.String(0), args.Error(1)
}

type mockMentorRepository struct{ mock.Mock }

func (m *mockMentorRepository) Create(ctx context.Context, mentor *alternance.Mentor) error {
	return m.Called(ctx, mentor).Error(0)
}

func (m *mockMentorRepository) List(ctx context.Context, query *alternance.MentorQuery) ([]*alternance.Mentor, error) {
	args := m.Called(ctx, query)
	mentors, _ := args.Get(0).([]*alternance.Mentor)
	return mentors, args.Error(1)
}

func (m *mockMentorRepository) GetByID(ctx context.Context, mentorID string) (*alternance.Mentor, error) {
	args := m.Called(ctx, mentorID)
	mentor, _ := args.Get(0).(*alternance.Mentor)
	return mentor, args.Error(1)
}

func (m *mockMentorRepository) UpdateByID(ctx context.Context, mentor *alternance.Mentor) error {
	return m.Called(ctx, mentor).Error(0)
}

type mockContractRepository struct{ mock.Mock }

func (m *mockContractRepository) Create(ctx context.Context, contract *alternance.Contract) error {
	return m.Called(ctx, contract).Error(0)
}

func (m *mockContractRepository) List(ctx context.Context, query *alternance.ContractQuery) ([]*alternance.Contract, error) {
	args := m.Called(ctx, query)
	contracts, _ := args.Get(0).([]*alternance.Contract)
	return contracts, args.Error(1)
}

func (m *mockContractRepository) GetByID(ctx context.Context, contractID string) (*alternance.Contract, error) {
	args := m.Called(ctx, contractID)
	contract, _ := args.Get(0).(*alternance.Contract)
	return contract, args.Error(1)
}

func (m *mockContractRepository) UpdateByID(ctx context.Context, contract *alternance.Contract) error {
	return m.Called(ctx, contract).Error(0)
}

func (m *mockContractRepository) CountRunningByMentor(ctx context.Context, mentorID string) (int64, error) {
	args := m.Called(ctx, mentorID)
	return args.Get(0).(int64), args.Error(1)
}

type mockProspectRepository struct{ mock.Mock }

func (m *mockProspectRepository) Create(ctx context.Context, prospect *prospects.Prospect) error {
	return m.Called(ctx, prospect).Error(0)
}

func (m *mockProspectRepository) List(ctx context.Context, query *prospects.ProspectQuery) ([]*prospects.Prospect, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]*prospects.Prospect)
	return list, args.Error(1)
}

func (m *mockProspectRepository) ListAll(ctx context.Context) ([]*prospects.Prospect, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*prospects.Prospect)
	return list, args.Error(1)
}

func (m *mockProspectRepository) GetByID(ctx context.Context, prospectID string) (*prospects.Prospect, error) {
	args := m.Called(ctx, prospectID)
	p, _ := args.Get(0).(*prospects.Prospect)
	return p, args.Error(1)
}

func (m *mockProspectRepository) UpdateByID(ctx context.Context, prospect *prospects.Prospect) error {
	return m.Called(ctx, prospect).Error(0)
}

func (m *mockProspectRepository) DeleteByID(ctx context.Context, prospectID string) error {
	return m.Called(ctx, prospectID).Error(0)
}

func (m *mockProspectRepository) CreateNote(ctx context.Context, note *prospects.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockProspectRepository) ListNotes(ctx context.Context, prospectID string) ([]*prospects.Note, error) {
	args := m.Called(ctx, prospectID)
	notes, _ := args.Get(0).([]*prospects.Note)
	return notes, args.Error(1)
}

func (m *mockProspectRepository) CreateContactRequest(ctx context.Context, request *prospects.ContactRequest) error {
	return m.Called(ctx, request).Error(0)
}

func (m *mockProspectRepository) CreateNeedsAnalysis(ctx context.Context, analysis *prospects.NeedsAnalysisRequest) error {
	return m.Called(ctx, analysis).Error(0)
}

func (m *mockProspectRepository) GetNeedsAnalysis(ctx context.Context, analysisID string) (*prospects.NeedsAnalysisRequest, error) {
	args := m.Called(ctx, analysisID)
	a, _ := args.Get(0).(*prospects.NeedsAnalysisRequest)
	return a, args.Error(1)
}

func (m *mockProspectRepository) UpdateNeedsAnalysis(ctx context.Context, analysis *prospects.NeedsAnalysisRequest) error {
	return m.Called(ctx, analysis).Error(0)
}

type mockAcknowledger struct{ mock.Mock }

func (m *mockAcknowledger) AcknowledgeContactRequest(ctx context.Context, prospect *prospects.Prospect, request *prospects.ContactRequest) error {
	return m.Called(ctx, prospect, request).Error(0)
}
