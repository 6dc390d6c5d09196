//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/alternance"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/identity"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/cache"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProspectLifecycle_IsAudited(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	prospect := testutil.NewProspect()
	_, err := services.ProspectService.Create(ctx, prospect, "admin")
	require.NoError(t, err)

	prospect.Status = prospects.StatusQualified
	prospect.Priority = prospects.PriorityHigh
	_, err = services.ProspectService.Update(ctx, prospect, "admin")
	require.NoError(t, err)

	history, err := services.AuditService.History(ctx, prospects.EntityClass, prospect.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	latest := history[0]
	assert.Equal(t, audit.ActionUpdate, latest.Entry.Action)
	assert.Equal(t, 2, latest.Entry.Version)
	assert.Equal(t, "admin", latest.Entry.Username)
	require.Len(t, latest.Changes, 2)
	assert.Equal(t, "priority", latest.Changes[0].Field)
	assert.Equal(t, "Priorité", latest.Changes[0].Label)
	assert.Equal(t, "Moyenne", latest.Changes[0].OldDisplay)
	assert.Equal(t, "Haute", latest.Changes[0].NewDisplay)
	assert.Equal(t, "status", latest.Changes[1].Field)
	assert.Equal(t, "Qualifié", latest.Changes[1].NewDisplay)
	assert.Equal(t, audit.ChangeModified, latest.Changes[1].ChangeType)

	assert.Equal(t, audit.ActionCreate, history[1].Entry.Action)
	assert.Equal(t, 1, history[1].Entry.Version)

	// Saving identical values records nothing.
	_, err = services.ProspectService.Update(ctx, prospect, "admin")
	require.NoError(t, err)
	history, err = services.AuditService.History(ctx, prospects.EntityClass, prospect.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	require.NoError(t, services.ProspectService.Delete(ctx, prospect.ID, "admin"))
	history, err = services.AuditService.History(ctx, prospects.EntityClass, prospect.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, audit.ActionRemove, history[0].Entry.Action)
	assert.Empty(t, history[0].Changes)

	entry, err := services.AuditService.Get(ctx, history[1].Entry.ID)
	require.NoError(t, err)
	assert.Len(t, entry.Changes, 2)
}

func TestProspectActivity_NotesAndRequests(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	prospect, err := services.ProspectService.Create(ctx, testutil.NewProspect(), "admin")
	require.NoError(t, err)

	public := testutil.NewNote(prospect.ID, "author-1")
	_, err = services.ActivityService.AddNote(ctx, public, "admin")
	require.NoError(t, err)
	private := testutil.NewNote(prospect.ID, "author-1")
	private.Private = true
	_, err = services.ActivityService.AddNote(ctx, private, "admin")
	require.NoError(t, err)

	notes, err := services.ActivityService.ListNotes(ctx, prospect.ID, "someone-else")
	require.NoError(t, err)
	assert.Len(t, notes, 1)
	notes, err = services.ActivityService.ListNotes(ctx, prospect.ID, "author-1")
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	_, err = services.ActivityService.AddContactRequest(ctx, &prospects.ContactRequest{
		ProspectID: prospect.ID,
		Type:       prospects.ContactTypeQuote,
		Subject:    "Devis formation",
	}, "admin")
	require.NoError(t, err)

	analysis, err := services.ActivityService.AddNeedsAnalysis(ctx, &prospects.NeedsAnalysisRequest{
		ProspectID: prospect.ID,
		Type:       prospects.AnalysisTypeCompany,
	}, "admin")
	require.NoError(t, err)

	_, err = services.ActivityService.CompleteNeedsAnalysis(ctx, prospect.ID, analysis.ID, "admin")
	require.NoError(t, err)

	stored, err := services.ProspectService.Get(ctx, prospect.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastContactDate)
	require.Len(t, stored.ContactRequests, 1)
	require.Len(t, stored.NeedsAnalyses, 1)
	assert.True(t, stored.NeedsAnalyses[0].Completed)
	// lead 10 + quote 50 + completed analysis 60 (+10 when the email domain is professional)
	assert.GreaterOrEqual(t, stored.LeadScore(), 120)

	_, err = services.ActivityService.CompleteNeedsAnalysis(ctx, "2f1c7c3e-3c5d-4c8e-9d62-2a8c1f1b0c11", analysis.ID, "admin")
	assert.ErrorIs(t, err, prospects.ErrNotFound)
}

func TestContractService_MentorCapacity(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	mentor, err := services.MentorService.Create(ctx, testutil.NewMentor(), "admin")
	require.NoError(t, err)

	for i := 0; i < alternance.MaxContractsPerMentor; i++ {
		contract, err := services.ContractService.Create(ctx, testutil.NewContract(mentor.ID), "admin")
		require.NoError(t, err)
		for _, status := range []string{alternance.ContractStatusPendingValidation, alternance.ContractStatusValidated, alternance.ContractStatusActive} {
			_, err = services.ContractService.TransitionStatus(ctx, contract.ID, status, "admin")
			require.NoError(t, err)
		}
	}

	_, err = services.ContractService.Create(ctx, testutil.NewContract(mentor.ID), "admin")
	assert.ErrorIs(t, err, alternance.ErrMentorUnavailable)

	contracts, err := services.ContractService.List(ctx, &alternance.ContractQuery{MentorID: mentor.ID})
	require.NoError(t, err)
	require.Len(t, contracts, alternance.MaxContractsPerMentor)

	_, err = services.ContractService.TransitionStatus(ctx, contracts[0].ID, alternance.ContractStatusDraft, "admin")
	assert.ErrorIs(t, err, alternance.ErrInvalidTransition)

	_, err = services.ContractService.TransitionStatus(ctx, contracts[0].ID, alternance.ContractStatusCompleted, "admin")
	require.NoError(t, err)

	_, err = services.MentorService.Deactivate(ctx, mentor.ID, "admin")
	require.NoError(t, err)
	_, err = services.ContractService.Create(ctx, testutil.NewContract(mentor.ID), "admin")
	assert.ErrorIs(t, err, alternance.ErrMentorUnavailable)

	history, err := services.AuditService.History(ctx, alternance.MentorEntityClass, mentor.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Len(t, history[0].Changes, 1)
	assert.Equal(t, "Non", history[0].Changes[0].NewDisplay)
}

func TestEngagementService_DashboardAndExport(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.EngagementService.UpsertRecord(ctx, testutil.NewEngagement(95, 90), "teacher")
	require.NoError(t, err)
	atRisk, err := services.EngagementService.UpsertRecord(ctx, testutil.NewEngagement(40, 30), "teacher")
	require.NoError(t, err)
	assert.True(t, atRisk.AtRisk)

	d, err := services.EngagementService.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Report.TotalStudents)
	assert.Equal(t, 1, d.Report.AtRiskCount)
	require.Len(t, d.AtRisk, 1)
	assert.True(t, services.Redis.Exists(cache.DashboardKey))

	// A new record invalidates the cached dashboard.
	_, err = services.EngagementService.UpsertRecord(ctx, testutil.NewEngagement(80, 80), "teacher")
	require.NoError(t, err)
	assert.False(t, services.Redis.Exists(cache.DashboardKey))

	d, err = services.EngagementService.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Report.TotalStudents)

	file, err := services.EngagementService.Export(ctx, engagement.ExportFormatCSV)
	require.NoError(t, err)
	assert.Contains(t, file.Filename, ".csv")
	assert.NotEmpty(t, file.Content)

	_, err = services.EngagementService.Export(ctx, "docx")
	assert.ErrorIs(t, err, engagement.ErrUnsupportedFormat)

	summary, err := services.DashboardService.Summary(ctx, &identity.Principal{ID: atRisk.StudentID, Roles: []string{identity.RoleStudent}})
	require.NoError(t, err)
	require.NotNil(t, summary.EngagementRecord)
	assert.Equal(t, atRisk.StudentID, summary.EngagementRecord.StudentID)

	summary, err = services.DashboardService.Summary(ctx, &identity.Principal{ID: "admin", Roles: []string{identity.RoleAdmin}})
	require.NoError(t, err)
	require.NotNil(t, summary.ProspectStatistics)
	require.NotNil(t, summary.Engagement)
}

func TestAuditService_Purge(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.MentorService.Create(ctx, testutil.NewMentor(), "admin")
	require.NoError(t, err)

	deleted, err := services.AuditService.Purge(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = services.AuditService.Purge(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestAuditService_PartialPurgeKeepsFullState(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	repo := services.DBContext.AuditRepo
	objectID := uuid.NewString()
	twoYearsAgo := time.Now().UTC().AddDate(-2, 0, 0)

	entries := []*audit.LogEntry{
		{ID: uuid.NewString(), Action: audit.ActionCreate, LoggedAt: twoYearsAgo, ObjectID: objectID, ObjectClass: "Mentor", Version: 1,
			Data: map[string]interface{}{"email": "paul.durand@acme.fr", "companyName": "Acme"}, Username: "admin"},
		{ID: uuid.NewString(), Action: audit.ActionUpdate, LoggedAt: time.Now().UTC().Add(-time.Hour), ObjectID: objectID, ObjectClass: "Mentor", Version: 2,
			Data: map[string]interface{}{"companyName": "Acme SAS"}, Username: "admin"},
	}
	for _, entry := range entries {
		require.NoError(t, repo.Create(ctx, entry))
	}

	deleted, err := services.AuditService.Purge(ctx, time.Now().UTC().AddDate(-1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	entry, err := services.AuditService.Record(ctx, audit.ActionUpdate, "Mentor", objectID, map[string]interface{}{
		"email":       "paul.durand@acme.fr",
		"companyName": "Acme SAS",
	}, "admin")
	require.NoError(t, err)
	assert.Nil(t, entry)

	history, err := services.AuditService.History(ctx, "Mentor", objectID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, map[string]interface{}{"email": "paul.durand@acme.fr", "companyName": "Acme SAS"}, history[0].Entry.Data)
}
