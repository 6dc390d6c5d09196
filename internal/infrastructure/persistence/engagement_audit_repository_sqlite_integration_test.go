//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementSqliteRepository_Upsert(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	record := testutil.NewEngagement(90, 80)
	record.Evaluate(time.Now())
	require.NoError(t, ctx.EngagementRepo.Upsert(bg, record))

	record.AttendanceRate = 40
	record.EngagementScore = 20
	record.Evaluate(time.Now())
	require.NoError(t, ctx.EngagementRepo.Upsert(bg, record))

	fetched, err := ctx.EngagementRepo.GetByStudentID(bg, record.StudentID)
	require.NoError(t, err)
	assert.Equal(t, 40.0, fetched.AttendanceRate)
	assert.True(t, fetched.AtRisk)

	healthy := testutil.NewEngagement(95, 90)
	healthy.Evaluate(time.Now())
	require.NoError(t, ctx.EngagementRepo.Upsert(bg, healthy))

	all, err := ctx.EngagementRepo.List(bg)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	var atRisk []string
	for _, r := range all {
		if r.AtRisk {
			atRisk = append(atRisk, r.StudentID)
		}
	}
	assert.Equal(t, []string{record.StudentID}, atRisk)

	_, err = ctx.EngagementRepo.GetByStudentID(bg, uuid.NewString())
	assert.ErrorIs(t, err, engagement.ErrNotFound)
}

func TestAuditSqliteRepository(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()
	objectID := uuid.NewString()
	old := time.Now().UTC().AddDate(-2, 0, 0)

	entries := []*audit.LogEntry{
		{ID: uuid.NewString(), Action: audit.ActionCreate, LoggedAt: old, ObjectID: objectID, ObjectClass: "Prospect", Version: 1,
			Data: map[string]interface{}{"status": "lead", "sessionRegistrationCount": 0}, Username: "admin"},
		{ID: uuid.NewString(), Action: audit.ActionUpdate, LoggedAt: time.Now().UTC(), ObjectID: objectID, ObjectClass: "Prospect", Version: 2,
			Data: map[string]interface{}{"status": "qualified"}, Username: "admin"},
	}
	for _, entry := range entries {
		require.NoError(t, ctx.AuditRepo.Create(bg, entry))
	}

	history, err := ctx.AuditRepo.ListByObject(bg, "Prospect", objectID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 1, history[0].Version)
	assert.Equal(t, float64(0), history[0].Data["sessionRegistrationCount"])

	fetched, err := ctx.AuditRepo.GetByID(bg, entries[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "qualified", fetched.Data["status"])

	query := audit.NewQuery()
	query.Action = audit.ActionUpdate
	list, err := ctx.AuditRepo.List(bg, query)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	objects, err := ctx.AuditRepo.ListObjectsLoggedBefore(bg, time.Now().UTC().AddDate(-1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, []audit.ObjectRef{{ObjectClass: "Prospect", ObjectID: objectID}}, objects)

	baseline := map[string]interface{}{"status": "qualified", "sessionRegistrationCount": float64(0)}
	require.NoError(t, ctx.AuditRepo.UpdateData(bg, entries[1].ID, baseline))
	fetched, err = ctx.AuditRepo.GetByID(bg, entries[1].ID)
	require.NoError(t, err)
	assert.Equal(t, baseline, fetched.Data)
	assert.ErrorIs(t, ctx.AuditRepo.UpdateData(bg, uuid.NewString(), baseline), audit.ErrNotFound)

	purged, err := ctx.AuditRepo.DeleteOlderThan(bg, time.Now().UTC().AddDate(-1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	_, err = ctx.AuditRepo.GetByID(bg, entries[0].ID)
	assert.ErrorIs(t, err, audit.ErrNotFound)
}
