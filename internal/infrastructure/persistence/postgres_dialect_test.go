//go:build unit
// +build unit

package persistence

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/alternance"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestContractRepository_CountRunningByMentor_Postgres(t *testing.T) {
	db, mock := newMockPostgres(t)
	repo, err := NewGormContractRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	mentorID := "0b6f8c1e-3c1a-4d2b-9a57-1f2d3c4b5a69"
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "alternance_contracts" WHERE mentor_id = $1 AND status IN ($2,$3,$4)`)).
		WithArgs(mentorID, alternance.ContractStatusValidated, alternance.ContractStatusActive, alternance.ContractStatusSuspended).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountRunningByMentor(context.Background(), mentorID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_DeleteOlderThan_Postgres(t *testing.T) {
	db, mock := newMockPostgres(t)
	repo, err := NewGormAuditRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	before := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "audit_logs" WHERE logged_at < $1`)).
		WithArgs(before).
		WillReturnResult(sqlmock.NewResult(0, 7))

	purged, err := repo.DeleteOlderThan(context.Background(), before)
	require.NoError(t, err)
	assert.Equal(t, int64(7), purged)
	assert.NoError(t, mock.ExpectationsWereMet())
}
