//go:build unit
// +build unit

package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/alternance"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContractService(t *testing.T) (alternance.ContractService, *mockContractRepository, *mockMentorRepository, *mockRecorder) {
	t.Helper()
	contracts := &mockContractRepository{}
	mentors := &mockMentorRepository{}
	recorder := &mockRecorder{}

	svc, err := NewContractService(contracts, mentors, recorder, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return svc, contracts, mentors, recorder
}

func TestContractService_Create(t *testing.T) {
	svc, contracts, mentors, recorder := newTestContractService(t)
	ctx := context.Background()
	mentor := testutil.NewMentor()
	contract := testutil.NewContract(mentor.ID)
	contract.ID = ""
	contract.Status = ""

	mentors.On("GetByID", ctx, mentor.ID).Return(mentor, nil)
	contracts.On("CountRunningByMentor", ctx, mentor.ID).Return(int64(2), nil)
	contracts.On("Create", ctx, contract).Return(nil)
	recorder.On("Record", ctx, audit.ActionCreate, alternance.ContractEntityClass, mock.AnythingOfType("string"), mock.Anything, "admin").Return(&audit.LogEntry{}, nil)

	created, err := svc.Create(ctx, contract, "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, alternance.ContractStatusDraft, created.Status)
	recorder.AssertExpectations(t)
}

func TestContractService_Create_MentorAtCapacity(t *testing.T) {
	svc, contracts, mentors, _ := newTestContractService(t)
	ctx := context.Background()
	mentor := testutil.NewMentor()

	mentors.On("GetByID", ctx, mentor.ID).Return(mentor, nil)
	contracts.On("CountRunningByMentor", ctx, mentor.ID).Return(int64(alternance.MaxContractsPerMentor), nil)

	_, err := svc.Create(ctx, testutil.NewContract(mentor.ID), "admin")
	assert.ErrorIs(t, err, alternance.ErrMentorUnavailable)
	contracts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContractService_Create_UnknownMentor(t *testing.T) {
	svc, _, mentors, _ := newTestContractService(t)
	ctx := context.Background()

	mentors.On("GetByID", ctx, "missing").Return(nil, fmt.Errorf("mentor with ID missing %w", alternance.ErrNotFound))

	_, err := svc.Create(ctx, testutil.NewContract("missing"), "admin")
	assert.ErrorIs(t, err, alternance.ErrNotFound)
}

func TestContractService_TransitionStatus(t *testing.T) {
	svc, contracts, mentors, recorder := newTestContractService(t)
	ctx := context.Background()
	mentor := testutil.NewMentor()
	contract := testutil.NewContract(mentor.ID)
	contract.Status = alternance.ContractStatusPendingValidation

	contracts.On("GetByID", ctx, contract.ID).Return(contract, nil)
	mentors.On("GetByID", ctx, mentor.ID).Return(mentor, nil)
	contracts.On("CountRunningByMentor", ctx, mentor.ID).Return(int64(0), nil)
	contracts.On("UpdateByID", ctx, contract).Return(nil)
	recorder.On("Record", ctx, audit.ActionUpdate, alternance.ContractEntityClass, contract.ID, mock.Anything, "admin").Return(&audit.LogEntry{}, nil)

	updated, err := svc.TransitionStatus(ctx, contract.ID, alternance.ContractStatusValidated, "admin")
	require.NoError(t, err)
	assert.Equal(t, alternance.ContractStatusValidated, updated.Status)
}

func TestContractService_TransitionStatus_Invalid(t *testing.T) {
	svc, contracts, _, _ := newTestContractService(t)
	ctx := context.Background()
	contract := testutil.NewContract("2f1c7c3e-3c5d-4c8e-9d62-2a8c1f1b0c11")
	contract.Status = alternance.ContractStatusCompleted

	contracts.On("GetByID", ctx, contract.ID).Return(contract, nil)

	_, err := svc.TransitionStatus(ctx, contract.ID, alternance.ContractStatusActive, "admin")
	assert.ErrorIs(t, err, alternance.ErrInvalidTransition)
	contracts.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything)
}

func TestContractService_TransitionStatus_WithinRunningSkipsCapacity(t *testing.T) {
	svc, contracts, mentors, recorder := newTestContractService(t)
	ctx := context.Background()
	contract := testutil.NewContract("2f1c7c3e-3c5d-4c8e-9d62-2a8c1f1b0c11")
	contract.Status = alternance.ContractStatusActive

	contracts.On("GetByID", ctx, contract.ID).Return(contract, nil)
	contracts.On("UpdateByID", ctx, contract).Return(nil)
	recorder.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	_, err := svc.TransitionStatus(ctx, contract.ID, alternance.ContractStatusSuspended, "admin")
	require.NoError(t, err)
	mentors.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestMentorService_Deactivate(t *testing.T) {
	mentors := &mockMentorRepository{}
	recorder := &mockRecorder{}
	svc, err := NewMentorService(mentors, recorder, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()
	mentor := testutil.NewMentor()

	mentors.On("GetByID", ctx, mentor.ID).Return(mentor, nil)
	mentors.On("UpdateByID", ctx, mentor).Return(nil).Once()
	recorder.On("Record", ctx, audit.ActionUpdate, alternance.MentorEntityClass, mentor.ID, mock.Anything, "admin").Return(&audit.LogEntry{}, nil).Once()

	updated, err := svc.Deactivate(ctx, mentor.ID, "admin")
	require.NoError(t, err)
	assert.False(t, updated.Active)

	// A second call is a no-op.
	_, err = svc.Deactivate(ctx, mentor.ID, "admin")
	require.NoError(t, err)
	mentors.AssertNumberOfCalls(t, "UpdateByID", 1)
}

func TestMentorService_Create_AuditFailureIsNotReturned(t *testing.T) {
	mentors := &mockMentorRepository{}
	recorder := &mockRecorder{}
	svc, err := NewMentorService(mentors, recorder, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()
	mentor := testutil.NewMentor()
	mentor.Active = false

	mentors.On("Create", ctx, mentor).Return(nil)
	recorder.On("Record", ctx, audit.ActionCreate, alternance.MentorEntityClass, mentor.ID, mock.Anything, "admin").Return(nil, fmt.Errorf("audit store unavailable"))

	created, err := svc.Create(ctx, mentor, "admin")
	require.NoError(t, err)
	assert.True(t, created.Active)
}
