package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/giftnest/backoffice-go/internal/domain/attendance"
	"github.com/giftnest/backoffice-go/internal/domain/leave"
	"github.com/giftnest/backoffice-go/internal/domain/user"
	"github.com/giftnest/backoffice-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLeaveRequest(t *testing.T, repo leave.LeaveRequestRepository, employeeID string, leaveDate time.Time) leave.LeaveRequest {
	t.Helper()

	created, err := repo.Create(context.Background(), leave.LeaveRequest{
		ID:            uuid.New().String(),
		EmployeeID:    employeeID,
		LeaveDate:     leaveDate,
		Shift:         attendance.ShiftMorning,
		Justification: "Medical appointment",
		Status:        leave.LeaveRequestStatusPending,
		SubmittedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)
	return created
}

func TestLeaveRequestRepository_CreateAndGetByID(t *testing.T) {
	db := testDB(t)
	defer truncateAll(t, db)
	truncateAll(t, db)

	ctx := context.Background()
	leaveRepo := postgresql.NewLeaveRequestRepository(db)

	staff := seedUser(t, db, "Tomás Rivera", "tomas@giftnest.test", user.RoleSales, nil)
	created := seedLeaveRequest(t, leaveRepo, staff.ID, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))

	retrieved, err := leaveRepo.GetByID(ctx, created.ID)

	assert.NoError(t, err)
	assert.Equal(t, created.ID, retrieved.ID)
	assert.Equal(t, staff.ID, retrieved.EmployeeID)
	assert.Equal(t, "Tomás Rivera", retrieved.EmployeeName)
	assert.Equal(t, leave.LeaveRequestStatusPending, retrieved.Status)
}

func TestLeaveRequestRepository_GetByID_NotFound(t *testing.T) {
	db := testDB(t)
	defer truncateAll(t, db)
	truncateAll(t, db)

	ctx := context.Background()
	leaveRepo := postgresql.NewLeaveRequestRepository(db)

	_, err := leaveRepo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")

	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveRequestRepository_UpdateStatus_Success(t *testing.T) {
	db := testDB(t)
	defer truncateAll(t, db)
	truncateAll(t, db)

	ctx := context.Background()
	leaveRepo := postgresql.NewLeaveRequestRepository(db)

	manager := seedUser(t, db, "Marisol Vega", "marisol@giftnest.test", user.RoleManager, nil)
	staff := seedUser(t, db, "Tomás Rivera", "tomas@giftnest.test", user.RoleSales, nil)
	created := seedLeaveRequest(t, leaveRepo, staff.ID, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))

	err := leaveRepo.UpdateStatus(ctx, created.ID, leave.LeaveRequestStatusApproved, manager.ID, time.Now().UTC(), nil)

	assert.NoError(t, err)

	updated, err := leaveRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, updated.Status)
	require.NotNil(t, updated.ReviewedBy)
	assert.Equal(t, manager.ID, *updated.ReviewedBy)
	assert.NotNil(t, updated.ReviewedAt)
}

func TestLeaveRequestRepository_UpdateStatus_AlreadyAdjudicated(t *testing.T) {
	db := testDB(t)
	defer truncateAll(t, db)
	truncateAll(t, db)

	ctx := context.Background()
	leaveRepo := postgresql.NewLeaveRequestRepository(db)

	manager := seedUser(t, db, "Marisol Vega", "marisol@giftnest.test", user.RoleManager, nil)
	staff := seedUser(t, db, "Tomás Rivera", "tomas@giftnest.test", user.RoleSales, nil)
	created := seedLeaveRequest(t, leaveRepo, staff.ID, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))

	err := leaveRepo.UpdateStatus(ctx, created.ID, leave.LeaveRequestStatusApproved, manager.ID, time.Now().UTC(), nil)
	require.NoError(t, err)

	// A second decision must not overwrite the first one.
	err = leaveRepo.UpdateStatus(ctx, created.ID, leave.LeaveRequestStatusRejected, manager.ID, time.Now().UTC(), strPtr("changed my mind"))

	assert.ErrorIs(t, err, leave.ErrInvalidStateTransition)

	current, err := leaveRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, current.Status)
}

func TestLeaveRequestRepository_ListApprovedBetween(t *testing.T) {
	db := testDB(t)
	defer truncateAll(t, db)
	truncateAll(t, db)

	ctx := context.Background()
	leaveRepo := postgresql.NewLeaveRequestRepository(db)

	manager := seedUser(t, db, "Marisol Vega", "marisol@giftnest.test", user.RoleManager, nil)
	staff := seedUser(t, db, "Tomás Rivera", "tomas@giftnest.test", user.RoleSales, nil)

	inMonth := seedLeaveRequest(t, leaveRepo, staff.ID, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))
	outOfMonth := seedLeaveRequest(t, leaveRepo, staff.ID, time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC))
	seedLeaveRequest(t, leaveRepo, staff.ID, time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC))

	require.NoError(t, leaveRepo.UpdateStatus(ctx, inMonth.ID, leave.LeaveRequestStatusApproved, manager.ID, time.Now().UTC(), nil))
	require.NoError(t, leaveRepo.UpdateStatus(ctx, outOfMonth.ID, leave.LeaveRequestStatusApproved, manager.ID, time.Now().UTC(), nil))

	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	approved, err := leaveRepo.ListApprovedBetween(ctx, staff.ID, from, from.AddDate(0, 1, 0))

	assert.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, inMonth.ID, approved[0].ID)
}

func TestLeaveRequestRepository_ListByStatus_Pending(t *testing.T) {
	db := testDB(t)
	defer truncateAll(t, db)
	truncateAll(t, db)

	ctx := context.Background()
	leaveRepo := postgresql.NewLeaveRequestRepository(db)

	manager := seedUser(t, db, "Marisol Vega", "marisol@giftnest.test", user.RoleManager, nil)
	staff := seedUser(t, db, "Tomás Rivera", "tomas@giftnest.test", user.RoleSales, nil)

	first := seedLeaveRequest(t, leaveRepo, staff.ID, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))
	second := seedLeaveRequest(t, leaveRepo, staff.ID, time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, leaveRepo.UpdateStatus(ctx, first.ID, leave.LeaveRequestStatusRejected, manager.ID, time.Now().UTC(), strPtr("short staffed")))

	pending, err := leaveRepo.ListByStatus(ctx, leave.LeaveRequestStatusPending)

	assert.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
}
