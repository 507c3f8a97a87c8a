package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/giftnest/backoffice-go/internal/domain/attendance"
	"github.com/giftnest/backoffice-go/internal/domain/user"
	"github.com/giftnest/backoffice-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockEventRepository_Create_Success(t *testing.T) {
	db := testDB(t)
	defer truncateAll(t, db)
	truncateAll(t, db)

	ctx := context.Background()
	eventRepo := postgresql.NewClockEventRepository(db)

	manager := seedUser(t, db, "Marisol Vega", "marisol@giftnest.test", user.RoleManager, nil)
	staff := seedUser(t, db, "Tomás Rivera", "tomas@giftnest.test", user.RoleSales, nil)

	event := attendance.ClockEvent{
		ID:          uuid.New().String(),
		EmployeeID:  staff.ID,
		RegistrarID: manager.ID,
		Timestamp:   time.Date(2026, time.March, 2, 8, 5, 0, 0, time.UTC),
		Type:        attendance.EventCheckIn,
		Shift:       attendance.ShiftMorning,
		Status:      attendance.StatusOnTime,
	}

	created, err := eventRepo.Create(ctx, event)

	assert.NoError(t, err)
	assert.Equal(t, event.ID, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestClockEventRepository_GetLastEventBetween_Empty(t *testing.T) {
	db := testDB(t)
	defer truncateAll(t, db)
	truncateAll(t, db)

	ctx := context.Background()
	eventRepo := postgresql.NewClockEventRepository(db)

	staff := seedUser(t, db, "Tomás Rivera", "tomas@giftnest.test", user.RoleSales, nil)

	from := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	last, err := eventRepo.GetLastEventBetween(ctx, staff.ID, from, from.Add(24*time.Hour))

	assert.NoError(t, err)
	assert.Nil(t, last)
}

func TestClockEventRepository_GetLastEventBetween_ReturnsLatest(t *testing.T) {
	db := testDB(t)
	defer truncateAll(t, db)
	truncateAll(t, db)

	ctx := context.Background()
	eventRepo := postgresql.NewClockEventRepository(db)

	manager := seedUser(t, db, "Marisol Vega", "marisol@giftnest.test", user.RoleManager, nil)
	staff := seedUser(t, db, "Tomás Rivera", "tomas@giftnest.test", user.RoleSales, nil)

	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	checkIn := attendance.ClockEvent{
		ID:          uuid.New().String(),
		EmployeeID:  staff.ID,
		RegistrarID: manager.ID,
		Timestamp:   day.Add(8 * time.Hour),
		Type:        attendance.EventCheckIn,
		Shift:       attendance.ShiftMorning,
		Status:      attendance.StatusOnTime,
	}
	checkOut := attendance.ClockEvent{
		ID:          uuid.New().String(),
		EmployeeID:  staff.ID,
		RegistrarID: manager.ID,
		Timestamp:   day.Add(12 * time.Hour),
		Type:        attendance.EventCheckOut,
		Shift:       attendance.ShiftMorning,
		Status:      attendance.StatusOnTime,
	}

	_, err := eventRepo.Create(ctx, checkIn)
	require.NoError(t, err)
	_, err = eventRepo.Create(ctx, checkOut)
	require.NoError(t, err)

	last, err := eventRepo.GetLastEventBetween(ctx, staff.ID, day, day.Add(24*time.Hour))

	assert.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, checkOut.ID, last.ID)
	assert.Equal(t, attendance.EventCheckOut, last.Type)
}

func TestClockEventRepository_ListByEmployeeBetween_Ascending(t *testing.T) {
	db := testDB(t)
	defer truncateAll(t, db)
	truncateAll(t, db)

	ctx := context.Background()
	eventRepo := postgresql.NewClockEventRepository(db)

	manager := seedUser(t, db, "Marisol Vega", "marisol@giftnest.test", user.RoleManager, nil)
	staff := seedUser(t, db, "Tomás Rivera", "tomas@giftnest.test", user.RoleSales, nil)

	monthStart := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	timestamps := []time.Time{
		monthStart.AddDate(0, 0, 3).Add(13 * time.Hour),
		monthStart.AddDate(0, 0, 1).Add(8 * time.Hour),
		monthStart.AddDate(0, 0, 2).Add(8 * time.Hour),
	}
	for _, ts := range timestamps {
		_, err := eventRepo.Create(ctx, attendance.ClockEvent{
			ID:          uuid.New().String(),
			EmployeeID:  staff.ID,
			RegistrarID: manager.ID,
			Timestamp:   ts,
			Type:        attendance.EventCheckIn,
			Shift:       attendance.ShiftMorning,
			Status:      attendance.StatusOnTime,
		})
		require.NoError(t, err)
	}

	events, err := eventRepo.ListByEmployeeBetween(ctx, staff.ID, monthStart, monthStart.AddDate(0, 1, 0))

	assert.NoError(t, err)
	require.Len(t, events, 3)
	for i := 1; i < len(events); i++ {
		assert.True(t, events[i].Timestamp.After(events[i-1].Timestamp))
	}
}

func TestClockEventRepository_LockEmployeeDay_InsideTransaction(t *testing.T) {
	db := testDB(t)
	defer truncateAll(t, db)
	truncateAll(t, db)

	ctx := context.Background()
	staff := seedUser(t, db, "Tomás Rivera", "tomas@giftnest.test", user.RoleSales, nil)

	err := postgresql.WithTransaction(ctx, db, func(txCtx context.Context, _ pgx.Tx) error {
		eventRepo := postgresql.NewClockEventRepository(db)
		return eventRepo.LockEmployeeDay(txCtx, staff.ID, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC))
	})

	assert.NoError(t, err)
}
