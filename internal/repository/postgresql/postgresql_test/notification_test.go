package postgresql_test

import (
	"context"
	"testing"

	"github.com/giftnest/backoffice-go/internal/domain/notification"
	"github.com/giftnest/backoffice-go/internal/domain/user"
	"github.com/giftnest/backoffice-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNotification(t *testing.T, repo notification.Repository, userID string) *notification.Notification {
	t.Helper()

	n := &notification.Notification{
		ID:      uuid.New().String(),
		UserID:  userID,
		Type:    notification.TypeLeaveApproved,
		Title:   "Leave request approved",
		Message: "Your leave request for March 10 was approved.",
	}
	require.NoError(t, repo.Create(context.Background(), n))
	return n
}

func TestNotificationRepository_CreateAndList(t *testing.T) {
	db := testDB(t)
	defer truncateAll(t, db)
	truncateAll(t, db)

	ctx := context.Background()
	notificationRepo := postgresql.NewNotificationRepository(db)

	staff := seedUser(t, db, "Tomás Rivera", "tomas@giftnest.test", user.RoleSales, nil)
	created := seedNotification(t, notificationRepo, staff.ID)

	notifications, err := notificationRepo.GetByUserID(ctx, staff.ID, false)

	assert.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, created.ID, notifications[0].ID)
	assert.False(t, notifications[0].IsRead)
	assert.Nil(t, notifications[0].ReadAt)
}

func TestNotificationRepository_UnreadCount(t *testing.T) {
	db := testDB(t)
	defer truncateAll(t, db)
	truncateAll(t, db)

	ctx := context.Background()
	notificationRepo := postgresql.NewNotificationRepository(db)

	staff := seedUser(t, db, "Tomás Rivera", "tomas@giftnest.test", user.RoleSales, nil)
	seedNotification(t, notificationRepo, staff.ID)
	seedNotification(t, notificationRepo, staff.ID)

	count, err := notificationRepo.GetUnreadCount(ctx, staff.ID)

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNotificationRepository_MarkAsRead_Success(t *testing.T) {
	db := testDB(t)
	defer truncateAll(t, db)
	truncateAll(t, db)

	ctx := context.Background()
	notificationRepo := postgresql.NewNotificationRepository(db)

	staff := seedUser(t, db, "Tomás Rivera", "tomas@giftnest.test", user.RoleSales, nil)
	first := seedNotification(t, notificationRepo, staff.ID)
	seedNotification(t, notificationRepo, staff.ID)

	err := notificationRepo.MarkAsRead(ctx, []string{first.ID}, staff.ID)

	assert.NoError(t, err)

	count, err := notificationRepo.GetUnreadCount(ctx, staff.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNotificationRepository_MarkAsRead_WrongUser(t *testing.T) {
	db := testDB(t)
	defer truncateAll(t, db)
	truncateAll(t, db)

	ctx := context.Background()
	notificationRepo := postgresql.NewNotificationRepository(db)

	staff := seedUser(t, db, "Tomás Rivera", "tomas@giftnest.test", user.RoleSales, nil)
	other := seedUser(t, db, "Lucía Herrera", "lucia@giftnest.test", user.RoleDesigner, nil)
	n := seedNotification(t, notificationRepo, staff.ID)

	// Another user cannot mark someone else's notifications.
	err := notificationRepo.MarkAsRead(ctx, []string{n.ID}, other.ID)

	assert.ErrorIs(t, err, notification.ErrNotificationNotFound)
}

func TestNotificationRepository_MarkAllAsRead(t *testing.T) {
	db := testDB(t)
	defer truncateAll(t, db)
	truncateAll(t, db)

	ctx := context.Background()
	notificationRepo := postgresql.NewNotificationRepository(db)

	staff := seedUser(t, db, "Tomás Rivera", "tomas@giftnest.test", user.RoleSales, nil)
	seedNotification(t, notificationRepo, staff.ID)
	seedNotification(t, notificationRepo, staff.ID)
	seedNotification(t, notificationRepo, staff.ID)

	err := notificationRepo.MarkAllAsRead(ctx, staff.ID)

	assert.NoError(t, err)

	count, err := notificationRepo.GetUnreadCount(ctx, staff.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
