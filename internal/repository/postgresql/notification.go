package postgresql

import (
	"context"
	"fmt"

	"github.com/giftnest/backoffice-go/internal/domain/notification"
	"github.com/giftnest/backoffice-go/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// Create implements notification.Repository.
func (r *notificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (
			id, user_id, type, title, message, link, is_read
		) VALUES (
			$1, $2, $3, $4, $5, $6, false
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		n.ID, n.UserID, n.Type, n.Title, n.Message, n.Link,
	).Scan(&n.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// GetByUserID implements notification.Repository.
func (r *notificationRepository) GetByUserID(ctx context.Context, userID string, unreadOnly bool) ([]*notification.Notification, error) {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, type, title, message, link, is_read, read_at, created_at
		FROM notifications
		WHERE user_id = $1
	`
	if unreadOnly {
		query += ` AND is_read = false`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*notification.Notification
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.Link,
			&n.IsRead, &n.ReadAt, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notification rows: %w", err)
	}

	return notifications, nil
}

// GetUnreadCount implements notification.Repository.
func (r *notificationRepository) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM notifications
		WHERE user_id = $1 AND is_read = false
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkAsRead implements notification.Repository.
func (r *notificationRepository) MarkAsRead(ctx context.Context, ids []string, userID string) error {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE notifications
		SET is_read = true, read_at = NOW()
		WHERE id = ANY($1) AND user_id = $2 AND is_read = false
	`, ids, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

// MarkAllAsRead implements notification.Repository.
func (r *notificationRepository) MarkAllAsRead(ctx context.Context, userID string) error {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `
		UPDATE notifications
		SET is_read = true, read_at = NOW()
		WHERE user_id = $1 AND is_read = false
	`, userID); err != nil {
		return fmt.Errorf("failed to mark all notifications as read: %w", err)
	}

	return nil
}
