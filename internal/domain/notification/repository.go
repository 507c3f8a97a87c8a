package notification

import (
	"context"
)

// Repository defines the notification repository interface. Creation is
// append-only; the leave adjudicator calls Create inside the same
// transaction as the status update.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByUserID(ctx context.Context, userID string, unreadOnly bool) ([]*Notification, error)
	GetUnreadCount(ctx context.Context, userID string) (int, error)
	MarkAsRead(ctx context.Context, ids []string, userID string) error
	MarkAllAsRead(ctx context.Context, userID string) error
}
