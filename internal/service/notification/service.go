package notification

import (
	"context"
	"fmt"

	"github.com/giftnest/backoffice-go/internal/domain/notification"
)

// Service exposes the notification inbox backing the back-office bell icon.
type Service struct {
	repo notification.Repository
}

func NewNotificationService(repo notification.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID string, unreadOnly bool) ([]*notification.Notification, error) {
	notifications, err := s.repo.GetByUserID(ctx, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := s.repo.GetUnreadCount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (s *Service) MarkAsRead(ctx context.Context, userID string, ids []string) error {
	if len(ids) == 0 {
		return s.repo.MarkAllAsRead(ctx, userID)
	}
	return s.repo.MarkAsRead(ctx, ids, userID)
}
