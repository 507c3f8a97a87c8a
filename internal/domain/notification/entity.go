package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeLeaveApproved NotificationType = "leave_approved"
	TypeLeaveRejected NotificationType = "leave_rejected"
)

// Notification represents a notification entity
type Notification struct {
	ID        string
	UserID    string
	Type      NotificationType
	Title     string
	Message   string
	Link      string
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}
