package attendance

import (
	"context"
	"time"
)

// ClockEventRepository defines data access methods for the append-only scan log.
// Events are never updated or deleted.
type ClockEventRepository interface {
	// Create appends a new clock event
	Create(ctx context.Context, event ClockEvent) (ClockEvent, error)

	// GetLastEventBetween retrieves the most recent event for an employee in
	// [from, to), or nil if none exists. Drives the check-in/check-out toggle.
	GetLastEventBetween(ctx context.Context, employeeID string, from, to time.Time) (*ClockEvent, error)

	// ListByEmployeeBetween retrieves all events for an employee in [from, to),
	// ascending by timestamp
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]ClockEvent, error)

	// LockEmployeeDay serializes concurrent scans for one employee on one
	// local day. Must be called inside a transaction; the lock is released
	// at commit or rollback.
	LockEmployeeDay(ctx context.Context, employeeID string, day time.Time) error
}
