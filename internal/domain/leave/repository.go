package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository defines data access methods for leave requests.
type LeaveRequestRepository interface {
	// Create stores a new pending request
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a request by ID
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// UpdateStatus transitions a request out of pending. The WHERE clause
	// re-checks the pending state so a concurrent reviewer loses cleanly.
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus, reviewerID string, reviewedAt time.Time, rejectionReason *string) error

	// ListByEmployee retrieves all requests submitted by an employee,
	// newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// ListByStatus retrieves all requests in a given status, oldest first
	ListByStatus(ctx context.Context, status LeaveRequestStatus) ([]LeaveRequest, error)

	// ListApprovedBetween retrieves an employee's approved requests with a
	// leave date in [from, to). Feeds the monthly reconciler.
	ListApprovedBetween(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)
}
