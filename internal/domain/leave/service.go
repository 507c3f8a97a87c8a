package leave

import (
	"context"
)

// LeaveService defines business logic for leave adjudication
type LeaveService interface {
	// CreateRequest validates and stores a new pending request. The leave
	// date must be at least 48 hours out.
	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// UpdateStatus transitions a pending request to approved or rejected,
	// exactly once, and notifies the requesting employee in the same
	// transaction
	UpdateStatus(ctx context.Context, req UpdateLeaveRequestStatusRequest) (LeaveRequestResponse, error)

	// GetRequest retrieves a single request by ID
	GetRequest(ctx context.Context, id string) (LeaveRequestResponse, error)

	// ListMyRequests retrieves the requesting employee's own requests
	ListMyRequests(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)

	// ListPending retrieves requests awaiting adjudication
	ListPending(ctx context.Context) ([]LeaveRequestResponse, error)
}
