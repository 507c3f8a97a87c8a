package leave

import (
	"time"

	"github.com/giftnest/backoffice-go/internal/domain/attendance"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// MinNotice is how far ahead of the leave date a request must be submitted.
const MinNotice = 48 * time.Hour

// LeaveRequest entity
type LeaveRequest struct {
	ID            string
	EmployeeID    string
	EmployeeName  string
	LeaveDate     time.Time
	Shift         attendance.Shift
	Justification string
	AttachmentURL *string

	Status          LeaveRequestStatus
	ReviewedBy      *string
	ReviewedAt      *time.Time
	RejectionReason *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsTerminal reports whether the request has already been adjudicated.
func (r *LeaveRequest) IsTerminal() bool {
	return r.Status == LeaveRequestStatusApproved || r.Status == LeaveRequestStatusRejected
}
