package leave

import (
	"github.com/giftnest/backoffice-go/internal/domain/attendance"
	"github.com/giftnest/backoffice-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	EmployeeID    string  `json:"-"`
	LeaveDate     string  `json:"leave_date"`
	Shift         string  `json:"shift"`
	Justification string  `json:"justification"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.LeaveDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_date",
			Message: "leave_date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Shift, []string{string(attendance.ShiftMorning), string(attendance.ShiftAfternoon)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be morning or afternoon",
		})
	}

	if validator.IsEmpty(r.Justification) {
		errs = append(errs, validator.ValidationError{
			Field:   "justification",
			Message: "justification is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveRequestStatusRequest struct {
	ID              string  `json:"-"`
	ReviewerID      string  `json:"-"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

func (r *UpdateLeaveRequestStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(LeaveRequestStatusApproved), string(LeaveRequestStatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be approved or rejected",
		})
	}

	if r.Status == string(LeaveRequestStatusRejected) && (r.RejectionReason == nil || validator.IsEmpty(*r.RejectionReason)) {
		errs = append(errs, validator.ValidationError{
			Field:   "rejection_reason",
			Message: "rejection_reason is required when rejecting",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	LeaveDate       string  `json:"leave_date"`
	Shift           string  `json:"shift"`
	Justification   string  `json:"justification"`
	AttachmentURL   *string `json:"attachment_url,omitempty"`
	Status          string  `json:"status"`
	ReviewedBy      *string `json:"reviewed_by,omitempty"`
	ReviewedAt      *string `json:"reviewed_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	SubmittedAt     string  `json:"submitted_at"`
}
