package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giftnest/backoffice-go/internal/domain/attendance"
	"github.com/giftnest/backoffice-go/internal/domain/leave"
	"github.com/giftnest/backoffice-go/internal/domain/notification"
	"github.com/giftnest/backoffice-go/internal/domain/user"
	"github.com/giftnest/backoffice-go/internal/pkg/clock"
	"github.com/giftnest/backoffice-go/internal/pkg/database"
	"github.com/giftnest/backoffice-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	tx            database.TxRunner
	requests      leave.LeaveRequestRepository
	users         user.UserRepository
	notifications notification.Repository

	clock       *clock.Clock
	frontendURL string
}

func NewLeaveService(
	tx database.TxRunner,
	requestRepo leave.LeaveRequestRepository,
	userRepo user.UserRepository,
	notificationRepo notification.Repository,
	clk *clock.Clock,
	frontendURL string,
) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:            tx,
		requests:      requestRepo,
		users:         userRepo,
		notifications: notificationRepo,
		clock:         clk,
		frontendURL:   frontendURL,
	}
}

// CreateRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.users.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	day, _ := validator.IsValidDate(req.LeaveDate)
	// Anchor the leave day in the app timezone before the notice check.
	loc := s.clock.Location()
	leaveDate := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)

	now := s.clock.Now()
	if leaveDate.Sub(now) < leave.MinNotice {
		return leave.LeaveRequestResponse{}, validator.ValidationErrors{{
			Field:   "leave_date",
			Message: "leave_date must be at least 48 hours from now",
		}}
	}

	request := leave.LeaveRequest{
		ID:            uuid.New().String(),
		EmployeeID:    emp.ID,
		EmployeeName:  emp.FullName,
		LeaveDate:     leaveDate,
		Shift:         attendance.Shift(req.Shift),
		Justification: req.Justification,
		AttachmentURL: req.AttachmentURL,
		Status:        leave.LeaveRequestStatusPending,
		SubmittedAt:   now,
	}

	created, err := s.requests.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	created.EmployeeName = emp.FullName

	return mapLeaveRequestToResponse(created), nil
}

// UpdateStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateLeaveRequestStatusRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.requests.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.IsTerminal() {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidStateTransition
	}

	status := leave.LeaveRequestStatus(req.Status)
	reviewedAt := s.clock.Now()

	// Status flip and notification commit together so the employee is
	// notified exactly once per transition.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requests.UpdateStatus(txCtx, request.ID, status, req.ReviewerID, reviewedAt, req.RejectionReason); err != nil {
			return err
		}

		return s.notifications.Create(txCtx, buildStatusNotification(request, status, req.RejectionReason, s.frontendURL))
	})
	if err != nil {
		if errors.Is(err, leave.ErrInvalidStateTransition) {
			return leave.LeaveRequestResponse{}, leave.ErrInvalidStateTransition
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	request.Status = status
	request.ReviewedBy = &req.ReviewerID
	request.ReviewedAt = &reviewedAt
	request.RejectionReason = req.RejectionReason

	return mapLeaveRequestToResponse(request), nil
}

// GetRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return mapLeaveRequestToResponse(request), nil
}

// ListMyRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMyRequests(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.requests.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return mapLeaveRequestsToResponses(requests), nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.requests.ListByStatus(ctx, leave.LeaveRequestStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}

	return mapLeaveRequestsToResponses(requests), nil
}

func buildStatusNotification(request leave.LeaveRequest, status leave.LeaveRequestStatus, rejectionReason *string, frontendURL string) *notification.Notification {
	date := request.LeaveDate.Format("2006-01-02")

	n := &notification.Notification{
		ID:     uuid.New().String(),
		UserID: request.EmployeeID,
		Link:   fmt.Sprintf("%s/leave-requests/%s", frontendURL, request.ID),
	}

	if status == leave.LeaveRequestStatusApproved {
		n.Type = notification.TypeLeaveApproved
		n.Title = "Leave request approved"
		n.Message = fmt.Sprintf("Your leave request for %s (%s shift) has been approved.", date, request.Shift)
		return n
	}

	n.Type = notification.TypeLeaveRejected
	n.Title = "Leave request rejected"
	n.Message = fmt.Sprintf("Your leave request for %s (%s shift) has been rejected.", date, request.Shift)
	if rejectionReason != nil {
		n.Message += " Reason: " + *rejectionReason
	}
	return n
}

func mapLeaveRequestToResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	var reviewedAt *string
	if request.ReviewedAt != nil {
		v := request.ReviewedAt.Format(time.RFC3339)
		reviewedAt = &v
	}

	return leave.LeaveRequestResponse{
		ID:              request.ID,
		EmployeeID:      request.EmployeeID,
		EmployeeName:    request.EmployeeName,
		LeaveDate:       request.LeaveDate.Format("2006-01-02"),
		Shift:           string(request.Shift),
		Justification:   request.Justification,
		AttachmentURL:   request.AttachmentURL,
		Status:          string(request.Status),
		ReviewedBy:      request.ReviewedBy,
		ReviewedAt:      reviewedAt,
		RejectionReason: request.RejectionReason,
		SubmittedAt:     request.SubmittedAt.Format(time.RFC3339),
	}
}

func mapLeaveRequestsToResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapLeaveRequestToResponse(request))
	}
	return responses
}
