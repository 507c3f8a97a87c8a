package response

import (
	"errors"
	"net/http"

	"github.com/giftnest/backoffice-go/internal/domain/attendance"
	"github.com/giftnest/backoffice-go/internal/domain/auth"
	"github.com/giftnest/backoffice-go/internal/domain/leave"
	"github.com/giftnest/backoffice-go/internal/domain/notification"
	"github.com/giftnest/backoffice-go/internal/domain/user"
	"github.com/giftnest/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidScanTarget):
		BadRequest(w, "Scanned badge does not belong to an employee", nil)
	case errors.Is(err, attendance.ErrInvalidPeriod):
		BadRequest(w, "Invalid report period", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidStateTransition):
		Conflict(w, "Leave request has already been approved or rejected")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default: store failures and everything unexpected
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
