package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRequestNotFound   = errors.New("leave request not found")
	ErrInvalidStateTransition = errors.New("leave request has already been approved or rejected")
)
