package user

import "errors"

// User domain errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrManagerAccessRequired = errors.New("manager access required")
)
