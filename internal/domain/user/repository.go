package user

import "context"

// UserRepository defines data access methods for the shared users table.
type UserRepository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email, used during login
	GetByEmail(ctx context.Context, email string) (User, error)

	// ListEmployees retrieves all users holding a staff role
	ListEmployees(ctx context.Context) ([]User, error)
}
