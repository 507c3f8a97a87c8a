package performance

import (
	"context"
)

// Repository defines data access methods for evaluations and feedback.
type Repository interface {
	CreateEvaluation(ctx context.Context, evaluation Evaluation) (Evaluation, error)

	// GetEvaluation retrieves the evaluation for an employee and period, or
	// nil if none exists. On duplicates the newest record wins.
	GetEvaluation(ctx context.Context, employeeID string, period string) (*Evaluation, error)

	CreateFeedback(ctx context.Context, feedback Feedback) (Feedback, error)

	// ListFeedback retrieves all feedback for an employee and period,
	// oldest first
	ListFeedback(ctx context.Context, employeeID string, period string) ([]Feedback, error)
}
