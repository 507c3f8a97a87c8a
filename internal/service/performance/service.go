package performance

import (
	"context"
	"fmt"

	"github.com/giftnest/backoffice-go/internal/domain/performance"
	"github.com/giftnest/backoffice-go/internal/domain/user"
	"github.com/google/uuid"
)

// Service stores manager-submitted evaluations and feedback. Both are
// scoped to a period label produced by report.PeriodLabel.
type Service struct {
	repo  performance.Repository
	users user.UserRepository
}

func NewPerformanceService(repo performance.Repository, userRepo user.UserRepository) *Service {
	return &Service{repo: repo, users: userRepo}
}

func (s *Service) CreateEvaluation(ctx context.Context, req performance.CreateEvaluationRequest) (performance.Evaluation, error) {
	if err := req.Validate(); err != nil {
		return performance.Evaluation{}, err
	}

	if _, err := s.users.GetByID(ctx, req.EmployeeID); err != nil {
		return performance.Evaluation{}, fmt.Errorf("failed to get employee: %w", err)
	}

	evaluation := performance.Evaluation{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		ReviewerID: req.ReviewerID,
		Period:     req.Period,
		Summary:    req.Summary,
		Score:      req.Score,
	}

	created, err := s.repo.CreateEvaluation(ctx, evaluation)
	if err != nil {
		return performance.Evaluation{}, fmt.Errorf("failed to create evaluation: %w", err)
	}

	return created, nil
}

func (s *Service) CreateFeedback(ctx context.Context, req performance.CreateFeedbackRequest) (performance.Feedback, error) {
	if err := req.Validate(); err != nil {
		return performance.Feedback{}, err
	}

	if _, err := s.users.GetByID(ctx, req.EmployeeID); err != nil {
		return performance.Feedback{}, fmt.Errorf("failed to get employee: %w", err)
	}

	feedback := performance.Feedback{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		AuthorID:   req.AuthorID,
		Period:     req.Period,
		Type:       performance.FeedbackType(req.Type),
		Message:    req.Message,
	}

	created, err := s.repo.CreateFeedback(ctx, feedback)
	if err != nil {
		return performance.Feedback{}, fmt.Errorf("failed to create feedback: %w", err)
	}

	return created, nil
}
