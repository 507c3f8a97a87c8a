package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/giftnest/backoffice-go/internal/domain/performance"
	"github.com/giftnest/backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type performanceRepository struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.Repository {
	return &performanceRepository{db: db}
}

// CreateEvaluation implements performance.Repository.
func (r *performanceRepository) CreateEvaluation(ctx context.Context, evaluation performance.Evaluation) (performance.Evaluation, error) {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO evaluations (
			id, employee_id, reviewer_id, period, summary, score
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		evaluation.ID, evaluation.EmployeeID, evaluation.ReviewerID,
		evaluation.Period, evaluation.Summary, evaluation.Score,
	).Scan(&evaluation.CreatedAt)

	if err != nil {
		return performance.Evaluation{}, fmt.Errorf("failed to create evaluation: %w", err)
	}

	return evaluation, nil
}

// GetEvaluation implements performance.Repository.
func (r *performanceRepository) GetEvaluation(ctx context.Context, employeeID string, period string) (*performance.Evaluation, error) {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	// Latest-wins when a period was evaluated twice.
	query := `
		SELECT id, employee_id, reviewer_id, period, summary, score, created_at
		FROM evaluations
		WHERE employee_id = $1 AND period = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var e performance.Evaluation
	err := q.QueryRow(ctx, query, employeeID, period).Scan(
		&e.ID, &e.EmployeeID, &e.ReviewerID, &e.Period, &e.Summary, &e.Score, &e.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // evaluation is optional on reports
		}
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}

	return &e, nil
}

// CreateFeedback implements performance.Repository.
func (r *performanceRepository) CreateFeedback(ctx context.Context, feedback performance.Feedback) (performance.Feedback, error) {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO feedback (
			id, employee_id, author_id, period, type, message
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		feedback.ID, feedback.EmployeeID, feedback.AuthorID,
		feedback.Period, feedback.Type, feedback.Message,
	).Scan(&feedback.CreatedAt)

	if err != nil {
		return performance.Feedback{}, fmt.Errorf("failed to create feedback: %w", err)
	}

	return feedback, nil
}

// ListFeedback implements performance.Repository.
func (r *performanceRepository) ListFeedback(ctx context.Context, employeeID string, period string) ([]performance.Feedback, error) {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, author_id, period, type, message, created_at
		FROM feedback
		WHERE employee_id = $1 AND period = $2
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	var feedbacks []performance.Feedback
	for rows.Next() {
		var f performance.Feedback
		if err := rows.Scan(
			&f.ID, &f.EmployeeID, &f.AuthorID, &f.Period, &f.Type, &f.Message, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		feedbacks = append(feedbacks, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feedback rows: %w", err)
	}

	return feedbacks, nil
}
