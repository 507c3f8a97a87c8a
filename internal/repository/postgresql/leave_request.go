package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giftnest/backoffice-go/internal/domain/leave"
	"github.com/giftnest/backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, u.full_name, lr.leave_date, lr.shift, lr.justification,
	lr.attachment_url, lr.status, lr.reviewed_by, lr.reviewed_at, lr.rejection_reason,
	lr.submitted_at, lr.created_at, lr.updated_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.EmployeeName, &lr.LeaveDate, &lr.Shift,
		&lr.Justification, &lr.AttachmentURL, &lr.Status, &lr.ReviewedBy,
		&lr.ReviewedAt, &lr.RejectionReason, &lr.SubmittedAt, &lr.CreatedAt, &lr.UpdatedAt,
	)
	return lr, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_date, shift, justification, attachment_url,
			status, submitted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID,
		request.EmployeeID,
		request.LeaveDate,
		request.Shift,
		request.Justification,
		request.AttachmentURL,
		request.Status,
		request.SubmittedAt,
	).Scan(&request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN users u ON u.id = lr.employee_id
		WHERE lr.id = $1
	`, leaveRequestColumns)

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return lr, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus, reviewerID string, reviewedAt time.Time, rejectionReason *string) error {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1,
			reviewed_by = $2,
			reviewed_at = $3,
			rejection_reason = $4,
			updated_at = NOW()
		WHERE id = $5
		  AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, status, reviewerID, reviewedAt, rejectionReason, id)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}

	// Zero rows means the request was adjudicated by someone else first.
	if tag.RowsAffected() == 0 {
		return leave.ErrInvalidStateTransition
	}

	return nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN users u ON u.id = lr.employee_id
		WHERE lr.employee_id = $1
		ORDER BY lr.submitted_at DESC
	`, leaveRequestColumns)

	return r.queryMany(ctx, q, query, employeeID)
}

// ListByStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByStatus(ctx context.Context, status leave.LeaveRequestStatus) ([]leave.LeaveRequest, error) {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN users u ON u.id = lr.employee_id
		WHERE lr.status = $1
		ORDER BY lr.submitted_at ASC
	`, leaveRequestColumns)

	return r.queryMany(ctx, q, query, status)
}

// ListApprovedBetween implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListApprovedBetween(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN users u ON u.id = lr.employee_id
		WHERE lr.employee_id = $1
		  AND lr.status = 'approved'
		  AND lr.leave_date >= $2::date
		  AND lr.leave_date < $3::date
		ORDER BY lr.leave_date ASC
	`, leaveRequestColumns)

	// leave_date is a DATE; compare against the local calendar dates of the
	// window bounds, not the underlying instants, or a leave on the 1st of
	// the month slips out of the window in timezones behind UTC.
	return r.queryMany(ctx, q, query, employeeID, from.Format("2006-01-02"), to.Format("2006-01-02"))
}

func (r *leaveRequestRepository) queryMany(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		requests = append(requests, lr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave request rows: %w", err)
	}

	return requests, nil
}
