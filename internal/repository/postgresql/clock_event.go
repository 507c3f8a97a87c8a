package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giftnest/backoffice-go/internal/domain/attendance"
	"github.com/giftnest/backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type clockEventRepository struct {
	db *database.DB
}

func NewClockEventRepository(db *database.DB) attendance.ClockEventRepository {
	return &clockEventRepository{db: db}
}

// Create implements attendance.ClockEventRepository.
func (r *clockEventRepository) Create(ctx context.Context, event attendance.ClockEvent) (attendance.ClockEvent, error) {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clock_events (
			id, employee_id, registrar_id, timestamp, type, shift, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		event.ID,
		event.EmployeeID,
		event.RegistrarID,
		event.Timestamp,
		event.Type,
		event.Shift,
		event.Status,
	).Scan(&event.CreatedAt)

	if err != nil {
		return attendance.ClockEvent{}, fmt.Errorf("failed to create clock event: %w", err)
	}

	return event, nil
}

// GetLastEventBetween implements attendance.ClockEventRepository.
func (r *clockEventRepository) GetLastEventBetween(ctx context.Context, employeeID string, from, to time.Time) (*attendance.ClockEvent, error) {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, registrar_id, timestamp, type, shift, status, created_at
		FROM clock_events
		WHERE employee_id = $1
		  AND timestamp >= $2
		  AND timestamp < $3
		ORDER BY timestamp DESC, created_at DESC
		LIMIT 1
	`

	var event attendance.ClockEvent
	err := q.QueryRow(ctx, query, employeeID, from, to).Scan(
		&event.ID, &event.EmployeeID, &event.RegistrarID, &event.Timestamp,
		&event.Type, &event.Shift, &event.Status, &event.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no scan yet in this window
		}
		return nil, fmt.Errorf("failed to get last clock event: %w", err)
	}

	return &event, nil
}

// ListByEmployeeBetween implements attendance.ClockEventRepository.
func (r *clockEventRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.ClockEvent, error) {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, registrar_id, timestamp, type, shift, status, created_at
		FROM clock_events
		WHERE employee_id = $1
		  AND timestamp >= $2
		  AND timestamp < $3
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list clock events: %w", err)
	}
	defer rows.Close()

	var events []attendance.ClockEvent
	for rows.Next() {
		var event attendance.ClockEvent
		if err := rows.Scan(
			&event.ID, &event.EmployeeID, &event.RegistrarID, &event.Timestamp,
			&event.Type, &event.Shift, &event.Status, &event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan clock event row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clock event rows: %w", err)
	}

	return events, nil
}

// LockEmployeeDay implements attendance.ClockEventRepository.
func (r *clockEventRepository) LockEmployeeDay(ctx context.Context, employeeID string, day time.Time) error {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	// Transaction-scoped advisory lock keyed on employee and local day.
	// Two near-simultaneous scans for the same badge queue up here instead
	// of both reading "no event yet today".
	key := fmt.Sprintf("%s:%s", employeeID, day.Format("2006-01-02"))
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return fmt.Errorf("failed to lock employee day: %w", err)
	}

	return nil
}
