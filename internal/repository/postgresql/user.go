package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/giftnest/backoffice-go/internal/domain/user"
	"github.com/giftnest/backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, full_name, email, password_hash, role, schedule, base_salary, hire_date, avatar_url, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.Schedule,
		&u.BaseSalary, &u.HireDate, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// ListEmployees implements user.UserRepository.
func (r *userRepository) ListEmployees(ctx context.Context) ([]user.User, error) {
	ctx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE role != 'customer'
		ORDER BY full_name ASC
	`, userColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return users, nil
}
