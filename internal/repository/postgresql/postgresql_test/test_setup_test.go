package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/giftnest/backoffice-go/internal/domain/user"
	"github.com/giftnest/backoffice-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	setupOnce sync.Once
	sharedDB  *database.DB
	setupErr  error
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	full_name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT,
	role TEXT NOT NULL,
	schedule TEXT,
	base_salary NUMERIC(12,2),
	hire_date DATE,
	avatar_url TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS clock_events (
	id UUID PRIMARY KEY,
	employee_id UUID NOT NULL REFERENCES users(id),
	registrar_id UUID NOT NULL REFERENCES users(id),
	timestamp TIMESTAMPTZ NOT NULL,
	type TEXT NOT NULL,
	shift TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS leave_requests (
	id UUID PRIMARY KEY,
	employee_id UUID NOT NULL REFERENCES users(id),
	leave_date DATE NOT NULL,
	shift TEXT NOT NULL,
	justification TEXT NOT NULL,
	attachment_url TEXT,
	status TEXT NOT NULL,
	reviewed_by UUID,
	reviewed_at TIMESTAMPTZ,
	rejection_reason TEXT,
	submitted_at TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS notifications (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id),
	type TEXT NOT NULL,
	title TEXT NOT NULL,
	message TEXT NOT NULL,
	link TEXT,
	is_read BOOLEAN NOT NULL DEFAULT FALSE,
	read_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS evaluations (
	id UUID PRIMARY KEY,
	employee_id UUID NOT NULL REFERENCES users(id),
	reviewer_id UUID NOT NULL REFERENCES users(id),
	period TEXT NOT NULL,
	summary TEXT NOT NULL,
	score INT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS feedback (
	id UUID PRIMARY KEY,
	employee_id UUID NOT NULL REFERENCES users(id),
	author_id UUID NOT NULL REFERENCES users(id),
	period TEXT NOT NULL,
	type TEXT NOT NULL,
	message TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// testDB connects to TEST_DATABASE_URL and bootstraps the schema once per
// test run. Tests are skipped when no test database is configured.
func testDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository integration tests")
	}

	setupOnce.Do(func() {
		db, err := database.NewPostgreSQLDB(dsn, 5*time.Second)
		if err != nil {
			setupErr = fmt.Errorf("failed to connect to test database: %w", err)
			return
		}
		if _, err := db.Exec(context.Background(), schemaDDL); err != nil {
			setupErr = fmt.Errorf("failed to bootstrap test schema: %w", err)
			return
		}
		sharedDB = db
	})
	require.NoError(t, setupErr)

	return sharedDB
}

// truncateAll wipes every table between tests.
func truncateAll(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	tables := []string{
		"feedback",
		"evaluations",
		"notifications",
		"leave_requests",
		"clock_events",
		"users",
	}
	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "failed to truncate table %s", table)
	}
}

func seedUser(t *testing.T, db *database.DB, fullName, email string, role user.Role, schedule *user.Schedule) user.User {
	t.Helper()
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	hashedStr := string(hashed)

	var u user.User
	err = db.QueryRow(ctx, `
		INSERT INTO users (id, full_name, email, password_hash, role, schedule)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
		RETURNING id, full_name, email, password_hash, role, schedule,
				  base_salary, hire_date, avatar_url, created_at, updated_at
	`, fullName, email, hashedStr, role, schedule).Scan(
		&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.Schedule,
		&u.BaseSalary, &u.HireDate, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt,
	)
	require.NoError(t, err)
	return u
}

func schedulePtr(s user.Schedule) *user.Schedule {
	return &s
}

func strPtr(s string) *string {
	return &s
}
