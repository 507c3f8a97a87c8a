package auth

import (
	"context"
	"testing"

	"github.com/giftnest/backoffice-go/internal/domain/auth"
	"github.com/giftnest/backoffice-go/internal/domain/user"
	"github.com/giftnest/backoffice-go/internal/pkg/jwt"
	"github.com/giftnest/backoffice-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	users map[string]user.User
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *stubUserRepo) ListEmployees(_ context.Context) ([]user.User, error) {
	return nil, nil
}

func newLoginFixture(t *testing.T) auth.AuthService {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	hashedStr := string(hashed)

	users := &stubUserRepo{users: map[string]user.User{
		"mgr-1": {
			ID:           "mgr-1",
			FullName:     "Marisol Vega",
			Email:        "marisol@giftnest.test",
			PasswordHash: &hashedStr,
			Role:         user.RoleManager,
		},
		"cus-1": {
			ID:       "cus-1",
			FullName: "OAuth-only Customer",
			Email:    "customer@example.test",
			Role:     user.RoleCustomer,
		},
	}}

	return NewAuthService(users, jwt.NewJWTService("test-secret-key-for-jwt", "1h"))
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newLoginFixture(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "marisol@giftnest.test",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "mgr-1", resp.UserID)
	assert.Equal(t, "manager", resp.Role)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))

	// The issued token must carry the claims the middleware relies on.
	tokenAuth := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, err := jwtauth.VerifyToken(tokenAuth, resp.AccessToken)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mgr-1", claims["user_id"])
	assert.Equal(t, "manager", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newLoginFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "marisol@giftnest.test",
		Password: "incorrect horse",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newLoginFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@giftnest.test",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_NoPasswordSet(t *testing.T) {
	svc := newLoginFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "customer@example.test",
		Password: "anything",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_ValidatesRequest(t *testing.T) {
	svc := newLoginFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email"})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
