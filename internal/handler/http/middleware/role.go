package middleware

import (
	"net/http"

	"github.com/giftnest/backoffice-go/internal/domain/user"
	"github.com/giftnest/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireManager requires the manager role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		if role != string(user.RoleManager) {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireEmployee requires any staff role; customers are rejected
func RequireEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Employee access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Employee access required")
			return
		}

		for _, staff := range user.EmployeeRoles() {
			if role == string(staff) {
				next.ServeHTTP(w, r)
				return
			}
		}

		response.Forbidden(w, "Employee access required")
	})
}

// UserIDFromContext extracts the authenticated user's ID from JWT claims.
func UserIDFromContext(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	userID, ok := claims["user_id"].(string)
	return userID, ok && userID != ""
}
