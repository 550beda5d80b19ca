package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/jeffschoe/chirpy/service"
)

type contextKey string

// UserIDKey is the request-context key under which the authenticated
// user's id is stored.
const UserIDKey contextKey = "userID"

// AuthMiddleware guards routes that require a valid access token. The
// auth service is injected so the signing secret stays out of package
// state.
type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireUser resolves the bearer token into a user id and stores it in
// the request context. A malformed header is a 400, a bad credential a
// 401.
func (m *AuthMiddleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, appErr := m.auth.AuthenticateRequest(r.Header.Get("Authorization"))
		if appErr != nil {
			appErr.Send(w)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	return userID, ok
}
