package middleware

import (
	"context"
	"net/http"
	"strings"

	"studymate/internal/models"
	"studymate/internal/utils"
)

type contextKey string

// UserKey holds the resolved *models.User for the authenticated request.
const UserKey contextKey = "user"

// External failure shapes. A bad token and an unknown or deactivated user
// produce the same message so callers cannot probe account state.
const (
	msgAuthRequired = "authentication required"
	msgInvalidToken = "invalid or expired token"
)

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// UserLoader fetches the user a verified token refers to.
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthJWT gates protected routes: it extracts the bearer token, verifies it,
// loads the referenced user, and rejects on any failure. Downstream handlers
// always see a non-nil active user in the request context.
func AuthJWT(tokens TokenVerifier, users UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.Fail(w, http.StatusUnauthorized, msgAuthRequired)
				return
			}
			// scheme matching is case-insensitive per RFC 7235
			scheme, tokenStr, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || tokenStr == "" {
				utils.Fail(w, http.StatusUnauthorized, msgAuthRequired)
				return
			}

			userID, err := tokens.Verify(tokenStr)
			if err != nil {
				utils.Fail(w, http.StatusUnauthorized, msgInvalidToken)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil || !user.IsActive {
				utils.Fail(w, http.StatusUnauthorized, msgAuthRequired)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the authenticated user attached by AuthJWT.
func UserFrom(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(UserKey).(*models.User)
	return u, ok
}
