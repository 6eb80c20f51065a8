package middleware

import (
	"context"
	"net/http"
	"strings"

	"sprout_server/helpers"
)

// TokenValidator checks a session token and returns the user id it carries
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// contextKey is unexported so only this package can set or shadow the value.
type contextKey string

const userIDKey contextKey = "userID"

// RequireAuth rejects requests without a valid bearer token and stores the
// authenticated user id in the request context for handlers.
func RequireAuth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token := strings.TrimPrefix(header, "Bearer ")
			if token == "" || token == header {
				helpers.WriteJSONError(w, http.StatusUnauthorized, "valid authentication required")
				return
			}

			userID, err := tokens.ValidateToken(token)
			if err != nil {
				helpers.WriteJSONError(w, http.StatusUnauthorized, "valid authentication required")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID returns a context carrying the authenticated user id
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext retrieves the authenticated user's id, if present
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
