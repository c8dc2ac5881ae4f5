package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/user/blogstack-go/apperror"
)

// ContextKey is a private key type for request context values.
type ContextKey string

// UserIDKey is the context key under which the authenticated user's id is
// stored by TokenMiddleware.
const UserIDKey ContextKey = "userID"

// TokenMiddleware verifies the bearer token in the Authorization header
// and stores the subject user id in the request context. Requests without
// a syntactically present, verifiable token are rejected with 401.
func TokenMiddleware(verifier *TokenIssuer) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError("access denied: token missing", nil))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				WriteError(w, r, apperror.NewAuthError("authorization header format must be Bearer {token}", nil))
				return
			}

			userID, err := verifier.Verify(parts[1])
			if err != nil {
				WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext retrieves the authenticated user id stored by
// TokenMiddleware. The second return is false when no token was verified.
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}
