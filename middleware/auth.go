package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"finledger/models"
	"finledger/security"

	"github.com/gorilla/mux"
)

// Define context keys
type contextKey string

const UserIDKey contextKey = "user_id"

// Authenticate parses the bearer token and, when it verifies, attaches the
// user id to the request context. Parse failures are swallowed here; requests
// without a verified user are rejected by RequireUser, not by the parser.
func Authenticate(tokens *security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractToken(r.Header.Get("Authorization"))
			if tokenString != "" {
				if claims, err := tokens.Verify(tokenString); err == nil {
					ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser rejects requests that did not authenticate.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserID(r); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.NewErrorResponse(http.StatusUnauthorized, "authentication required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID retrieves the authenticated user id from the request context.
func UserID(r *http.Request) (int64, bool) {
	id, ok := r.Context().Value(UserIDKey).(int64)
	return id, ok
}

// extractToken gets the token from the Authorization header
func extractToken(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, "Bearer ")
	if len(parts) != 2 {
		return ""
	}

	return parts[1]
}
