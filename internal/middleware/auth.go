package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/learnx/learnx-go/internal/crypto"
)

type contextKey string

const claimsKey contextKey = "claims"

// bearerToken extracts the token from an Authorization header value,
// stripping an optional "Bearer " prefix and surrounding whitespace.
func bearerToken(header string) string {
	token := strings.TrimPrefix(header, "Bearer ")
	return strings.TrimSpace(token)
}

// RequireAuth returns middleware that validates a Bearer token from the
// Authorization header. Requests without a valid token are rejected.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, "Missing token")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth returns middleware that attaches identity claims when a valid
// Bearer token is present, and otherwise lets the request proceed as
// anonymous. An invalid or expired token is swallowed, not rejected.
func OptionalAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token != "" {
				if claims, err := crypto.ValidateToken(token, secret); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromContext extracts the authenticated identity claims from the
// request context.
func ClaimsFromContext(ctx context.Context) (*crypto.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*crypto.Claims)
	return claims, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
