package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

type contextKey string

const (
	userContextKey contextKey = "user"
)

// HTTPMiddleware validates bearer tokens on mutation requests. Reads stay
// open; the communication-method registry additionally requires the admin
// role for mutations, mirroring the admin-only screens of the UI.
func HTTPMiddleware(next http.Handler, jwtSecret string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip authentication for non-protected endpoints
		if !isProtectedRequest(r) {
			next.ServeHTTP(w, r)
			return
		}

		// Extract token from Authorization header
		tokenString, err := extractTokenFromHeader(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		// Validate token
		claims, err := validateToken(tokenString, jwtSecret)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		if requiresAdmin(r) {
			role, _ := claims["role"].(string)
			if role != "admin" {
				http.Error(w, "admin role required", http.StatusForbidden)
				return
			}
		}

		// Add claims to context
		ctx := context.WithValue(r.Context(), userContextKey, claims)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

func extractTokenFromHeader(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("authorization header required")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		return "", fmt.Errorf("invalid authorization format")
	}

	return tokenString, nil
}

// protectedPrefixes are the resource roots whose mutations need a token.
var protectedPrefixes = []string{
	"/companies",
	"/communication-methods",
	"/communications",
	"/next-communications",
}

func isProtectedRequest(r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodOptions {
		return false
	}
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return true
		}
	}
	return false
}

func requiresAdmin(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/communication-methods")
}
