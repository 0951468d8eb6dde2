// This is a **stand-in authentication service**: it checks the fixed demo
// credential pairs and issues JWT tokens carrying the matching role for the
// outreach service. Not a real login system, and out of scope to harden.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/gartstein/outreach/internal/outreach/auth"
)

const (
	defaultPort   = "8081"       // Default port for the authentication service
	defaultSecret = "jwt_secret" // Secret for signing JWT
)

// credentials are the fixed demo logins, mapping password to role per user.
var credentials = map[string]struct {
	password string
	role     string
}{
	"admin": {password: "admin123", role: "admin"},
	"user":  {password: "user123", role: "user"},
}

// LoginRequest is the expected login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse represents the response structure
type TokenResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// tokenHandler generates a JWT for a simulated user and returns it in a
// JSON response. No credentials required; the token carries the default
// "user" role.
func tokenHandler(w http.ResponseWriter, _ *http.Request) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = defaultSecret
	}

	// Simulate a user ID for the token
	userID := "12345"

	token, err := auth.GenerateToken(userID, "user", secret)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	resp := TokenResponse{Token: token, Role: "user"}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "Failed to encode token", http.StatusInternalServerError)
	}
}

// loginHandler checks the demo credentials and returns a role-bearing JWT.
func loginHandler(w http.ResponseWriter, r *http.Request) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = defaultSecret
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cred, ok := credentials[req.Username]
	if !ok || cred.password != req.Password {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(req.Username, cred.role, secret)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	resp := TokenResponse{Token: token, Role: cred.role}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "Failed to encode token", http.StatusInternalServerError)
	}
}

func main() {
	port := os.Getenv("AUTH_PORT")
	if port == "" {
		port = defaultPort
	}
	http.HandleFunc("/token", tokenHandler)
	http.HandleFunc("/login", loginHandler)

	log.Printf("Authentication service running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}
