// This is a **mock authentication service**, designed to provide JWT tokens
// for the workforce service, simulating user authentication.
package main

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/gartstein/workforce/internal/workforce/auth"
	"go.uber.org/zap"
)

const (
	defaultPort   = "8081"       // Default port for the authentication service
	defaultSecret = "jwt_secret" // Secret for signing JWT
)

// TokenResponse represents the response structure
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

func tokenHandler(secret string, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user")
		if userID == "" {
			// Simulate a user ID for the token
			userID = "12345"
		}

		token, err := auth.GenerateToken(userID, secret)
		if err != nil {
			logger.Error("failed to generate token", zap.Error(err))
			http.Error(w, "Failed to generate token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		resp := TokenResponse{Token: token, ExpiresIn: int64(auth.TokenTTL / time.Second)}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Error("failed to encode token", zap.Error(err))
		}
	}
}

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	port := os.Getenv("AUTH_PORT")
	if port == "" {
		port = defaultPort
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = defaultSecret
	}

	mux := http.NewServeMux()
	mux.Handle("/token", tokenHandler(secret, logger))

	server := &http.Server{Addr: ":" + port, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	logger.Info("Authentication service running", zap.String("port", port))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("authentication service failed", zap.Error(err))
	}
}
