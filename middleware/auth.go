package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type contextKey string

// UserIDKey carries the authenticated identity through the request
// context.
const UserIDKey contextKey = "user_id"

var firebaseAuth *auth.Client

// InitializeFirebase initializes the Firebase Admin SDK from credentials
// in the environment. Without credentials the middleware runs in dev mode
// with token verification disabled.
func InitializeFirebase() error {
	credentials := firebaseCredentials()
	if credentials == nil {
		log.Println("No Firebase credentials found, running in dev mode with auth checks disabled")
		return nil
	}

	config := &firebase.Config{ProjectID: os.Getenv("FIREBASE_PROJECT_ID")}
	app, err := firebase.NewApp(context.Background(), config, option.WithCredentialsJSON(credentials))
	if err != nil {
		return fmt.Errorf("error initializing Firebase app: %w", err)
	}

	firebaseAuth, err = app.Auth(context.Background())
	if err != nil {
		return fmt.Errorf("error getting Firebase Auth client: %w", err)
	}

	log.Println("Firebase Admin SDK initialized")
	return nil
}

// firebaseCredentials reads the service account from the environment,
// preferring raw JSON over the base64 form.
func firebaseCredentials() []byte {
	if raw := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); raw != "" {
		return []byte(raw)
	}
	if encoded := os.Getenv("FIREBASE_SERVICE_ACCOUNT_BASE64"); encoded != "" {
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			log.Printf("Error decoding base64 Firebase credentials: %v", err)
			return nil
		}
		return decoded
	}
	return nil
}

// AuthMiddleware verifies Firebase ID tokens from the Authorization
// header and stashes the user id in the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// CORS preflight never carries a token.
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		if firebaseAuth == nil {
			// Dev mode: act as a fixed local identity.
			ctx := context.WithValue(r.Context(), UserIDKey, "dev-user")
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		idToken := extractToken(r.Header.Get("Authorization"))
		if idToken == "" {
			http.Error(w, "Unauthorized: No token provided", http.StatusUnauthorized)
			return
		}

		token, err := verifyToken(r.Context(), idToken)
		if err != nil {
			log.Printf("Error verifying token: %v", err)
			http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, token.UID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractToken(authHeader string) string {
	parts := strings.Split(authHeader, "Bearer ")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

func verifyToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if firebaseAuth == nil {
		return nil, errors.New("Firebase auth client not initialized")
	}
	token, err := firebaseAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("error verifying ID token: %w", err)
	}
	return token, nil
}

// GetUserIDFromContext retrieves the authenticated user id, or "" when
// the request was not authenticated.
func GetUserIDFromContext(r *http.Request) string {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}
