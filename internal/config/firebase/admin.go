package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	app        *firebase.App
	authClient *auth.Client
)

// InitializeFirebase initializes the Firebase Admin SDK from a service
// account key file. Identity lives entirely in Firebase; there is no local
// user store behind it.
func InitializeFirebase(credentialsFile string) error {
	opt := option.WithCredentialsFile(credentialsFile)

	var err error
	app, err = firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err = app.Auth(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get Firebase Auth client: %w", err)
	}

	return nil
}

// IsConfigured reports whether the Auth client is available.
func IsConfigured() bool {
	return authClient != nil
}

// VerifyToken verifies a Firebase ID token and returns the user ID
func VerifyToken(ctx context.Context, idToken string) (string, error) {
	if authClient == nil {
		return "", fmt.Errorf("Firebase Auth client not initialized")
	}

	token, err := authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("failed to verify ID token: %w", err)
	}

	return token.UID, nil
}
