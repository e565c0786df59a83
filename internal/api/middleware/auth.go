package middleware

import (
	"context"
	"net/http"
	"strings"

	"devfolio/internal/api/constants"
	"devfolio/internal/api/dto/common"
	"devfolio/internal/config/firebase"

	"github.com/gin-gonic/gin"
)

// TokenVerifier checks bearer tokens for the auth gate.
type TokenVerifier interface {
	// Configured reports whether the identity provider is available.
	Configured() bool
	// Verify validates an ID token and returns the user UID.
	Verify(ctx context.Context, idToken string) (string, error)
}

// firebaseVerifier is the production TokenVerifier, backed by the Firebase
// Admin SDK.
type firebaseVerifier struct{}

func (firebaseVerifier) Configured() bool {
	return firebase.IsConfigured()
}

func (firebaseVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	return firebase.VerifyToken(ctx, idToken)
}

// AuthMiddleware gates routes behind ID token verification. Identity is
// fully delegated: a verified token is all there is, no local user record.
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates an auth middleware backed by Firebase.
func NewAuthMiddleware() *AuthMiddleware {
	return NewAuthMiddlewareWithVerifier(firebaseVerifier{})
}

// NewAuthMiddlewareWithVerifier creates an auth middleware with an injected
// verifier so tests can drive the rejection paths without real credentials.
func NewAuthMiddlewareWithVerifier(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth verifies the Bearer token and stores the user UID in context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.verifier.Configured() {
			response := common.NewErrorResponse(common.ErrCodeUnavailable, "Authentication is not configured", nil)
			c.JSON(http.StatusServiceUnavailable, response)
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response := common.NewErrorResponse(common.ErrCodeUnauthorized, "Authentication required", nil)
			c.JSON(http.StatusUnauthorized, response)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response := common.NewErrorResponse(common.ErrCodeUnauthorized, "Invalid authorization header format", nil)
			c.JSON(http.StatusUnauthorized, response)
			c.Abort()
			return
		}

		uid, err := m.verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			response := common.NewErrorResponse(common.ErrCodeUnauthorized, "Invalid token", nil)
			c.JSON(http.StatusUnauthorized, response)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserUID, uid)
		c.Next()
	}
}
