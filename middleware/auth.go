package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ArafatSadi1/doctors-portal/models"
	"github.com/ArafatSadi1/doctors-portal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmailKey is the gin context key holding the authenticated email.
const EmailKey = "email"

// TokenVerifier checks an identity token and returns the email it asserts.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserLookup finds a user by email, returning nil, nil when absent.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthGate decides whether a request may proceed.
type AuthGate struct {
	Tokens TokenVerifier
	Users  UserLookup
}

func NewAuthGate(tokens TokenVerifier, users UserLookup) *AuthGate {
	return &AuthGate{Tokens: tokens, Users: users}
}

// Authenticate validates an Authorization header value. A missing header is
// utils.ErrUnauthorized; anything else that does not verify is utils.ErrForbidden.
func (g *AuthGate) Authenticate(authHeader string) (string, error) {
	if authHeader == "" {
		return "", fmt.Errorf("%w: missing authorization header", utils.ErrUnauthorized)
	}
	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	tokenString = strings.TrimSpace(tokenString)
	if !ok || tokenString == "" {
		return "", fmt.Errorf("%w: malformed authorization header", utils.ErrForbidden)
	}

	email, err := g.Tokens.Verify(tokenString)
	if err != nil {
		return "", fmt.Errorf("%w: %w", utils.ErrForbidden, err)
	}
	return email, nil
}

// RequireAdmin permits only users whose stored role is admin.
func (g *AuthGate) RequireAdmin(ctx context.Context, email string) error {
	user, err := g.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return fmt.Errorf("%w: %s is not an admin", utils.ErrForbidden, email)
		}
		return err
	}
	if user == nil || !user.Role.IsAdmin() {
		return fmt.Errorf("%w: %s is not an admin", utils.ErrForbidden, email)
	}
	return nil
}

// JWTAuthMiddleware verifies the bearer token on every request and stores the email.
func (g *AuthGate) JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, err := g.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		c.Set(EmailKey, email)
		c.Next()
	}
}

// ContextEmail returns the email JWTAuthMiddleware stored.
func ContextEmail(c *gin.Context) string {
	return c.GetString(EmailKey)
}

// RequireSelf fails with utils.ErrForbidden unless the caller is requestedEmail.
func RequireSelf(c *gin.Context, requestedEmail string) error {
	caller := ContextEmail(c)
	if caller == "" || caller != requestedEmail {
		zap.L().Warn("RequireSelf: identity mismatch",
			zap.String("caller", caller), zap.String("requested", requestedEmail))
		return fmt.Errorf("%w: cannot access another patient's bookings", utils.ErrForbidden)
	}
	return nil
}
