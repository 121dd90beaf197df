package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	ErrInvalidSignature = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
)

// IdentityClaims is the payload of an identity token.
type IdentityClaims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// TokenService issues and verifies HS256 identity tokens over a fixed secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService. A non-positive ttl falls back to one day.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock returns a copy of the service that reads time from now.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	cp := *s
	cp.now = now
	return &cp
}

// Issue signs a token asserting email that expires ttl after issuance.
func (s *TokenService) Issue(email string) (string, error) {
	issuedAt := s.now()
	claims := IdentityClaims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: issuedAt.Add(s.ttl).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Verify validates the signature and expiry of tokenString and returns the embedded email.
func (s *TokenService) Verify(tokenString string) (string, error) {
	var claims IdentityClaims
	parser := &jwt.Parser{SkipClaimsValidation: true}
	_, err := parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	// Expiry is checked against s.now, not the parser's clock.
	if claims.ExpiresAt == 0 || s.now().Unix() >= claims.ExpiresAt {
		return "", ErrTokenExpired
	}
	if claims.Email == "" {
		return "", fmt.Errorf("%w: token does not contain an email", ErrInvalidSignature)
	}
	return claims.Email, nil
}
