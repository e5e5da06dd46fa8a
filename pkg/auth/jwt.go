// pkg/auth/jwt.go
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidClaims = errors.New("invalid token claims")
)

// TokenManager validates the identity tokens issued by the external
// auth provider. The engine never stores credentials; it only reads
// the user id and role claims.
type TokenManager struct {
	accessSecret []byte
	issuer       string
}

// NewTokenManager creates a new token manager
func NewTokenManager(accessSecret, issuer string) *TokenManager {
	return &TokenManager{
		accessSecret: []byte(accessSecret),
		issuer:       issuer,
	}
}

// CustomClaims represents the custom JWT claims
type CustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ValidateAccessToken parses and validates an access token.
func (tm *TokenManager) ValidateAccessToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tm.accessSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	if claims.UserID == "" || claims.Role == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

// GenerateAccessToken mints a token locally. Production tokens come
// from the identity provider; this exists for development and tests.
func (tm *TokenManager) GenerateAccessToken(userID, email, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tm.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.accessSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ExtractTokenFromHeader pulls the bearer token out of an
// Authorization header value.
func ExtractTokenFromHeader(header string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", fmt.Errorf("authorization header must use the Bearer scheme")
	}
	token := strings.TrimPrefix(header, prefix)
	if token == "" {
		return "", fmt.Errorf("authorization header carries no token")
	}
	return token, nil
}
