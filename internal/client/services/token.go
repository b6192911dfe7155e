package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenStore persists the bearer token across restarts. It is the only piece
// of session state that is not re-derived from the backend.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
// The second result is false for opaque tokens or tokens without exp.
func TokenExpiry(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func tokenExpired(token string, now time.Time) bool {
	exp, ok := TokenExpiry(token)
	return ok && !exp.After(now)
}
