package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newParser() *jwt.Parser {
	return jwt.NewParser(jwt.WithoutClaimsValidation())
}

// Inspect parses token and returns its claims.
func (i *inspectorImpl) Inspect(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}

func (i *inspectorImpl) Expired(token string, now time.Time) bool {
	claims, err := i.Inspect(token)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return now.After(claims.ExpiresAt.Add(i.leeway))
}
