package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the claims this service reads from a bearer token.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Config holds inspector configuration.
type Config struct {
	Leeway time.Duration
}

type inspectorImpl struct {
	parser *jwt.Parser
	leeway time.Duration
}
