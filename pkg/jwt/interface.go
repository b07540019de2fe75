package jwt

import "time"

// IInspector reads claims from bearer tokens without verifying the signature.
// The upstream API remains the authority on validity; the inspector only lets the
// client drop a token it can already tell has expired.
// Implementations are safe for concurrent use.
type IInspector interface {
	Inspect(token string) (*Claims, error)
	// Expired is false for tokens that cannot be parsed or carry no exp claim.
	Expired(token string, now time.Time) bool
}

// New creates a new token inspector. Returns the interface.
func New(cfg Config) IInspector {
	if cfg.Leeway <= 0 {
		cfg.Leeway = DefaultLeeway
	}
	return &inspectorImpl{
		parser: newParser(),
		leeway: cfg.Leeway,
	}
}
