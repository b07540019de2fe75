package session

import (
	"context"

	pkgRedis "dashboard-srv/pkg/redis"
)

// TokenStore holds the bearer token of the current dashboard session.
// An empty token means the session is unauthenticated.
// Implementations are safe for concurrent use.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Invalidate(ctx context.Context) error
}

// NewMemoryStore creates a process-local token store seeded with token.
func NewMemoryStore(token string) TokenStore {
	return &memoryStore{token: token}
}

// NewRedisStore creates a token store persisted under cfg.Key.
func NewRedisStore(client pkgRedis.IRedis, cfg RedisStoreConfig) TokenStore {
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}
	return &redisStore{client: client, key: cfg.Key, ttl: cfg.TTL}
}
