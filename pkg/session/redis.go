package session

import (
	"context"
	"errors"
	"fmt"

	pkgRedis "dashboard-srv/pkg/redis"
)

func (s *redisStore) Token(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key)
	if errors.Is(err, pkgRedis.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session: failed to read token: %w", err)
	}
	return token, nil
}

func (s *redisStore) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.Invalidate(ctx)
	}
	if err := s.client.Set(ctx, s.key, token, s.ttl); err != nil {
		return fmt.Errorf("session: failed to store token: %w", err)
	}
	return nil
}

func (s *redisStore) Invalidate(ctx context.Context) error {
	if err := s.client.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("session: failed to delete token: %w", err)
	}
	return nil
}
