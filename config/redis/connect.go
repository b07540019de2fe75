package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"dashboard-srv/config"
	"dashboard-srv/pkg/redis"
)

var (
	instance redis.IRedis
	mu       sync.RWMutex
)

var errNotConnected = errors.New("redis client not initialized")

// Connect returns the shared Redis client, dialing it on first use.
// A failed dial is not cached, so the next call retries.
func Connect(cfg config.RedisConfig) (redis.IRedis, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := redis.NewRedis(redis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}

	instance = client
	return instance, nil
}

// HealthCheck pings the shared client.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return errNotConnected
	}
	return instance.Ping(ctx)
}

// Disconnect closes the shared client.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
