package session

import (
	"sync"
	"time"

	pkgRedis "dashboard-srv/pkg/redis"
)

// DefaultKey is the redis key holding the session token.
const DefaultKey = "dashboard:session:token"

// RedisStoreConfig configures the redis-backed store. Zero TTL keeps the token until invalidated.
type RedisStoreConfig struct {
	Key string
	TTL time.Duration
}

type memoryStore struct {
	mu    sync.RWMutex
	token string
}

type redisStore struct {
	client pkgRedis.IRedis
	key    string
	ttl    time.Duration
}
