package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Gateway - Reputation API
	Gateway GatewayConfig

	// Session - Bearer token storage
	Session SessionConfig
	JWT     JWTConfig

	// Redis - Session backend
	Redis RedisConfig

	// Kafka - Sync event stream (optional)
	Kafka KafkaConfig

	// Sync - Orchestrator tuning
	Sync SyncConfig

	// Metrics - Prometheus
	Metrics MetricsConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GatewayConfig is the configuration for the reputation API client
type GatewayConfig struct {
	BaseURL   string
	Timeout   int // in seconds
	LoginPath string
}

// SessionConfig selects where the bearer token lives.
type SessionConfig struct {
	Backend string // memory or redis
	Key     string
	TTL     int // in seconds, 0 keeps the token until logout
	// Token seeds the memory backend, e.g. for a kiosk deployment.
	Token string
}

// JWTConfig tunes expiry detection. Tokens are never verified here.
type JWTConfig struct {
	Leeway int // in seconds
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
	Buffer  int
}

// SyncConfig is the configuration for the company orchestrator
type SyncConfig struct {
	DefaultLimit int
	RecentEvents int
}

// MetricsConfig is the configuration for Prometheus metrics
type MetricsConfig struct {
	Namespace string
}

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("dashboard-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/dashboard/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gateway
	cfg.Gateway.BaseURL = viper.GetString("gateway.base_url")
	cfg.Gateway.Timeout = viper.GetInt("gateway.timeout")
	cfg.Gateway.LoginPath = viper.GetString("gateway.login_path")

	// Session
	cfg.Session.Backend = viper.GetString("session.backend")
	cfg.Session.Key = viper.GetString("session.key")
	cfg.Session.TTL = viper.GetInt("session.ttl")
	cfg.Session.Token = viper.GetString("session.token")
	cfg.JWT.Leeway = viper.GetInt("jwt.leeway")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka - Sync event publishing (optional)
	cfg.Kafka.Enabled = viper.GetBool("kafka.enabled")
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.Buffer = viper.GetInt("kafka.buffer")

	// Sync
	cfg.Sync.DefaultLimit = viper.GetInt("sync.default_limit")
	cfg.Sync.RecentEvents = viper.GetInt("sync.recent_events")

	// Metrics
	cfg.Metrics.Namespace = viper.GetString("metrics.namespace")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. Gateway
	viper.SetDefault("gateway.base_url", "http://localhost:8000/api/v1")
	viper.SetDefault("gateway.timeout", 30)
	viper.SetDefault("gateway.login_path", "/login")

	// 2. Session
	viper.SetDefault("session.backend", SessionBackendMemory)
	viper.SetDefault("session.key", "dashboard:session:token")
	viper.SetDefault("session.ttl", 0)
	viper.SetDefault("jwt.leeway", 5)

	// 3. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 4. Kafka (topic: dashboard.company.sync)
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "dashboard.company.sync")
	viper.SetDefault("kafka.buffer", 256)

	// 5. Sync
	viper.SetDefault("sync.default_limit", 20)
	viper.SetDefault("sync.recent_events", 50)

	// 6. Metrics
	viper.SetDefault("metrics.namespace", "dashboard")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be greater than 0")
	}

	// Validate Gateway Configuration
	if cfg.Gateway.BaseURL == "" {
		return fmt.Errorf("gateway.base_url is required")
	}
	if cfg.Gateway.Timeout <= 0 {
		return fmt.Errorf("gateway.timeout must be greater than 0")
	}
	if cfg.Gateway.LoginPath == "" {
		return fmt.Errorf("gateway.login_path is required")
	}

	// Validate Session Configuration
	switch cfg.Session.Backend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required")
		}
	default:
		return fmt.Errorf("session.backend must be %q or %q", SessionBackendMemory, SessionBackendRedis)
	}

	// Validate Kafka Configuration
	if cfg.Kafka.Enabled {
		if len(cfg.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers must have at least one value")
		}
		if cfg.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required")
		}
	}

	if cfg.Sync.DefaultLimit <= 0 || cfg.Sync.DefaultLimit > 100 {
		return fmt.Errorf("sync.default_limit must be between 1 and 100")
	}

	return nil
}
