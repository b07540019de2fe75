package main

import (
	"context"
	"fmt"
	"time"

	"dashboard-srv/config"
	configKafka "dashboard-srv/config/kafka"
	configRedis "dashboard-srv/config/redis"
	"dashboard-srv/internal/company"
	companyProducer "dashboard-srv/internal/company/delivery/kafka/producer"
	"dashboard-srv/internal/httpserver"
	"dashboard-srv/pkg/gateway"
	pkgJWT "dashboard-srv/pkg/jwt"
	pkgKafka "dashboard-srv/pkg/kafka"
	"dashboard-srv/pkg/log"
	"dashboard-srv/pkg/metrics"
	pkgRedis "dashboard-srv/pkg/redis"
	"dashboard-srv/pkg/session"
)

func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// 3. Initialize Redis (only for the redis session backend)
	var redisClient pkgRedis.IRedis
	if cfg.Session.Backend == config.SessionBackendRedis {
		redisClient, err = configRedis.Connect(cfg.Redis)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer configRedis.Disconnect()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 4. Initialize session token store
	tokens := initializeTokenStore(cfg, redisClient)
	inspector := pkgJWT.New(pkgJWT.Config{Leeway: time.Duration(cfg.JWT.Leeway) * time.Second})

	// 5. Initialize gateway client
	gw, err := gateway.New(gateway.Config{
		Logger:    logger,
		BaseURL:   cfg.Gateway.BaseURL,
		Timeout:   time.Duration(cfg.Gateway.Timeout) * time.Second,
		Tokens:    tokens,
		Inspector: inspector,
		OnUnauthorized: func(ctx context.Context) {
			logger.Warnf(ctx, "Session rejected by upstream; UI must re-authenticate at %s", cfg.Gateway.LoginPath)
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize gateway: ", err)
		return
	}
	logger.Infof(ctx, "Gateway initialized for %s", cfg.Gateway.BaseURL)

	// 6. Initialize Kafka sync event producer (optional)
	var (
		kafkaProducer pkgKafka.IProducer
		syncReporter  company.Reporter
	)
	if cfg.Kafka.Enabled {
		kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Error(ctx, "Failed to connect Kafka producer: ", err)
			return
		}
		defer configKafka.DisconnectProducer()

		producer := companyProducer.New(logger, kafkaProducer, companyProducer.Config{Buffer: cfg.Kafka.Buffer})
		// drains queued events before the Kafka producer closes
		defer producer.Close()
		syncReporter = producer
		logger.Infof(ctx, "Kafka producer publishing sync events to %s", cfg.Kafka.Topic)
	}

	// 7. Initialize metrics
	recorder := metrics.New(metrics.Config{Namespace: cfg.Metrics.Namespace})

	// 8. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		// Upstream & Session Configuration
		Gateway:   gw,
		Tokens:    tokens,
		Inspector: inspector,
		LoginPath: cfg.Gateway.LoginPath,

		// Optional backends
		RedisClient:   redisClient,
		KafkaProducer: kafkaProducer,

		// Observability
		Metrics:      recorder,
		SyncReporter: syncReporter,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// initializeTokenStore picks the session backend. redisClient is nil unless the redis backend is selected.
func initializeTokenStore(cfg *config.Config, redisClient pkgRedis.IRedis) session.TokenStore {
	if cfg.Session.Backend == config.SessionBackendRedis {
		return session.NewRedisStore(redisClient, session.RedisStoreConfig{
			Key: cfg.Session.Key,
			TTL: time.Duration(cfg.Session.TTL) * time.Second,
		})
	}
	return session.NewMemoryStore(cfg.Session.Token)
}
