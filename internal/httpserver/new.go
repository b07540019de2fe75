package httpserver

import (
	"errors"
	"sync"

	"dashboard-srv/config"
	"dashboard-srv/internal/alert"
	"dashboard-srv/internal/company"
	"dashboard-srv/pkg/gateway"
	pkgJWT "dashboard-srv/pkg/jwt"
	pkgKafka "dashboard-srv/pkg/kafka"
	"dashboard-srv/pkg/log"
	"dashboard-srv/pkg/metrics"
	pkgRedis "dashboard-srv/pkg/redis"
	"dashboard-srv/pkg/session"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Upstream & Session Configuration
	gateway   gateway.IGateway
	tokens    session.TokenStore
	inspector pkgJWT.IInspector
	loginPath string

	// Optional backends, nil when disabled
	redisClient   pkgRedis.IRedis
	kafkaProducer pkgKafka.IProducer

	// Observability
	metrics      metrics.IRecorder
	syncReporter company.Reporter

	// Domain usecases, set by the setup*Domain helpers
	companyUC company.UseCase
	alertUC   alert.UseCase
	mapOnce   sync.Once
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Upstream & Session Configuration
	Gateway   gateway.IGateway
	Tokens    session.TokenStore
	Inspector pkgJWT.IInspector
	LoginPath string

	// Optional backends
	RedisClient   pkgRedis.IRedis
	KafkaProducer pkgKafka.IProducer

	// Observability
	Metrics metrics.IRecorder
	// SyncReporter receives company sync events in addition to the in-memory journal. Optional.
	SyncReporter company.Reporter
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		// Upstream & Session Configuration
		gateway:   cfg.Gateway,
		tokens:    cfg.Tokens,
		inspector: cfg.Inspector,
		loginPath: cfg.LoginPath,

		// Optional backends
		redisClient:   cfg.RedisClient,
		kafkaProducer: cfg.KafkaProducer,

		// Observability
		metrics:      cfg.Metrics,
		syncReporter: cfg.SyncReporter,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Upstream & Session Configuration
	if srv.gateway == nil {
		return errors.New("gateway is required")
	}
	if srv.tokens == nil {
		return errors.New("tokens is required")
	}
	if srv.inspector == nil {
		return errors.New("inspector is required")
	}
	if srv.loginPath == "" {
		return errors.New("loginPath is required")
	}

	// Observability
	if srv.metrics == nil {
		return errors.New("metrics is required")
	}

	return nil
}
