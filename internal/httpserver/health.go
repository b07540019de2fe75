package httpserver

import (
	"context"
	"net/http"
	"time"

	"dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Reputation dashboard API"
	HealthVersion = "1.0.0"
	ServiceName   = "dashboard-srv"

	readyTimeout = 5 * time.Second
)

// healthCheck handles health check requests
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck checks the upstream API and every enabled backend concurrently.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	deps := gin.H{"upstream": "connected"}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := srv.gateway.Health(gctx)
		return dependencyError{name: "upstream", err: err}.orNil()
	})
	if srv.redisClient != nil {
		deps["redis"] = "connected"
		g.Go(func() error {
			return dependencyError{name: "redis", err: srv.redisClient.Ping(gctx)}.orNil()
		})
	}
	if srv.kafkaProducer != nil {
		deps["kafka"] = "connected"
		g.Go(func() error {
			return dependencyError{name: "kafka", err: srv.kafkaProducer.HealthCheck()}.orNil()
		})
	}

	if err := g.Wait(); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "not ready",
			"message": err.Error(),
		})
		return
	}

	response.OK(c, gin.H{
		"status":       "ready",
		"message":      HealthMessage,
		"version":      HealthVersion,
		"service":      ServiceName,
		"dependencies": deps,
	})
}

// liveCheck handles liveness check requests
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

type dependencyError struct {
	name string
	err  error
}

func (e dependencyError) Error() string { return e.name + " connection failed: " + e.err.Error() }

func (e dependencyError) orNil() error {
	if e.err == nil {
		return nil
	}
	return e
}
