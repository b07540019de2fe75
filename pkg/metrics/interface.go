package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IRecorder records remote operation outcomes.
// Implementations are safe for concurrent use.
type IRecorder interface {
	Started(op string)
	// Finished releases what Started acquired. Call it on every exit path.
	Finished(op string)
	Observe(ctx context.Context, op, outcome string, duration time.Duration)
	// Handler exposes the collected series in the prometheus text format.
	Handler() http.Handler
}

// New creates a recorder on its own registry. Returns the interface.
func New(cfg Config) IRecorder {
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}
	reg := prometheus.NewRegistry()
	return newRecorder(reg, cfg.Namespace)
}

// NewNop returns a recorder that drops everything.
func NewNop() IRecorder {
	return nopRecorder{}
}
