package metrics

import "github.com/prometheus/client_golang/prometheus"

const DefaultNamespace = "dashboard"

// Config holds recorder configuration.
type Config struct {
	Namespace string
}

type recorderImpl struct {
	registry *prometheus.Registry
	ops      *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight *prometheus.GaugeVec
}

type nopRecorder struct{}
