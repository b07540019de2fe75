package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func newRecorder(reg *prometheus.Registry, namespace string) *recorderImpl {
	r := &recorderImpl{
		registry: reg,
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_operations_total",
			Help:      "Remote operations by kind and outcome.",
		}, []string{"op", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_operation_duration_seconds",
			Help:      "Latency of remote operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		inFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sync_operations_in_flight",
			Help:      "Remote operations currently awaiting a response.",
		}, []string{"op"}),
	}
	reg.MustRegister(
		r.ops, r.duration, r.inFlight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *recorderImpl) Started(op string) {
	r.inFlight.WithLabelValues(op).Inc()
}

func (r *recorderImpl) Finished(op string) {
	r.inFlight.WithLabelValues(op).Dec()
}

func (r *recorderImpl) Observe(_ context.Context, op, outcome string, duration time.Duration) {
	r.ops.WithLabelValues(op, outcome).Inc()
	r.duration.WithLabelValues(op).Observe(duration.Seconds())
}

func (r *recorderImpl) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (nopRecorder) Started(string)                                         {}
func (nopRecorder) Finished(string)                                        {}
func (nopRecorder) Observe(context.Context, string, string, time.Duration) {}
func (nopRecorder) Handler() http.Handler                                  { return http.NotFoundHandler() }
