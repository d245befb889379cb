package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Chat outcomes, used as the "outcome" label
const (
	outcomeQuick    = "quick"
	outcomeCache    = "cache"
	outcomeLLM      = "llm"
	outcomeKeyword  = "keyword"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// Metrics holds the server's Prometheus collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	chatRequests *prometheus.CounterVec
	chatLatency  *prometheus.HistogramVec
	healthChecks *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		chatRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "footbot_chat_requests_total",
			Help: "Total chat requests by outcome",
		}, []string{"outcome"}),
		chatLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "footbot_chat_duration_seconds",
			Help:    "Chat request latency by outcome",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 150},
		}, []string{"outcome"}),
		healthChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "footbot_health_checks_total",
			Help: "Total health checks by reported status",
		}, []string{"status"}),
	}

	m.registry.MustRegister(
		m.chatRequests,
		m.chatLatency,
		m.healthChecks,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeChat(outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.chatRequests.WithLabelValues(outcome).Inc()
	m.chatLatency.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

func (m *Metrics) observeHealth(status string) {
	if m == nil {
		return
	}
	m.healthChecks.WithLabelValues(status).Inc()
}
