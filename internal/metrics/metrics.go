// Package metrics exposes Prometheus instrumentation for tool calls and the
// event stream.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OutcomeOK labels a successful call
const OutcomeOK = "ok"

// Metrics holds the tool call and event stream collectors.
type Metrics struct {
	gatherer prometheus.Gatherer

	toolCalls    *prometheus.CounterVec
	toolDuration *prometheus.HistogramVec
	streams      prometheus.Gauge
	pings        prometheus.Counter
}

// New registers every collector on registry; nil uses a fresh registry.
func New(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	factory := promauto.With(registry)

	return &Metrics{
		gatherer: registry,
		toolCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "github_mcp_tool_calls_total",
				Help: "Total number of tool calls by tool and outcome",
			},
			[]string{"tool", "outcome"},
		),
		toolDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "github_mcp_tool_duration_seconds",
				Help:    "Duration of tool calls in seconds",
				Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"tool"},
		),
		streams: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "github_mcp_event_streams",
				Help: "Current number of open event streams",
			},
		),
		pings: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "github_mcp_event_pings_total",
				Help: "Total number of ping events written",
			},
		),
	}
}

// ObserveCall records one tool call
func (m *Metrics) ObserveCall(tool, outcome string, duration time.Duration) {
	m.toolCalls.WithLabelValues(tool, outcome).Inc()
	m.toolDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// StreamOpened tracks a new event stream; the returned func closes it.
func (m *Metrics) StreamOpened() func() {
	m.streams.Inc()
	return m.streams.Dec
}

// ObservePing counts one heartbeat sent on an event stream.
func (m *Metrics) ObservePing() {
	m.pings.Inc()
}

// Handler serves the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
