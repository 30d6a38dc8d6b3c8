package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes Prometheus metrics for the web host. Each server owns
// its registry so several servers can live in one process.
type Metrics struct {
	registry *prometheus.Registry

	sessionsActive prometheus.Gauge
	sessionsTotal  prometheus.Counter
	pointerEvents  *prometheus.CounterVec
	timeChanges    *prometheus.CounterVec
	rejected       *prometheus.CounterVec
	frameCommands  prometheus.Histogram
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "timepicker_sessions_active",
			Help: "Number of connected dial sessions",
		}),
		sessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timepicker_sessions_total",
			Help: "Total number of dial sessions opened",
		}),
		pointerEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "timepicker_pointer_events_total",
				Help: "Pointer events received, by type and whether the dial claimed them",
			},
			[]string{"type", "claimed"},
		),
		timeChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "timepicker_time_changes_total",
				Help: "Committed time changes, by source",
			},
			[]string{"source"}, // touch, api
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "timepicker_rejected_inputs_total",
				Help: "Client input rejected, by reason",
			},
			[]string{"reason"}, // out_of_range, bad_request, bad_message
		),
		frameCommands: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "timepicker_frame_commands",
			Help:    "Render commands per frame sent to clients",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		}),
	}

	m.registry.MustRegister(
		m.sessionsActive,
		m.sessionsTotal,
		m.pointerEvents,
		m.timeChanges,
		m.rejected,
		m.frameCommands,
	)
	return m
}

// Handler returns the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) sessionOpened() {
	m.sessionsActive.Inc()
	m.sessionsTotal.Inc()
}

func (m *Metrics) sessionClosed() {
	m.sessionsActive.Dec()
}

func (m *Metrics) pointerEvent(eventType string, claimed bool) {
	c := "false"
	if claimed {
		c = "true"
	}
	m.pointerEvents.WithLabelValues(eventType, c).Inc()
}

func (m *Metrics) timeChanged(source string) {
	m.timeChanges.WithLabelValues(source).Inc()
}

func (m *Metrics) rejectedInput(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) frameSent(commands int) {
	m.frameCommands.Observe(float64(commands))
}
