package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "approvalflow"

// Metrics holds the collectors of the sync layer. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	modeTransitions   *prometheus.CounterVec
	mode              prometheus.Gauge
	connectionState   *prometheus.GaugeVec
	reconnectAttempts prometheus.Counter
	inboundMessages   *prometheus.CounterVec
	droppedMessages   prometheus.Counter
	remoteFailures    *prometheus.CounterVec
	remoteDuration    *prometheus.HistogramVec
	pollRuns          *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		modeTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "repository",
				Name:      "mode_transitions_total",
				Help:      "Number of operating mode changes, by target mode.",
			},
			[]string{"mode"},
		),
		mode: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "repository",
				Name:      "degraded",
				Help:      "1 while the client serves from the local fallback store.",
			},
		),
		connectionState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "realtime",
				Name:      "connection_state",
				Help:      "1 for the current connection state, 0 for the others.",
			},
			[]string{"state"},
		),
		reconnectAttempts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "realtime",
				Name:      "reconnect_attempts_total",
				Help:      "Number of scheduled reconnection attempts.",
			},
		),
		inboundMessages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "realtime",
				Name:      "messages_total",
				Help:      "Inbound realtime messages, by type.",
			},
			[]string{"type"},
		),
		droppedMessages: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "realtime",
				Name:      "dropped_messages_total",
				Help:      "Inbound realtime messages that could not be parsed.",
			},
		),
		remoteFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "remote",
				Name:      "transport_failures_total",
				Help:      "Remote calls that failed at the transport level, by operation.",
			},
			[]string{"operation"},
		),
		remoteDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "remote",
				Name:      "call_duration_seconds",
				Help:      "Duration of remote calls, by operation.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"operation"},
		),
		pollRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sync",
				Name:      "poll_runs_total",
				Help:      "Periodic poll runs, by result.",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(
		m.modeTransitions,
		m.mode,
		m.connectionState,
		m.reconnectAttempts,
		m.inboundMessages,
		m.droppedMessages,
		m.remoteFailures,
		m.remoteDuration,
		m.pollRuns,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
	return m
}

// Handler returns an HTTP handler exposing the registered collectors.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ModeChanged(mode string) {
	if m == nil {
		return
	}
	m.modeTransitions.WithLabelValues(mode).Inc()
	if mode == "degraded" {
		m.mode.Set(1)
	} else {
		m.mode.Set(0)
	}
}

func (m *Metrics) ConnectionState(current string, all ...string) {
	if m == nil {
		return
	}
	for _, s := range all {
		m.connectionState.WithLabelValues(s).Set(0)
	}
	m.connectionState.WithLabelValues(current).Set(1)
}

func (m *Metrics) ReconnectScheduled() {
	if m == nil {
		return
	}
	m.reconnectAttempts.Inc()
}

func (m *Metrics) MessageReceived(messageType string) {
	if m == nil {
		return
	}
	m.inboundMessages.WithLabelValues(messageType).Inc()
}

func (m *Metrics) MessageDropped() {
	if m == nil {
		return
	}
	m.droppedMessages.Inc()
}

// RemoteCall records the duration of a remote call and whether it failed at the transport level.
func (m *Metrics) RemoteCall(operation string, duration time.Duration, transportFailure bool) {
	if m == nil {
		return
	}
	m.remoteDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if transportFailure {
		m.remoteFailures.WithLabelValues(operation).Inc()
	}
}

func (m *Metrics) PollRun(result string) {
	if m == nil {
		return
	}
	m.pollRuns.WithLabelValues(result).Inc()
}
