package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portal"

// Metrics holds the portal collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	SlotWrites         *prometheus.CounterVec
	SlotWriteFailures  *prometheus.CounterVec
	SlotLoadCorrupt    *prometheus.CounterVec
	NotificationsShown *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SlotWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_writes_total",
			Help:      "Number of successful full-collection writes per storage slot.",
		}, []string{"slot"}),
		SlotWriteFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_write_failures_total",
			Help:      "Number of rejected storage slot writes. The in-memory state is kept.",
		}, []string{"slot"}),
		SlotLoadCorrupt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_load_corrupt_total",
			Help:      "Number of slot loads that found unreadable or malformed data.",
		}, []string{"slot"}),
		NotificationsShown: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_shown_total",
			Help:      "Number of notifications shown, by kind.",
		}, []string{"kind"}),
	}

	m.registry.MustRegister(
		m.SlotWrites,
		m.SlotWriteFailures,
		m.SlotLoadCorrupt,
		m.NotificationsShown,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// The helpers below accept a nil receiver so stores and services can run without metrics.

func (m *Metrics) SlotWritten(slot string) {
	if m == nil {
		return
	}
	m.SlotWrites.WithLabelValues(slot).Inc()
}

func (m *Metrics) SlotWriteFailed(slot string) {
	if m == nil {
		return
	}
	m.SlotWriteFailures.WithLabelValues(slot).Inc()
}

func (m *Metrics) SlotCorrupt(slot string) {
	if m == nil {
		return
	}
	m.SlotLoadCorrupt.WithLabelValues(slot).Inc()
}

func (m *Metrics) NotificationShown(kind string) {
	if m == nil {
		return
	}
	m.NotificationsShown.WithLabelValues(kind).Inc()
}
