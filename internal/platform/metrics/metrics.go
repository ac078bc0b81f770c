package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the registry. Services take a
// *Metrics and tolerate nil so unit tests can skip registration entirely.
type Metrics struct {
	ReportsSubmitted   prometheus.Counter
	ReportsVerified    *prometheus.CounterVec
	ActionsTaken       prometheus.Counter
	AgenciesRegistered prometheus.Counter
	LedgerSize         prometheus.Gauge
	RequestDuration    *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		ReportsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "registry_reports_submitted_total",
			Help: "Total number of fake-account reports accepted into the ledger",
		}),
		ReportsVerified: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "registry_reports_verified_total",
			Help: "Total number of reports verified, by trigger",
		}, []string{"mode"}),
		ActionsTaken: promauto.NewCounter(prometheus.CounterOpts{
			Name: "registry_actions_taken_total",
			Help: "Total number of reports marked with a remediation action",
		}),
		AgenciesRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "registry_agencies_registered_total",
			Help: "Total number of agency registrations (including re-registrations)",
		}),
		LedgerSize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "registry_ledger_size",
			Help: "Current number of reports in the ledger",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "registry_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

// Verification trigger labels.
const (
	VerifyModeAuto = "auto"
	VerifyModePeer = "peer"
)

func (m *Metrics) IncReportsSubmitted() {
	if m != nil {
		m.ReportsSubmitted.Inc()
	}
}

func (m *Metrics) IncReportsVerified(mode string) {
	if m != nil {
		m.ReportsVerified.WithLabelValues(mode).Inc()
	}
}

func (m *Metrics) IncActionsTaken() {
	if m != nil {
		m.ActionsTaken.Inc()
	}
}

func (m *Metrics) IncAgenciesRegistered() {
	if m != nil {
		m.AgenciesRegistered.Inc()
	}
}

func (m *Metrics) SetLedgerSize(n int64) {
	if m != nil {
		m.LedgerSize.Set(float64(n))
	}
}

func (m *Metrics) ObserveRequest(route, status string, seconds float64) {
	if m != nil {
		m.RequestDuration.WithLabelValues(route, status).Observe(seconds)
	}
}
