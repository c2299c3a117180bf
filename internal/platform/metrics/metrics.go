package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	CertificatesIssued  prometheus.Counter
	IssuanceDuration    prometheus.Histogram
	AnchorDuration      prometheus.Histogram
	LedgerWriteFailures prometheus.Counter
	Verifications       *prometheus.CounterVec
	CertificatesDeleted prometheus.Counter
}

// New creates all Prometheus metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the metrics on reg. Tests pass a fresh registry so
// suites do not collide on duplicate registration.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CertificatesIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "signet_certificates_issued_total",
			Help: "Total number of certificates issued",
		}),
		IssuanceDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "signet_issuance_duration_seconds",
			Help:    "End-to-end certificate issuance latency",
			Buckets: prometheus.DefBuckets,
		}),
		AnchorDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "signet_ledger_anchor_duration_seconds",
			Help:    "Ledger anchor submit-and-confirm latency",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 90},
		}),
		LedgerWriteFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "signet_ledger_write_failures_total",
			Help: "Total number of failed ledger anchor submissions",
		}),
		Verifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "signet_verifications_total",
			Help: "Total number of verification requests by verdict",
		}, []string{"verdict"}),
		CertificatesDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "signet_certificates_deleted_total",
			Help: "Total number of certificates hard-deleted by their owner",
		}),
	}
}

// ObserveIssuance records one successful issuance with its latency.
func (m *Metrics) ObserveIssuance(d time.Duration) {
	m.CertificatesIssued.Inc()
	m.IssuanceDuration.Observe(d.Seconds())
}

// ObserveVerification records a verification outcome.
func (m *Metrics) ObserveVerification(verdict string) {
	m.Verifications.WithLabelValues(verdict).Inc()
}
