package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/txengine/internal/domain"
)

// Metrics holds the Prometheus metrics of one processing run.
type Metrics struct {
	Registry *prometheus.Registry

	// Transaction metrics
	TransactionsApplied  *prometheus.CounterVec
	TransactionsRejected *prometheus.CounterVec

	// Account metrics
	AccountsOpened prometheus.Counter
	AccountsLocked prometheus.Counter

	// Run metrics
	RunDuration prometheus.Histogram
}

// New creates all metrics and registers them on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,

		// Transaction metrics
		TransactionsApplied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txengine_transactions_applied_total",
				Help: "Total number of transactions applied by type",
			},
			[]string{"type"},
		),
		TransactionsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txengine_transactions_rejected_total",
				Help: "Total number of rejected records by reason",
			},
			[]string{"reason"},
		),

		// Account metrics
		AccountsOpened: factory.NewCounter(prometheus.CounterOpts{
			Name: "txengine_accounts_opened_total",
			Help: "Total number of client accounts opened",
		}),
		AccountsLocked: factory.NewCounter(prometheus.CounterOpts{
			Name: "txengine_accounts_locked_total",
			Help: "Total number of client accounts locked by a chargeback",
		}),

		// Run metrics
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "txengine_run_duration_seconds",
			Help:    "Duration of a processing run",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// TransactionApplied implements usecase.Recorder.
func (m *Metrics) TransactionApplied(txType domain.TxType) {
	m.TransactionsApplied.WithLabelValues(string(txType)).Inc()
}

// TransactionRejected implements usecase.Recorder.
func (m *Metrics) TransactionRejected(reason string) {
	m.TransactionsRejected.WithLabelValues(reason).Inc()
}

// AccountOpened implements usecase.Recorder.
func (m *Metrics) AccountOpened() {
	m.AccountsOpened.Inc()
}

// AccountLocked implements usecase.Recorder.
func (m *Metrics) AccountLocked() {
	m.AccountsLocked.Inc()
}

// WriteTextfile writes the current values in the text exposition format, as read
// by the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
