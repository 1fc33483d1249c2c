package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

var (
	journalOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "operations_total",
		Help:      "Count of reorganization journal operations.",
	}, []string{"operation", "network", "status"})
	journalOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "operation_duration_seconds",
		Help:      "Duration of reorganization journal operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "network", "status"})
	journalDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "dropped_entries_total",
		Help:      "Count of journal entries that could not be queued.",
	}, []string{"network"})
)

// Journal tracks metrics for the ClickHouse reorganization journal.
type Journal struct {
	network string
}

// NewJournal creates a Journal metrics collector.
func NewJournal(network model.Network) *Journal {
	return &Journal{network: networkLabel(network)}
}

// Observe records duration and status of a journal operation.
func (m Journal) Observe(operation string, err error, started time.Time) {
	journalOperationsTotal.WithLabelValues(operation, m.network, status(err)).Inc()
	journalOperationDuration.WithLabelValues(operation, m.network, status(err)).Observe(time.Since(started).Seconds())
}

// ObserveDropped records entries lost because the batcher refused them.
func (m Journal) ObserveDropped(entries int) {
	journalDroppedTotal.WithLabelValues(m.network).Add(float64(entries))
}
