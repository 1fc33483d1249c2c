package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

var (
	storeOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Count of multi-index store operations.",
	}, []string{"operation", "network", "status"})
	storeOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of multi-index store operations.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"operation", "network", "status"})
	storeCheckpointsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "checkpoints_total",
		Help:      "Count of periodic checkpoints by outcome.",
	}, []string{"network", "status"})
)

// Store tracks metrics for the leveldb repository.
type Store struct {
	network string
}

// NewStore creates a Store metrics collector.
func NewStore(network model.Network) *Store {
	return &Store{network: networkLabel(network)}
}

// Observe records duration and status of a store operation.
func (m Store) Observe(operation string, err error, started time.Time) {
	storeOperationsTotal.WithLabelValues(operation, m.network, status(err)).Inc()
	storeOperationDuration.WithLabelValues(operation, m.network, status(err)).Observe(time.Since(started).Seconds())
}

// ObserveCheckpoint records the outcome of a periodic checkpoint.
func (m Store) ObserveCheckpoint(err error) {
	storeCheckpointsTotal.WithLabelValues(m.network, status(err)).Inc()
}
