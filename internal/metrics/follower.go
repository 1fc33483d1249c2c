package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

var (
	followerPollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "follower",
		Name:      "polls_total",
		Help:      "Count of node tip polls.",
	}, []string{"network", "status"})
	followerBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "follower",
		Name:      "batches_total",
		Help:      "Count of fetched and stored block batches.",
	}, []string{"network", "status"})
	followerBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "follower",
		Name:      "batch_duration_seconds",
		Help:      "Duration of fetching and storing a block batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	followerBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "follower",
		Name:      "batch_size",
		Help:      "Number of blocks per follower batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"network"})
)

// Follower tracks metrics for the node follower.
type Follower struct {
	network string
}

// NewFollower constructs a Follower metrics collector.
func NewFollower(network model.Network) *Follower {
	return &Follower{network: networkLabel(network)}
}

// ObservePoll records a tip poll outcome.
func (m Follower) ObservePoll(err error) {
	followerPollsTotal.WithLabelValues(m.network, status(err)).Inc()
}

// ObserveBatch records a processed batch.
func (m Follower) ObserveBatch(err error, blocks int, started time.Time) {
	followerBatchTotal.WithLabelValues(m.network, status(err)).Inc()
	followerBatchDuration.WithLabelValues(m.network, status(err)).Observe(time.Since(started).Seconds())
	followerBatchSize.WithLabelValues(m.network).Observe(float64(blocks))
}
