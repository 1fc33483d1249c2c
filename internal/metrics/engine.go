package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

var (
	engineCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "calls_total",
		Help:      "Count of engine calls, including time queued on the strand.",
	}, []string{"operation", "network", "status"})
	engineCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "call_duration_seconds",
		Help:      "Duration of engine calls, including time queued on the strand.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
	engineStoredBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "stored_blocks_total",
		Help:      "Count of stored blocks by resulting status.",
	}, []string{"network", "block_status", "status"})
	engineChainUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "chain_updates_total",
		Help:      "Count of best chain updates; reorganizations disconnect at least one block.",
	}, []string{"network", "kind"})
	engineReorganizationDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "reorganization_depth_blocks",
		Help:      "Number of blocks disconnected per reorganization.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	}, []string{"network"})
	engineTipDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "tip_depth",
		Help:      "Depth of the best chain tip.",
	}, []string{"network"})
	engineOrphans = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "orphan_pool_blocks",
		Help:      "Number of blocks held by the orphan pool.",
	}, []string{"network"})
)

// Engine tracks metrics for the ledger engine.
type Engine struct {
	network string
}

// NewEngine constructs an Engine metrics collector.
func NewEngine(network model.Network) *Engine {
	return &Engine{network: networkLabel(network)}
}

// Observe records a single engine call.
func (m Engine) Observe(operation string, err error, started time.Time) {
	engineCallsTotal.WithLabelValues(operation, m.network, status(err)).Inc()
	engineCallDuration.WithLabelValues(operation, m.network, status(err)).Observe(time.Since(started).Seconds())
}

// ObserveStore records where a stored block ended up.
func (m Engine) ObserveStore(blockStatus model.BlockStatus, err error) {
	if blockStatus == "" {
		blockStatus = "none"
	}
	engineStoredBlocksTotal.WithLabelValues(m.network, string(blockStatus), status(err)).Inc()
}

// ObserveChainUpdate records a change of the best chain.
func (m Engine) ObserveChainUpdate(added, removed int, depth model.Depth) {
	kind := "extension"
	if removed > 0 {
		kind = "reorganization"
		engineReorganizationDepth.WithLabelValues(m.network).Observe(float64(removed))
	}
	engineChainUpdatesTotal.WithLabelValues(m.network, kind).Inc()
	engineTipDepth.WithLabelValues(m.network).Set(float64(depth))
}

// SetOrphans records the orphan pool size.
func (m Engine) SetOrphans(n int) {
	engineOrphans.WithLabelValues(m.network).Set(float64(n))
}
