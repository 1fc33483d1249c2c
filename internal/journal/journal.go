// Package journal records every change of the best chain to an external
// store. It subscribes to reorganization events and writes them in batches.
package journal

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/lightningnetwork/lnd/clock"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
	"github.com/goodnatureofminers/chainkeeper/pkg/batcher"
)

type (
	// Repository persists journal rows.
	Repository interface {
		InsertEntries(ctx context.Context, entries []Entry) error
	}
	// Metrics records entries lost before reaching the repository.
	Metrics interface {
		ObserveDropped(entries int)
	}
)

// Options tunes batching.
type Options struct {
	FlushSize     int
	FlushInterval time.Duration
	// RPS caps flushes per second.
	RPS int
	// AddTimeout bounds how long an event may wait for buffer space.
	AddTimeout time.Duration
	Clock      clock.Clock
}

// DefaultOptions returns the daemon defaults.
func DefaultOptions() Options {
	return Options{
		FlushSize:     500,
		FlushInterval: time.Second,
		RPS:           10,
		AddTimeout:    time.Second,
	}
}

// Journal turns reorganization events into batched repository writes.
type Journal struct {
	network model.Network
	options Options
	metrics Metrics
	logger  *zap.Logger
	batcher *batcher.Batcher[Entry]
}

func New(repo Repository, metrics Metrics, network model.Network, options Options, logger *zap.Logger) *Journal {
	defaults := DefaultOptions()
	if options.FlushSize < 1 {
		options.FlushSize = defaults.FlushSize
	}
	if options.FlushInterval <= 0 {
		options.FlushInterval = defaults.FlushInterval
	}
	if options.RPS < 1 {
		options.RPS = defaults.RPS
	}
	if options.AddTimeout <= 0 {
		options.AddTimeout = defaults.AddTimeout
	}
	if options.Clock == nil {
		options.Clock = clock.NewDefaultClock()
	}
	return &Journal{
		network: network,
		options: options,
		metrics: metrics,
		logger:  logger,
		batcher: batcher.New(logger.Named("batcher"), repo.InsertEntries, options.FlushSize, options.FlushInterval, options.RPS),
	}
}

// Start begins flushing in the background.
func (j *Journal) Start(ctx context.Context) {
	j.batcher.Start(ctx)
}

// Stop flushes queued entries and waits for the last write.
func (j *Journal) Stop() {
	j.batcher.Stop()
}

// Handle queues the rows of one event. It runs on the engine's strand, so it
// gives up after AddTimeout instead of stalling the ledger.
func (j *Journal) Handle(event model.ReorgEvent) {
	entries := Entries(j.network, event, j.options.Clock.Now().UTC())
	if len(entries) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), j.options.AddTimeout)
	defer cancel()
	for i, entry := range entries {
		if err := j.batcher.Add(ctx, entry); err != nil {
			dropped := len(entries) - i
			j.metrics.ObserveDropped(dropped)
			j.logger.Warn("journal entries dropped",
				zap.Int("dropped", dropped),
				zap.Uint32("tip_depth", event.Depth),
				zap.Error(err),
			)
			return
		}
	}
}
