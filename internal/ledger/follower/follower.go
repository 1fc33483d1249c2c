// Package follower keeps the ledger in step with a bitcoin node: it polls the
// node tip, fetches missing blocks concurrently and stores them in height
// order.
package follower

import (
	"context"
	"errors"
	"fmt"
	"time"

	lndclock "github.com/lightningnetwork/lnd/clock"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainkeeper/internal/clock"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/orphan"
	"github.com/goodnatureofminers/chainkeeper/pkg/workerpool"
)

// ErrDiverged is returned when the node shares no block with the ledger
// within the rewind window.
var ErrDiverged = errors.New("node chain diverged from ledger")

// Options tunes the follower loop.
type Options struct {
	Workers          int
	BatchSize        int
	PollInterval     time.Duration
	RetryInterval    time.Duration
	MaxRetryInterval time.Duration
	// MaxRewind bounds how far back a fork point is searched.
	MaxRewind int
	// PoolCapacity is the orphan pool capacity of the ledger. A branch forking
	// at the rewind limit is pooled whole before it outgrows the best chain,
	// so MaxRewind is kept below it. Zero leaves MaxRewind as is.
	PoolCapacity int
	Clock        lndclock.Clock
}

// DefaultOptions returns the daemon defaults.
func DefaultOptions() Options {
	return Options{
		Workers:          4,
		BatchSize:        50,
		PollInterval:     10 * time.Second,
		RetryInterval:    time.Second,
		MaxRetryInterval: time.Minute,
		MaxRewind:        orphan.DefaultCapacity - 1,
		PoolCapacity:     orphan.DefaultCapacity,
	}
}

// Follower feeds node blocks into the ledger.
type Follower struct {
	source      Source
	ledger      Ledger
	metrics     Metrics
	options     Options
	logger      *zap.Logger
	blockSignal <-chan struct{}
}

// New builds a Follower. blockSignal may be nil, otherwise every receive
// wakes the loop before the poll interval elapses.
func New(source Source, ledger Ledger, metrics Metrics, options Options, logger *zap.Logger, blockSignal <-chan struct{}) *Follower {
	defaults := DefaultOptions()
	if options.Workers < 1 {
		options.Workers = defaults.Workers
	}
	if options.BatchSize < 1 {
		options.BatchSize = defaults.BatchSize
	}
	if options.PollInterval <= 0 {
		options.PollInterval = defaults.PollInterval
	}
	if options.RetryInterval <= 0 {
		options.RetryInterval = defaults.RetryInterval
	}
	if options.MaxRetryInterval < options.RetryInterval {
		options.MaxRetryInterval = options.RetryInterval
	}
	if options.MaxRewind <= 0 {
		options.MaxRewind = defaults.MaxRewind
	}
	if options.PoolCapacity > 0 && options.MaxRewind >= options.PoolCapacity {
		logger.Warn("max rewind exceeds the orphan pool, lowering it",
			zap.Int("max_rewind", options.MaxRewind),
			zap.Int("pool_capacity", options.PoolCapacity),
		)
		options.MaxRewind = options.PoolCapacity - 1
	}
	if options.Clock == nil {
		options.Clock = lndclock.NewDefaultClock()
	}
	return &Follower{
		source:      source,
		ledger:      ledger,
		metrics:     metrics,
		options:     options,
		logger:      logger,
		blockSignal: blockSignal,
	}
}

// Run follows the node until the context is canceled, the ledger stops or
// the chains diverge.
func (f *Follower) Run(ctx context.Context) error {
	var backoff time.Duration
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := f.run(ctx)
		if err == nil {
			backoff = 0
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, ErrDiverged) || errors.Is(err, model.ErrServiceStopped) {
			return err
		}
		backoff = clock.Backoff(backoff, f.options.RetryInterval, f.options.MaxRetryInterval)
		f.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", backoff))
		if err := clock.Sleep(ctx, f.options.Clock, backoff); err != nil {
			return err
		}
	}
}

func (f *Follower) run(ctx context.Context) error {
	tip, err := f.source.TipDepth(ctx)
	f.metrics.ObservePoll(err)
	if err != nil {
		return fmt.Errorf("poll node tip: %w", err)
	}

	next, err := f.resume(ctx, tip)
	if err != nil {
		return err
	}
	if next > tip {
		f.logger.Debug("ledger is at node tip", zap.Uint32("tip", tip), zap.Duration("sleep", f.options.PollInterval))
		return f.wait(ctx, f.options.PollInterval)
	}

	end := tip
	if span := tip - next; span >= uint32(f.options.BatchSize) {
		end = next + uint32(f.options.BatchSize) - 1
	}
	depths := make([]model.Depth, 0, end-next+1)
	for d := next; d <= end; d++ {
		depths = append(depths, d)
	}

	started := time.Now()
	err = f.process(ctx, depths)
	f.metrics.ObserveBatch(err, len(depths), started)
	if err != nil {
		return err
	}
	if end < tip {
		return nil
	}
	return f.wait(ctx, f.options.PollInterval)
}

// process fetches the blocks concurrently and stores them lowest first.
func (f *Follower) process(ctx context.Context, depths []model.Depth) error {
	blocks, err := workerpool.Map(ctx, f.options.Workers, depths, f.source.BlockAt)
	if err != nil {
		return fmt.Errorf("fetch blocks %d..%d: %w", depths[0], depths[len(depths)-1], err)
	}

	var orphans, duplicates int
	for i, block := range blocks {
		result, err := f.ledger.Store(ctx, block)
		switch {
		case errors.Is(err, model.ErrDuplicate):
			// refetched after a rewind
			duplicates++
		case err != nil:
			return fmt.Errorf("store block %s at %d: %w", block.BlockHash(), depths[i], err)
		case result.Status == model.BlockOrphan:
			orphans++
		}
	}
	f.logger.Info("stored node blocks",
		zap.Uint32("from", depths[0]),
		zap.Uint32("to", depths[len(depths)-1]),
		zap.Int("orphans", orphans),
		zap.Int("duplicates", duplicates),
	)
	return nil
}

func (f *Follower) wait(ctx context.Context, d time.Duration) error {
	if f.blockSignal == nil {
		return clock.Sleep(ctx, f.options.Clock, d)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.blockSignal:
		return nil
	case <-f.options.Clock.TickAfter(d):
		return nil
	}
}
