// Package service is the caller boundary of the ledger: it owns the store,
// the orphan pool and the organizer and runs every operation on one strand.
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lightningnetwork/lnd/clock"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainkeeper/internal/dirlock"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/notifier"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/organizer"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/orphan"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/repository/leveldb"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/strand"
)

// LockFile is created in the storage directory and locked while the engine
// runs.
const LockFile = "db-lock"

// Options configures an Engine.
type Options struct {
	Store          leveldb.Options
	OrphanCapacity int
	// OrphanTTL expires pooled blocks, zero keeps them until evicted.
	OrphanTTL time.Duration
	Clock     clock.Clock
}

// Engine stores blocks, organizes the best chain and answers queries.
type Engine struct {
	options      Options
	metrics      Metrics
	storeMetrics leveldb.Metrics
	logger       *zap.Logger
	notifier     *notifier.Notifier

	mu      sync.Mutex
	running bool
	lock    *dirlock.Lock
	strand  *strand.Strand

	// owned by the strand
	repo      *leveldb.Repository
	pool      *orphan.Pool
	organizer *organizer.Organizer
}

func New(options Options, metrics Metrics, storeMetrics leveldb.Metrics, logger *zap.Logger) *Engine {
	return &Engine{
		options:      options,
		metrics:      metrics,
		storeMetrics: storeMetrics,
		logger:       logger,
		notifier:     notifier.New(),
	}
}

// Start locks the storage directory at path and opens the store. It fails
// with model.ErrLockUnavailable when another engine holds the directory.
func (e *Engine) Start(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return errors.New("engine already started")
	}
	if e.strand != nil {
		return model.ErrServiceStopped
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return model.OperationFailed("create storage directory", err)
	}
	lock, err := dirlock.Acquire(filepath.Join(path, LockFile))
	if errors.Is(err, dirlock.ErrLocked) {
		return fmt.Errorf("%w: %s", model.ErrLockUnavailable, path)
	}
	if err != nil {
		return model.OperationFailed("lock storage directory", err)
	}

	repo, err := leveldb.NewRepository(path, e.options.Store, e.storeMetrics, e.logger.Named("store"))
	if err != nil {
		_ = lock.Release()
		return err
	}

	e.lock = lock
	e.repo = repo
	e.pool = orphan.New(e.options.OrphanCapacity, e.options.OrphanTTL, e.options.Clock)
	e.organizer = organizer.New(repo, e.pool, e.logger.Named("organizer"))
	e.strand = strand.New(e.logger.Named("strand"))
	e.running = true

	tip, ok := repo.Tip()
	e.logger.Info("engine started",
		zap.String("path", path),
		zap.Bool("empty", !ok),
		zap.Uint32("tip_depth", tip.Depth),
		zap.Stringer("tip_hash", tip.Hash),
	)
	return nil
}

// Stop runs every call submitted before it, tells subscribers the service
// stopped and releases the store. Later calls fail with
// model.ErrServiceStopped.
func (e *Engine) Stop() error {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return nil
	}
	e.running = false
	s := e.strand
	e.mu.Unlock()

	s.Stop()
	e.notifier.Stop()

	var errs []error
	if err := e.repo.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := e.lock.Release(); err != nil {
		errs = append(errs, err)
	}
	e.logger.Info("engine stopped")
	return errors.Join(errs...)
}

// Running reports whether the engine accepts calls.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// SubscribeReorganize registers handler for best chain changes. Handlers run
// on the strand and must not call back into the engine synchronously.
func (e *Engine) SubscribeReorganize(handler notifier.Handler) error {
	return e.notifier.Subscribe(handler)
}

type outcome[T any] struct {
	value T
	err   error
}

// submit runs fn on the strand and waits for its result or ctx. Once
// submitted, fn runs even if the caller stops waiting. A panic in fn is
// returned as model.ErrOperationFailed.
func submit[T any](ctx context.Context, e *Engine, operation string, fn func() (T, error)) (value T, err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe(operation, err, started)
	}()

	e.mu.Lock()
	s := e.strand
	e.mu.Unlock()
	if s == nil {
		return value, model.ErrServiceStopped
	}

	done := make(chan outcome[T], 1)
	if err = s.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				e.logger.Error("operation panicked", zap.String("operation", operation), zap.Any("panic", r))
				done <- outcome[T]{err: model.OperationFailed(operation, fmt.Errorf("panic: %v", r))}
			}
		}()
		v, err := fn()
		done <- outcome[T]{value: v, err: err}
	}); err != nil {
		return value, err
	}

	select {
	case o := <-done:
		return o.value, o.err
	case <-ctx.Done():
		return value, ctx.Err()
	}
}
