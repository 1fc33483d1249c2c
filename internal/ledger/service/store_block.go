package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/organizer"
)

// Store hands a block to the organizer. A block already confirmed or already
// pooled fails with model.ErrDuplicate together with the status and depth of
// the existing copy.
func (e *Engine) Store(ctx context.Context, block *wire.MsgBlock) (model.StoreResult, error) {
	return submit(ctx, e, "store", func() (model.StoreResult, error) {
		result, err := e.store(block)
		e.metrics.ObserveStore(result.Status, err)
		return result, err
	})
}

// Import writes a block at depth directly, bypassing the orphan pool, the
// organizer and notifications. It is meant for initial bulk loads. A block
// that is already confirmed fails with model.ErrDuplicate.
func (e *Engine) Import(ctx context.Context, block *wire.MsgBlock, depth model.Depth) error {
	_, err := submit(ctx, e, "import", func() (struct{}, error) {
		hash := block.BlockHash()
		stored, err := e.repo.FetchBlockDepth(hash)
		switch {
		case err == nil:
			return struct{}{}, fmt.Errorf("block %s confirmed at depth %d: %w", hash, stored, model.ErrDuplicate)
		case !errors.Is(err, model.ErrNotFound):
			return struct{}{}, err
		}
		return struct{}{}, e.repo.Save(depth, block)
	})
	return err
}

func (e *Engine) store(block *wire.MsgBlock) (model.StoreResult, error) {
	hash := block.BlockHash()
	arrival := organizer.Arrival{Parent: block.Header.PrevBlock}

	depth, err := e.repo.FetchBlockDepth(hash)
	switch {
	case err == nil:
		arrival.Confirmed, arrival.Depth = true, depth
	case errors.Is(err, model.ErrNotFound):
		arrival.Pooled = e.pool.Add(block)
	default:
		return model.StoreResult{}, err
	}

	state := organizer.Admit(arrival)
	if state.Kind == organizer.Rejected {
		return state.StoreResult()
	}

	result, err := e.organizer.Organize()
	e.metrics.SetOrphans(e.pool.Len())
	if result.Changed() {
		e.metrics.ObserveChainUpdate(len(result.Added), len(result.Removed), result.Depth)
	}
	if result.Changed() || err != nil {
		e.notifier.Notify(result.Event(err))
	}
	if err != nil {
		e.logger.Error("organize failed", zap.Stringer("hash", hash), zap.Error(err))
		return model.StoreResult{}, err
	}

	depth, err = e.repo.FetchBlockDepth(hash)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.StoreResult{}, err
	}
	return organizer.Settle(state, depth, err == nil).StoreResult()
}
