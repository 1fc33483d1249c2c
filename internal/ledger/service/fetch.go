package service

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/repository/leveldb"
)

func (e *Engine) FetchBlockByDepth(ctx context.Context, depth model.Depth) (model.BlockRecord, error) {
	return submit(ctx, e, "fetch_block_by_depth", func() (model.BlockRecord, error) {
		return e.repo.FetchBlockByDepth(depth)
	})
}

func (e *Engine) FetchBlockByHash(ctx context.Context, hash chainhash.Hash) (model.BlockRecord, error) {
	return submit(ctx, e, "fetch_block_by_hash", func() (model.BlockRecord, error) {
		return e.repo.FetchBlockByHash(hash)
	})
}

// FetchBlock returns the full confirmed block at depth.
func (e *Engine) FetchBlock(ctx context.Context, depth model.Depth) (*wire.MsgBlock, error) {
	return submit(ctx, e, "fetch_block", func() (*wire.MsgBlock, error) {
		return e.repo.FetchBlock(depth)
	})
}

func (e *Engine) FetchBlockTransactionHashesByDepth(ctx context.Context, depth model.Depth) ([]chainhash.Hash, error) {
	record, err := e.FetchBlockByDepth(ctx, depth)
	if err != nil {
		return nil, err
	}
	return record.TxHashes, nil
}

func (e *Engine) FetchBlockTransactionHashesByHash(ctx context.Context, hash chainhash.Hash) ([]chainhash.Hash, error) {
	record, err := e.FetchBlockByHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	return record.TxHashes, nil
}

func (e *Engine) FetchTransaction(ctx context.Context, hash chainhash.Hash) (*wire.MsgTx, error) {
	return submit(ctx, e, "fetch_transaction", func() (*wire.MsgTx, error) {
		return e.repo.FetchTransaction(hash)
	})
}

func (e *Engine) FetchTransactionIndex(ctx context.Context, hash chainhash.Hash) (model.TransactionIndex, error) {
	return submit(ctx, e, "fetch_transaction_index", func() (model.TransactionIndex, error) {
		return e.repo.FetchTransactionIndex(hash)
	})
}

// FetchSpend returns the input spending ref; see leveldb.Repository.FetchSpend
// for the two kinds of absence.
func (e *Engine) FetchSpend(ctx context.Context, ref model.OutputRef) (model.InputRef, error) {
	return submit(ctx, e, "fetch_spend", func() (model.InputRef, error) {
		return e.repo.FetchSpend(ref)
	})
}

// FetchOutputs rejects unsupported address types and addresses of other
// networks before queueing.
func (e *Engine) FetchOutputs(ctx context.Context, address btcutil.Address) ([]model.OutputRef, error) {
	if err := leveldb.CheckAddress(address, e.options.Store.Params); err != nil {
		return nil, err
	}
	return submit(ctx, e, "fetch_outputs", func() ([]model.OutputRef, error) {
		return e.repo.FetchOutputs(address)
	})
}

func (e *Engine) FetchBlockDepth(ctx context.Context, hash chainhash.Hash) (model.Depth, error) {
	return submit(ctx, e, "fetch_block_depth", func() (model.Depth, error) {
		return e.repo.FetchBlockDepth(hash)
	})
}

// FetchLastDepth returns model.ErrNotFound while no block is confirmed.
func (e *Engine) FetchLastDepth(ctx context.Context) (model.Depth, error) {
	return submit(ctx, e, "fetch_last_depth", func() (model.Depth, error) {
		return e.repo.FetchLastDepth()
	})
}
