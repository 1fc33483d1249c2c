package leveldb

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

// FetchBlockByDepth returns the confirmed block record at depth.
func (r *Repository) FetchBlockByDepth(depth model.Depth) (record model.BlockRecord, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("fetch_block_by_depth", err, started)
	}()
	return r.fetchRecord(depth)
}

// FetchBlockByHash returns the confirmed block record with the given hash.
func (r *Repository) FetchBlockByHash(hash chainhash.Hash) (record model.BlockRecord, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("fetch_block_by_hash", err, started)
	}()

	depth, err := r.fetchDepth(hash)
	if err != nil {
		return model.BlockRecord{}, err
	}
	return r.fetchRecord(depth)
}

// FetchBlock reassembles the full confirmed block at depth.
func (r *Repository) FetchBlock(depth model.Depth) (block *wire.MsgBlock, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("fetch_block", err, started)
	}()
	return r.fetchFullBlock(depth)
}

// FetchBlockDepth returns the depth of a confirmed block.
func (r *Repository) FetchBlockDepth(hash chainhash.Hash) (depth model.Depth, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("fetch_block_depth", err, started)
	}()
	return r.fetchDepth(hash)
}

// FetchLastDepth returns the depth of the best chain tip.
func (r *Repository) FetchLastDepth() (model.Depth, error) {
	if r.best == nil {
		return 0, model.ErrNotFound
	}
	return r.best.Depth, nil
}

// Tip returns the best-chain pointer, false while the store is empty.
func (r *Repository) Tip() (model.ChainTip, bool) {
	if r.best == nil {
		return model.ChainTip{}, false
	}
	return *r.best, true
}

func (r *Repository) fetchDepth(hash chainhash.Hash) (model.Depth, error) {
	raw, err := r.get(blockHashKey(hash))
	if err != nil {
		return 0, err
	}
	return decodeDepth(raw)
}

func (r *Repository) fetchRecord(depth model.Depth) (model.BlockRecord, error) {
	raw, err := r.get(blockKey(depth))
	if err != nil {
		return model.BlockRecord{}, err
	}
	return decodeBlockRecord(depth, raw)
}

func (r *Repository) fetchFullBlock(depth model.Depth) (*wire.MsgBlock, error) {
	record, err := r.fetchRecord(depth)
	if err != nil {
		return nil, err
	}
	block := &wire.MsgBlock{
		Header:       record.Header,
		Transactions: make([]*wire.MsgTx, 0, len(record.TxHashes)),
	}
	for _, txHash := range record.TxHashes {
		raw, err := r.get(txKey(txHash))
		if err != nil {
			return nil, fmt.Errorf("transaction %s of block at depth %d: %w", txHash, depth, err)
		}
		_, tx, err := decodeTxRecord(raw)
		if err != nil {
			return nil, err
		}
		block.Transactions = append(block.Transactions, tx)
	}
	return block, nil
}
