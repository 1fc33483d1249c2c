package leveldb

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

// Disconnect removes the confirmed block at depth, which must be the tip, and
// reverses its spends and address index contributions. The removed block is
// returned so it can be re-evaluated later. Disconnecting a depth above the
// tip returns a nil block and no error, so an interrupted reorganization can
// be replayed.
func (r *Repository) Disconnect(depth model.Depth) (block *wire.MsgBlock, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("disconnect_block", err, started)
	}()

	if r.best == nil || depth > r.best.Depth {
		return nil, nil
	}
	if depth != r.best.Depth {
		return nil, fmt.Errorf("disconnect depth %d below tip %d", depth, r.best.Depth)
	}

	block, err = r.fetchFullBlock(depth)
	if err != nil {
		return nil, err
	}

	batch := new(leveldb.Batch)
	batch.Delete(blockKey(depth))
	batch.Delete(blockHashKey(block.BlockHash()))

	own := make(map[chainhash.Hash]struct{}, len(block.Transactions))
	entries := newAddressEntries(r)
	for _, tx := range block.Transactions {
		txHash := tx.TxHash()
		own[txHash] = struct{}{}
		batch.Delete(txKey(txHash))
		if !blockchain.IsCoinBaseTx(tx) {
			for _, in := range tx.TxIn {
				batch.Delete(spendKey(model.OutputRefFromOutPoint(in.PreviousOutPoint)))
			}
		}
		for _, out := range tx.TxOut {
			key, ok := r.outputAddressKey(out.PkScript)
			if !ok {
				continue
			}
			if _, err := entries.load(key); err != nil {
				return nil, err
			}
		}
	}
	for _, key := range entries.order {
		entries.values[key] = stripOutputs(entries.values[key], own)
	}
	entries.flush(batch)

	var tip *model.ChainTip
	if depth == 0 {
		batch.Delete(tipKey)
	} else {
		tip = &model.ChainTip{Depth: depth - 1, Hash: block.Header.PrevBlock}
		batch.Put(tipKey, encodeTip(*tip))
	}

	if err = r.db.Write(batch, nil); err != nil {
		return nil, model.OperationFailed("write disconnect batch", err)
	}
	r.best = tip
	return block, nil
}

// stripOutputs drops every packed reference created by one of the owner
// transactions, keeping the append order of the rest.
func stripOutputs(value []byte, owners map[chainhash.Hash]struct{}) []byte {
	kept := make([]byte, 0, len(value))
	for off := 0; off+model.RefSize <= len(value); off += model.RefSize {
		var hash chainhash.Hash
		copy(hash[:], value[off:off+chainhash.HashSize])
		if _, ok := owners[hash]; ok {
			continue
		}
		kept = append(kept, value[off:off+model.RefSize]...)
	}
	return kept
}
