package leveldb

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

// Save writes a confirmed block at depth and, in the same batch, its
// transactions, the spends of its inputs and the address index entries of its
// outputs. Saving a block again at the depth it already has is a no-op.
func (r *Repository) Save(depth model.Depth, block *wire.MsgBlock) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_block", err, started)
	}()

	hash := block.BlockHash()
	stored, lookupErr := r.fetchDepth(hash)
	switch {
	case lookupErr == nil && stored == depth:
		return nil
	case lookupErr == nil:
		return fmt.Errorf("block %s confirmed at depth %d: %w", hash, stored, model.ErrDuplicate)
	case !errors.Is(lookupErr, model.ErrNotFound):
		return lookupErr
	}
	if _, lookupErr = r.get(blockKey(depth)); lookupErr == nil {
		return fmt.Errorf("depth %d already holds a block: %w", depth, model.ErrDuplicate)
	} else if !errors.Is(lookupErr, model.ErrNotFound) {
		return lookupErr
	}

	batch := new(leveldb.Batch)
	record, err := encodeBlockRecord(block)
	if err != nil {
		return err
	}
	batch.Put(blockKey(depth), record)
	batch.Put(blockHashKey(hash), encodeDepth(depth))

	replaces := r.params.Net == wire.MainNet && isDuplicateCoinbaseBlock(hash)
	spent := make(map[model.OutputRef]struct{})
	confirmed := make(map[chainhash.Hash]struct{}, len(block.Transactions))
	entries := newAddressEntries(r)
	for i, tx := range block.Transactions {
		txHash := tx.TxHash()
		if _, ok := confirmed[txHash]; ok {
			return fmt.Errorf("transaction %s repeated in block: %w", txHash, model.ErrDuplicate)
		}
		confirmed[txHash] = struct{}{}
		if !replaces {
			if err := r.checkUnconfirmed(txHash); err != nil {
				return err
			}
		}
		txRecord, err := encodeTxRecord(model.TransactionIndex{Depth: depth, Index: uint32(i)}, tx)
		if err != nil {
			return err
		}
		batch.Put(txKey(txHash), txRecord)

		if !blockchain.IsCoinBaseTx(tx) {
			for j, in := range tx.TxIn {
				prev := model.OutputRefFromOutPoint(in.PreviousOutPoint)
				if err := r.checkUnspent(prev, spent); err != nil {
					return err
				}
				spent[prev] = struct{}{}
				batch.Put(spendKey(prev), model.InputRef{Hash: txHash, Index: uint32(j)}.Bytes())
			}
		}

		for k, out := range tx.TxOut {
			key, ok := r.outputAddressKey(out.PkScript)
			if !ok {
				continue
			}
			if err := entries.append(key, model.OutputRef{Hash: txHash, Index: uint32(k)}); err != nil {
				return err
			}
		}
	}
	entries.flush(batch)

	tip := r.best
	if tip == nil || depth > tip.Depth {
		tip = &model.ChainTip{Depth: depth, Hash: hash}
		batch.Put(tipKey, encodeTip(*tip))
	}

	if err = r.db.Write(batch, nil); err != nil {
		return model.OperationFailed("write block batch", err)
	}
	r.best = tip
	r.countWrite()
	return nil
}

// duplicateCoinbaseBlocks are the two mainnet blocks whose coinbase repeats
// the coinbase of an earlier block (the BIP0030 exceptions). Their records
// replace the earlier ones, as they do in the node's own index.
var duplicateCoinbaseBlocks = map[chainhash.Hash]struct{}{
	mustHash("00000000000a4d0a398161ffc163c503763b1f4360639393e0e4c8e300e0caec"): {},
	mustHash("00000000000743f190a18c5577a3c2d2a1f610ae9601ac046a38084ccb7cd721"): {},
}

func isDuplicateCoinbaseBlock(hash chainhash.Hash) bool {
	_, ok := duplicateCoinbaseBlocks[hash]
	return ok
}

func mustHash(s string) chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic(err)
	}
	return *hash
}

// checkUnconfirmed rejects a transaction another block already confirms, so
// a transaction record always points at the one block holding it.
func (r *Repository) checkUnconfirmed(hash chainhash.Hash) error {
	exists, err := r.db.Has(txKey(hash), nil)
	if err != nil {
		return model.OperationFailed("check transaction", err)
	}
	if exists {
		return fmt.Errorf("transaction %s already confirmed: %w", hash, model.ErrDuplicate)
	}
	return nil
}

func (r *Repository) checkUnspent(prev model.OutputRef, spent map[model.OutputRef]struct{}) error {
	if _, ok := spent[prev]; ok {
		return fmt.Errorf("output %s spent twice in block: %w", prev, model.ErrDuplicate)
	}
	exists, err := r.db.Has(spendKey(prev), nil)
	if err != nil {
		return model.OperationFailed("check spend", err)
	}
	if exists {
		return fmt.Errorf("output %s already spent: %w", prev, model.ErrDuplicate)
	}
	return nil
}

// addressEntries accumulates address index rewrites for one batch so several
// outputs paying the same address in one block extend a single value.
type addressEntries struct {
	repo   *Repository
	values map[string][]byte
	order  []string
}

func newAddressEntries(repo *Repository) *addressEntries {
	return &addressEntries{repo: repo, values: make(map[string][]byte)}
}

func (e *addressEntries) load(key []byte) ([]byte, error) {
	if value, ok := e.values[string(key)]; ok {
		return value, nil
	}
	value, err := e.repo.get(key)
	if errors.Is(err, model.ErrNotFound) {
		value, err = nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(value)%model.RefSize != 0 {
		return nil, fmt.Errorf("%w: address entry length %d", model.ErrCorruptRecord, len(value))
	}
	e.values[string(key)] = value
	e.order = append(e.order, string(key))
	return value, nil
}

func (e *addressEntries) append(key []byte, ref model.OutputRef) error {
	value, err := e.load(key)
	if err != nil {
		return err
	}
	e.values[string(key)] = append(value, ref.Bytes()...)
	return nil
}

func (e *addressEntries) flush(batch *leveldb.Batch) {
	for _, key := range e.order {
		value := e.values[key]
		if len(value) == 0 {
			batch.Delete([]byte(key))
			continue
		}
		batch.Put([]byte(key), value)
	}
}
