package leveldb

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

// FetchTransaction returns the body of a confirmed transaction.
func (r *Repository) FetchTransaction(hash chainhash.Hash) (tx *wire.MsgTx, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("fetch_transaction", err, started)
	}()

	raw, err := r.get(txKey(hash))
	if err != nil {
		return nil, err
	}
	_, tx, err = decodeTxRecord(raw)
	return tx, err
}

// FetchTransactionIndex returns the depth of the block containing the
// transaction and the transaction's position in it.
func (r *Repository) FetchTransactionIndex(hash chainhash.Hash) (index model.TransactionIndex, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("fetch_transaction_index", err, started)
	}()

	raw, err := r.get(txKey(hash))
	if err != nil {
		return model.TransactionIndex{}, err
	}
	return decodeTxIndex(raw)
}
