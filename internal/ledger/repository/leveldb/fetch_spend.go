package leveldb

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

// FetchSpend returns the input that spent the output. When no spend exists
// the error tells an existing unspent output (model.ErrUnspent) apart from an
// output no confirmed transaction has (model.ErrUnknownOutput); both match
// model.ErrNotFound.
func (r *Repository) FetchSpend(ref model.OutputRef) (input model.InputRef, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("fetch_spend", err, started)
	}()

	raw, err := r.get(spendKey(ref))
	if err == nil {
		return model.DecodeInputRef(raw)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.InputRef{}, err
	}

	rawTx, err := r.get(txKey(ref.Hash))
	if errors.Is(err, model.ErrNotFound) {
		return model.InputRef{}, model.ErrUnknownOutput
	}
	if err != nil {
		return model.InputRef{}, err
	}
	_, tx, err := decodeTxRecord(rawTx)
	if err != nil {
		return model.InputRef{}, err
	}
	if int(ref.Index) >= len(tx.TxOut) {
		return model.InputRef{}, model.ErrUnknownOutput
	}
	return model.InputRef{}, model.ErrUnspent
}
