package leveldb

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

// CheckAddress reports whether the address index can serve the address.
// Only pay-to-pubkey-hash addresses of the indexed network are served.
func CheckAddress(address btcutil.Address, params *chaincfg.Params) error {
	if _, ok := address.(*btcutil.AddressPubKeyHash); !ok {
		return fmt.Errorf("%T: %w", address, model.ErrUnsupportedAddressType)
	}
	if !address.IsForNet(params) {
		return fmt.Errorf("%s is not a %s address: %w", address, params.Name, model.ErrUnsupportedAddressType)
	}
	return nil
}

// FetchOutputs returns the outputs paid to the address in append order. An
// address nothing was paid to yields an empty list.
func (r *Repository) FetchOutputs(address btcutil.Address) (refs []model.OutputRef, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("fetch_outputs", err, started)
	}()

	if err = CheckAddress(address, r.params); err != nil {
		return nil, err
	}
	pkh := address.(*btcutil.AddressPubKeyHash)

	raw, err := r.get(addressKey(r.params.PubKeyHashAddrID, pkh.Hash160()[:]))
	if errors.Is(err, model.ErrNotFound) {
		return []model.OutputRef{}, nil
	}
	if err != nil {
		return nil, err
	}
	return model.DecodeOutputRefs(raw)
}
