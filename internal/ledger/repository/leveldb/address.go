package leveldb

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
)

// outputAddressKey returns the address index key an output script pays to.
// Pay-to-pubkey outputs are indexed under the hash of their key, the same
// identity a pay-to-pubkey-hash address has.
func (r *Repository) outputAddressKey(pkScript []byte) ([]byte, bool) {
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, r.params)
	if err != nil || len(addrs) != 1 {
		return nil, false
	}
	switch addr := addrs[0].(type) {
	case *btcutil.AddressPubKeyHash:
		return addressKey(r.params.PubKeyHashAddrID, addr.Hash160()[:]), true
	case *btcutil.AddressPubKey:
		return addressKey(r.params.PubKeyHashAddrID, addr.AddressPubKeyHash().Hash160()[:]), true
	default:
		return nil, false
	}
}
