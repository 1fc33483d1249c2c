// Package ledgertest builds deterministic blocks and transactions for tests.
package ledgertest

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// Params are the chain parameters fixtures are built for.
var Params = &chaincfg.RegressionNetParams

// Address returns a pay-to-pubkey-hash address derived from seed.
func Address(seed byte) *btcutil.AddressPubKeyHash {
	hash := make([]byte, 20)
	for i := range hash {
		hash[i] = seed + byte(i)
	}
	addr, err := btcutil.NewAddressPubKeyHash(hash, Params)
	if err != nil {
		panic(err)
	}
	return addr
}

// PayTo returns the output script paying addr.
func PayTo(addr btcutil.Address) []byte {
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		panic(err)
	}
	return script
}

// Coinbase returns a coinbase transaction made unique by seed.
func Coinbase(seed uint32, outputs ...*wire.TxOut) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	sigScript := make([]byte, 4)
	binary.LittleEndian.PutUint32(sigScript, seed)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, math.MaxUint32), sigScript, nil))
	if len(outputs) == 0 {
		outputs = []*wire.TxOut{wire.NewTxOut(50, []byte{txscript.OP_TRUE})}
	}
	for _, out := range outputs {
		tx.AddTxOut(out)
	}
	return tx
}

// Spend returns a transaction spending the given outpoints.
func Spend(prev []wire.OutPoint, outputs ...*wire.TxOut) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	for i := range prev {
		tx.AddTxIn(wire.NewTxIn(&prev[i], nil, nil))
	}
	for _, out := range outputs {
		tx.AddTxOut(out)
	}
	return tx
}

// Output pays value to addr.
func Output(value int64, addr btcutil.Address) *wire.TxOut {
	return wire.NewTxOut(value, PayTo(addr))
}

// Block returns a block on top of prev. The nonce keeps sibling blocks
// distinct; a coinbase seeded by the nonce is added when txs is empty.
func Block(prev chainhash.Hash, nonce uint32, txs ...*wire.MsgTx) *wire.MsgBlock {
	if len(txs) == 0 {
		txs = []*wire.MsgTx{Coinbase(nonce)}
	}
	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    1,
			PrevBlock:  prev,
			MerkleRoot: txs[0].TxHash(),
			Timestamp:  time.Unix(1_700_000_000+int64(nonce), 0),
			Bits:       0x207fffff,
			Nonce:      nonce,
		},
	}
	for _, tx := range txs {
		_ = block.AddTransaction(tx)
	}
	return block
}

// Chain returns n linked coinbase-only blocks on top of prev, using nonces
// starting at firstNonce.
func Chain(prev chainhash.Hash, n int, firstNonce uint32) []*wire.MsgBlock {
	blocks := make([]*wire.MsgBlock, 0, n)
	for i := 0; i < n; i++ {
		block := Block(prev, firstNonce+uint32(i))
		blocks = append(blocks, block)
		prev = block.BlockHash()
	}
	return blocks
}

// Hashes returns the block hashes in order.
func Hashes(blocks []*wire.MsgBlock) []chainhash.Hash {
	hashes := make([]chainhash.Hash, 0, len(blocks))
	for _, block := range blocks {
		hashes = append(hashes, block.BlockHash())
	}
	return hashes
}

// TxHashes returns the hashes of the block's transactions in order.
func TxHashes(block *wire.MsgBlock) []chainhash.Hash {
	hashes := make([]chainhash.Hash, 0, len(block.Transactions))
	for _, tx := range block.Transactions {
		hashes = append(hashes, tx.TxHash())
	}
	return hashes
}
