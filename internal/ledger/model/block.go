package model

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// BlockStatus describes where a stored block ended up.
type BlockStatus string

var (
	// BlockOrphan marks a block held by the orphan pool.
	BlockOrphan BlockStatus = "orphan"
	// BlockConfirmed marks a block on the best chain.
	BlockConfirmed BlockStatus = "confirmed"
)

// StoreResult is the outcome of storing a block. Depth is only meaningful for
// confirmed blocks.
type StoreResult struct {
	Status BlockStatus
	Depth  Depth
}

// BlockRecord is a confirmed block as persisted: its header and the hashes of
// the transactions it contains.
type BlockRecord struct {
	Depth    Depth
	Hash     chainhash.Hash
	Header   wire.BlockHeader
	TxHashes []chainhash.Hash
}

// TransactionIndex is the back-reference from a transaction to the confirmed
// block that contains it.
type TransactionIndex struct {
	Depth Depth
	Index uint32
}

// ChainTip is the best-chain pointer.
type ChainTip struct {
	Depth Depth
	Hash  chainhash.Hash
}

// ReorgEvent is delivered to reorganization subscribers once per organizer
// decision. Removed blocks are listed in disconnect order (highest first),
// added blocks in connect order (lowest first).
type ReorgEvent struct {
	Err     error
	Depth   Depth
	Added   []*wire.MsgBlock
	Removed []*wire.MsgBlock
}
