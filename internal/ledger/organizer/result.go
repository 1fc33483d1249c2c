package organizer

import (
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

// Result is the net effect of one organizer pass. Removed is in disconnect
// order (highest first) and Added in connect order (lowest first); a block
// both connected and disconnected during the pass appears in neither.
type Result struct {
	Depth   model.Depth
	Added   []*wire.MsgBlock
	Removed []*wire.MsgBlock
}

// Changed reports whether the best chain moved.
func (r Result) Changed() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0
}

// Event converts the result into a reorganization notification.
func (r Result) Event(err error) model.ReorgEvent {
	return model.ReorgEvent{Err: err, Depth: r.Depth, Added: r.Added, Removed: r.Removed}
}

func (r *Result) connected(block *wire.MsgBlock) {
	if i := indexOf(r.Removed, block); i >= 0 {
		r.Removed = append(r.Removed[:i], r.Removed[i+1:]...)
		return
	}
	r.Added = append(r.Added, block)
}

func (r *Result) disconnected(block *wire.MsgBlock) {
	if i := indexOf(r.Added, block); i >= 0 {
		r.Added = append(r.Added[:i], r.Added[i+1:]...)
		return
	}
	r.Removed = append(r.Removed, block)
}

func indexOf(blocks []*wire.MsgBlock, block *wire.MsgBlock) int {
	hash := block.BlockHash()
	for i, b := range blocks {
		if b.BlockHash() == hash {
			return i
		}
	}
	return -1
}
