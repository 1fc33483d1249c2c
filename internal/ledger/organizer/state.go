package organizer

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

// Kind is the position of a candidate block in the organizer state machine.
type Kind int

const (
	Unprocessed Kind = iota
	Orphan
	Confirmed
	Rejected
)

func (k Kind) String() string {
	switch k {
	case Unprocessed:
		return "unprocessed"
	case Orphan:
		return "orphan"
	case Confirmed:
		return "confirmed"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// BlockState is the state of one candidate block. Depth is set for confirmed
// blocks and for blocks rejected as duplicates of a confirmed one; Existing
// records which copy a duplicate collided with.
type BlockState struct {
	Kind     Kind
	Parent   chainhash.Hash
	Depth    model.Depth
	Existing Kind
	Reason   error
}

// Arrival is what is known about a received block before organization.
type Arrival struct {
	Parent chainhash.Hash
	// Confirmed is set when the block hash already has a confirmed index
	// entry at Depth.
	Confirmed bool
	Depth     model.Depth
	// Pooled reports whether the orphan pool accepted the block.
	Pooled bool
}

// Admit moves a received block out of Unprocessed: a confirmed copy or a
// refused pool insertion makes it a rejected duplicate, anything else waits
// in the pool as an orphan.
func Admit(a Arrival) BlockState {
	switch {
	case a.Confirmed:
		return BlockState{
			Kind:     Rejected,
			Parent:   a.Parent,
			Depth:    a.Depth,
			Existing: Confirmed,
			Reason:   model.ErrDuplicate,
		}
	case !a.Pooled:
		return BlockState{Kind: Rejected, Parent: a.Parent, Existing: Orphan, Reason: model.ErrDuplicate}
	default:
		return BlockState{Kind: Orphan, Parent: a.Parent}
	}
}

// Attach confirms an orphan at depth. Other states are returned unchanged.
func Attach(s BlockState, depth model.Depth) BlockState {
	if s.Kind != Orphan {
		return s
	}
	return BlockState{Kind: Confirmed, Parent: s.Parent, Depth: depth}
}

// Reject records a failed transition.
func Reject(s BlockState, reason error) BlockState {
	return BlockState{Kind: Rejected, Parent: s.Parent, Depth: s.Depth, Existing: s.Kind, Reason: reason}
}

// Settle applies the outcome of an organizer pass to an orphan: confirmed
// reports whether the block now has a confirmed index entry at depth.
func Settle(s BlockState, depth model.Depth, confirmed bool) BlockState {
	if !confirmed {
		return s
	}
	return Attach(s, depth)
}

// StoreResult maps the state to the outcome reported to the caller of store.
func (s BlockState) StoreResult() (model.StoreResult, error) {
	switch s.Kind {
	case Confirmed:
		return model.StoreResult{Status: model.BlockConfirmed, Depth: s.Depth}, nil
	case Orphan:
		return model.StoreResult{Status: model.BlockOrphan}, nil
	case Rejected:
		if s.Existing == Confirmed {
			return model.StoreResult{Status: model.BlockConfirmed, Depth: s.Depth}, s.Reason
		}
		return model.StoreResult{Status: model.BlockOrphan}, s.Reason
	default:
		return model.StoreResult{}, fmt.Errorf("block state %s has no store result", s.Kind)
	}
}
