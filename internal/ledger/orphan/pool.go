// Package orphan holds blocks whose parent is not on the best chain yet.
//
// Besides real orphans the pool keeps side-chain blocks and blocks
// disconnected by a reorganization, so a losing fork stays available should
// it overtake the best chain later.
package orphan

import (
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/lightningnetwork/lnd/clock"
)

// DefaultCapacity is the number of blocks the pool holds before evicting.
const DefaultCapacity = 20

type entry struct {
	block      *wire.MsgBlock
	hash       chainhash.Hash
	expiration time.Time
}

// Pool is a capacity-bounded set of blocks indexed by hash and by parent hash.
//
// When full, expired entries are dropped first and then the oldest insertion,
// so eviction only depends on arrival order and the clock.
type Pool struct {
	mu       sync.RWMutex
	capacity int
	ttl      time.Duration
	clock    clock.Clock

	orphans     map[chainhash.Hash]*entry
	prevOrphans map[chainhash.Hash][]*entry
	// insertion order, oldest first
	order []*entry
}

// New creates a pool. A non-positive capacity selects DefaultCapacity and a
// zero ttl disables expiration.
func New(capacity int, ttl time.Duration, clk clock.Clock) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if clk == nil {
		clk = clock.NewDefaultClock()
	}
	return &Pool{
		capacity:    capacity,
		ttl:         ttl,
		clock:       clk,
		orphans:     make(map[chainhash.Hash]*entry),
		prevOrphans: make(map[chainhash.Hash][]*entry),
	}
}

// Add inserts the block and reports false when a block with the same hash is
// already pooled.
func (p *Pool) Add(block *wire.MsgBlock) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	hash := block.BlockHash()
	if _, ok := p.orphans[hash]; ok {
		return false
	}

	now := p.clock.Now()
	if p.ttl > 0 {
		for _, e := range append([]*entry(nil), p.order...) {
			if now.After(e.expiration) {
				p.remove(e)
			}
		}
	}
	for len(p.order) >= p.capacity {
		p.remove(p.order[0])
	}

	e := &entry{block: block, hash: hash}
	if p.ttl > 0 {
		e.expiration = now.Add(p.ttl)
	}
	p.orphans[hash] = e
	parent := block.Header.PrevBlock
	p.prevOrphans[parent] = append(p.prevOrphans[parent], e)
	p.order = append(p.order, e)
	return true
}

// TakeChildren removes and returns the pooled blocks whose parent is parent,
// in insertion order.
func (p *Pool) TakeChildren(parent chainhash.Hash) []*wire.MsgBlock {
	p.mu.Lock()
	defer p.mu.Unlock()

	children := p.prevOrphans[parent]
	if len(children) == 0 {
		return nil
	}
	blocks := make([]*wire.MsgBlock, 0, len(children))
	for _, e := range append([]*entry(nil), children...) {
		blocks = append(blocks, e.block)
		p.remove(e)
	}
	return blocks
}

// Children returns the pooled blocks whose parent is parent without removing
// them.
func (p *Pool) Children(parent chainhash.Hash) []*wire.MsgBlock {
	p.mu.RLock()
	defer p.mu.RUnlock()

	children := p.prevOrphans[parent]
	blocks := make([]*wire.MsgBlock, 0, len(children))
	for _, e := range children {
		blocks = append(blocks, e.block)
	}
	return blocks
}

// Contains reports whether a block with the hash is pooled.
func (p *Pool) Contains(hash chainhash.Hash) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.orphans[hash]
	return ok
}

// Get returns the pooled block with the hash.
func (p *Pool) Get(hash chainhash.Hash) (*wire.MsgBlock, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	e, ok := p.orphans[hash]
	if !ok {
		return nil, false
	}
	return e.block, true
}

// Remove drops the block with the hash and reports whether it was pooled.
func (p *Pool) Remove(hash chainhash.Hash) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.orphans[hash]
	if ok {
		p.remove(e)
	}
	return ok
}

// Len returns the number of pooled blocks.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.order)
}

// Blocks returns the pooled blocks, oldest insertion first.
func (p *Pool) Blocks() []*wire.MsgBlock {
	p.mu.RLock()
	defer p.mu.RUnlock()
	blocks := make([]*wire.MsgBlock, 0, len(p.order))
	for _, e := range p.order {
		blocks = append(blocks, e.block)
	}
	return blocks
}

func (p *Pool) remove(e *entry) {
	delete(p.orphans, e.hash)

	parent := e.block.Header.PrevBlock
	siblings := p.prevOrphans[parent]
	for i, sibling := range siblings {
		if sibling == e {
			siblings = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	if len(siblings) == 0 {
		delete(p.prevOrphans, parent)
	} else {
		p.prevOrphans[parent] = siblings
	}

	for i, o := range p.order {
		if o == e {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}
