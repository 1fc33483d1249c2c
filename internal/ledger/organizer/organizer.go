// Package organizer connects pooled blocks to the best chain and switches to
// a competing branch once it grows strictly deeper than the current tip.
package organizer

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainStore interface {
		Save(depth model.Depth, block *wire.MsgBlock) error
		Disconnect(depth model.Depth) (*wire.MsgBlock, error)
		FetchBlockDepth(hash chainhash.Hash) (model.Depth, error)
		Tip() (model.ChainTip, bool)
	}

	Pool interface {
		Add(block *wire.MsgBlock) bool
		TakeChildren(parent chainhash.Hash) []*wire.MsgBlock
		Children(parent chainhash.Hash) []*wire.MsgBlock
		Get(hash chainhash.Hash) (*wire.MsgBlock, bool)
		Remove(hash chainhash.Hash) bool
		Blocks() []*wire.MsgBlock
	}
)

// Organizer is not safe for concurrent use.
type Organizer struct {
	store  ChainStore
	pool   Pool
	logger *zap.Logger
}

func New(store ChainStore, pool Pool, logger *zap.Logger) *Organizer {
	return &Organizer{store: store, pool: pool, logger: logger}
}

// Organize runs until no pooled block can extend or replace the best chain.
// On failure the partial result reached so far is returned together with the
// error; steps already written are not rolled back.
func (o *Organizer) Organize() (Result, error) {
	var result Result
	for {
		changed, err := o.step(&result)
		if err != nil {
			result.Depth = o.tipDepth()
			return result, err
		}
		if !changed {
			break
		}
	}
	result.Depth = o.tipDepth()
	return result, nil
}

func (o *Organizer) tipDepth() model.Depth {
	tip, _ := o.store.Tip()
	return tip.Depth
}

func (o *Organizer) step(result *Result) (bool, error) {
	tip, ok := o.store.Tip()
	if !ok {
		children := o.pool.TakeChildren(chainhash.Hash{})
		if len(children) == 0 {
			return false, nil
		}
		return true, o.connect(o.pick(children), 0, result)
	}
	if children := o.pool.TakeChildren(tip.Hash); len(children) > 0 {
		return true, o.connect(o.pick(children), tip.Depth+1, result)
	}
	return o.switchBranch(tip, result)
}

// pick keeps the child with the deepest pooled descendant chain, the first
// one on ties, and returns the others to the pool.
func (o *Organizer) pick(children []*wire.MsgBlock) *wire.MsgBlock {
	best, bestHeight := 0, -1
	for i, child := range children {
		if height := o.descendantHeight(child.BlockHash()); height > bestHeight {
			best, bestHeight = i, height
		}
	}
	for i, child := range children {
		if i != best {
			o.pool.Add(child)
		}
	}
	return children[best]
}

func (o *Organizer) descendantHeight(hash chainhash.Hash) int {
	height := 0
	for _, child := range o.pool.Children(hash) {
		if h := 1 + o.descendantHeight(child.BlockHash()); h > height {
			height = h
		}
	}
	return height
}

type branch struct {
	blocks []*wire.MsgBlock
	fork   model.Depth
	reach  model.Depth
}

// switchBranch looks for a pooled branch rooted on a confirmed block whose
// tip would sit strictly deeper than the current one. Equal depth keeps the
// existing chain; between competing branches the first seen wins.
func (o *Organizer) switchBranch(tip model.ChainTip, result *Result) (bool, error) {
	var best *branch
	for _, block := range o.pool.Blocks() {
		blocks := o.branchTo(block)
		parent := blocks[0].Header.PrevBlock
		if parent == tip.Hash {
			continue
		}
		fork, err := o.store.FetchBlockDepth(parent)
		if errors.Is(err, model.ErrNotFound) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("fork point of %s: %w", block.BlockHash(), err)
		}
		reach := fork + model.Depth(len(blocks))
		if reach <= tip.Depth || (best != nil && reach <= best.reach) {
			continue
		}
		best = &branch{blocks: blocks, fork: fork, reach: reach}
	}
	if best == nil {
		return false, nil
	}
	return true, o.reorganize(tip, best, result)
}

// branchTo walks back from block through the pool and returns the pooled
// ancestry, root first.
func (o *Organizer) branchTo(block *wire.MsgBlock) []*wire.MsgBlock {
	blocks := []*wire.MsgBlock{block}
	for {
		parent, ok := o.pool.Get(blocks[len(blocks)-1].Header.PrevBlock)
		if !ok {
			break
		}
		blocks = append(blocks, parent)
	}
	for i, j := 0, len(blocks)-1; i < j; i, j = i+1, j-1 {
		blocks[i], blocks[j] = blocks[j], blocks[i]
	}
	return blocks
}

func (o *Organizer) reorganize(tip model.ChainTip, b *branch, result *Result) error {
	o.logger.Info("reorganizing",
		zap.Uint32("fork", b.fork),
		zap.Uint32("from", tip.Depth),
		zap.Uint32("to", b.reach),
	)
	for _, block := range b.blocks {
		o.pool.Remove(block.BlockHash())
	}

	for depth := tip.Depth; depth > b.fork; depth-- {
		block, err := o.store.Disconnect(depth)
		if err != nil {
			o.restore(b.blocks)
			return fmt.Errorf("disconnect block at depth %d: %w", depth, err)
		}
		if block == nil {
			continue
		}
		result.disconnected(block)
		o.pool.Add(block)
		o.logger.Debug("block disconnected",
			zap.Stringer("hash", block.BlockHash()),
			zap.Uint32("depth", depth),
		)
	}

	for i, block := range b.blocks {
		if err := o.connect(block, b.fork+1+model.Depth(i), result); err != nil {
			o.restore(b.blocks[i+1:])
			return err
		}
	}
	return nil
}

func (o *Organizer) restore(blocks []*wire.MsgBlock) {
	for _, block := range blocks {
		o.pool.Add(block)
	}
}

func (o *Organizer) connect(block *wire.MsgBlock, depth model.Depth, result *Result) error {
	hash := block.BlockHash()
	state := Attach(Admit(Arrival{Parent: block.Header.PrevBlock, Pooled: true}), depth)
	if err := o.store.Save(state.Depth, block); err != nil {
		state = Reject(state, err)
		o.logger.Warn("block rejected",
			zap.Stringer("hash", hash),
			zap.Uint32("depth", depth),
			zap.Error(state.Reason),
		)
		return fmt.Errorf("connect block %s at depth %d: %w", hash, depth, state.Reason)
	}
	result.connected(block)
	o.logger.Debug("block connected", zap.Stringer("hash", hash), zap.Uint32("depth", depth))
	return nil
}
