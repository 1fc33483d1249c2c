package journal

import (
	"errors"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

// Action is what happened to a block on the best chain.
type Action string

var (
	ActionConnect    Action = "connect"
	ActionDisconnect Action = "disconnect"
	// ActionFailure records an organizer pass that failed.
	ActionFailure Action = "failure"
)

// Entry is one journal row.
type Entry struct {
	Network    model.Network
	Action     Action
	Height     model.Depth
	Hash       chainhash.Hash
	TipDepth   model.Depth
	Error      string
	RecordedAt time.Time
}

// Entries flattens a reorganization event into rows: disconnects highest
// first, then connects lowest first, then a failure row if the pass failed.
// Shutdown events produce no rows.
func Entries(network model.Network, event model.ReorgEvent, now time.Time) []Entry {
	if errors.Is(event.Err, model.ErrServiceStopped) {
		return nil
	}

	tip := int64(event.Depth)
	fork := tip - int64(len(event.Added))
	entries := make([]Entry, 0, len(event.Removed)+len(event.Added)+1)
	for i, block := range event.Removed {
		entries = append(entries, Entry{
			Network:    network,
			Action:     ActionDisconnect,
			Height:     model.Depth(fork + int64(len(event.Removed)-i)),
			Hash:       block.BlockHash(),
			TipDepth:   event.Depth,
			RecordedAt: now,
		})
	}
	for i, block := range event.Added {
		entries = append(entries, Entry{
			Network:    network,
			Action:     ActionConnect,
			Height:     model.Depth(fork + 1 + int64(i)),
			Hash:       block.BlockHash(),
			TipDepth:   event.Depth,
			RecordedAt: now,
		})
	}
	if event.Err != nil {
		entries = append(entries, Entry{
			Network:    network,
			Action:     ActionFailure,
			Height:     event.Depth,
			TipDepth:   event.Depth,
			Error:      event.Err.Error(),
			RecordedAt: now,
		})
	}
	return entries
}
