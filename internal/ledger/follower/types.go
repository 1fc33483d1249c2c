package follower

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

type (
	// Source serves the blocks of the node being followed.
	Source interface {
		TipDepth(ctx context.Context) (model.Depth, error)
		HashAt(ctx context.Context, depth model.Depth) (chainhash.Hash, error)
		BlockAt(ctx context.Context, depth model.Depth) (*wire.MsgBlock, error)
	}
	// Ledger is the engine the blocks are stored into.
	Ledger interface {
		FetchLastDepth(ctx context.Context) (model.Depth, error)
		FetchBlockByDepth(ctx context.Context, depth model.Depth) (model.BlockRecord, error)
		Store(ctx context.Context, block *wire.MsgBlock) (model.StoreResult, error)
	}
	// Metrics records follower activity.
	Metrics interface {
		ObservePoll(err error)
		ObserveBatch(err error, blocks int, started time.Time)
	}
)
