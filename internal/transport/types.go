package transport

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ledger interface {
		FetchLastDepth(ctx context.Context) (model.Depth, error)
		FetchBlockByDepth(ctx context.Context, depth model.Depth) (model.BlockRecord, error)
		FetchBlockByHash(ctx context.Context, hash chainhash.Hash) (model.BlockRecord, error)
		FetchTransaction(ctx context.Context, hash chainhash.Hash) (*wire.MsgTx, error)
		FetchTransactionIndex(ctx context.Context, hash chainhash.Hash) (model.TransactionIndex, error)
		FetchSpend(ctx context.Context, ref model.OutputRef) (model.InputRef, error)
		FetchOutputs(ctx context.Context, address btcutil.Address) ([]model.OutputRef, error)
	}

	Checker interface {
		Running() bool
	}
)
