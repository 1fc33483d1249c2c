package bitcoin

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
	"github.com/goodnatureofminers/chainkeeper/pkg/safe"
)

// RPCClient wraps a node client with metrics instrumentation.
type RPCClient struct {
	client     NodeClient
	rpcMetrics RPCMetrics
}

// NewRPCClient constructs an instrumented RPC client.
func NewRPCClient(client NodeClient, rpcMetrics RPCMetrics) *RPCClient {
	return &RPCClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// Dial connects to bitcoind in HTTP POST mode.
func Dial(host, user, pass string, disableTLS bool) (*rpcclient.Client, error) {
	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         host,
		User:         user,
		Pass:         pass,
		HTTPPostMode: true,
		DisableTLS:   disableTLS,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("connect to node %s: %w", host, err)
	}
	return client, nil
}

// GetBlockCount returns the height of the node's best block.
func (r *RPCClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

// GetBlockHash returns the block hash for a height.
func (r *RPCClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}

// GetBlock returns the full block for a hash.
func (r *RPCClient) GetBlock(blockHash *chainhash.Hash) (block *wire.MsgBlock, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block", err, started)
	}()
	return r.client.GetBlock(blockHash)
}

// TipDepth returns the node's best height as a ledger depth.
func (r *RPCClient) TipDepth(ctx context.Context) (model.Depth, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := r.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	depth, err := safe.Uint32(count)
	if err != nil {
		return 0, fmt.Errorf("node height: %w", err)
	}
	return depth, nil
}

// HashAt returns the hash of the node's block at depth.
func (r *RPCClient) HashAt(ctx context.Context, depth model.Depth) (chainhash.Hash, error) {
	if err := ctx.Err(); err != nil {
		return chainhash.Hash{}, err
	}
	hash, err := r.GetBlockHash(int64(depth))
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("get block hash at %d: %w", depth, err)
	}
	return *hash, nil
}

// BlockAt fetches the block the node has at depth.
func (r *RPCClient) BlockAt(ctx context.Context, depth model.Depth) (*wire.MsgBlock, error) {
	hash, err := r.HashAt(ctx, depth)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	block, err := r.GetBlock(&hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	return block, nil
}
