package follower

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

// resume returns the first depth to fetch from the node. When the node has
// switched branches it walks back to the last block both chains share, so the
// node's branch is stored from its fork point and the organizer can adopt it.
func (f *Follower) resume(ctx context.Context, tip model.Depth) (model.Depth, error) {
	last, err := f.ledger.FetchLastDepth(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("fetch ledger depth: %w", err)
	}

	start := min(last, tip)
	depth := start
	for steps := 0; ; steps++ {
		record, err := f.ledger.FetchBlockByDepth(ctx, depth)
		if err != nil {
			return 0, fmt.Errorf("fetch ledger block at %d: %w", depth, err)
		}
		hash, err := f.source.HashAt(ctx, depth)
		if err != nil {
			return 0, fmt.Errorf("fetch node hash at %d: %w", depth, err)
		}
		if hash == record.Hash {
			if depth < start {
				f.logger.Info("node is on another branch, rewinding",
					zap.Uint32("ledger_depth", last),
					zap.Uint32("fork_depth", depth),
				)
			}
			return depth + 1, nil
		}
		if depth == 0 || steps >= f.options.MaxRewind {
			return 0, fmt.Errorf("%w: no shared block between depth %d and %d", ErrDiverged, depth, last)
		}
		depth--
	}
}
