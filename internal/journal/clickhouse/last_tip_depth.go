package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

const lastTipDepthQuery = `
SELECT tip_depth
FROM chain_journal
WHERE network = ? AND action != 'failure'
ORDER BY recorded_at DESC, tip_depth DESC
LIMIT 1`

// LastTipDepth returns the best-chain depth recorded by the newest journal
// row for network, false when the journal has none.
func (r *Repository) LastTipDepth(ctx context.Context, network model.Network) (depth model.Depth, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("last_tip_depth", err, start)
	}()

	rows, err := r.conn.Query(ctx, lastTipDepthQuery, string(network))
	if err != nil {
		return 0, false, fmt.Errorf("query last tip depth: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, false, fmt.Errorf("iterate last tip depth: %w", err)
		}
		return 0, false, nil
	}

	if err = rows.Scan(&depth); err != nil {
		return 0, false, fmt.Errorf("scan last tip depth: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate last tip depth: %w", err)
	}
	return depth, true, nil
}
