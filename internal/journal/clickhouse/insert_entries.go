package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainkeeper/internal/journal"
)

const insertEntriesQuery = `
INSERT INTO chain_journal (
	network,
	action,
	height,
	hash,
	tip_depth,
	error,
	recorded_at
) VALUES`

// InsertEntries appends journal rows in one batch.
func (r *Repository) InsertEntries(ctx context.Context, entries []journal.Entry) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_entries", err, start)
	}()

	if len(entries) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertEntriesQuery)
	if err != nil {
		return fmt.Errorf("prepare journal batch: %w", err)
	}

	for _, entry := range entries {
		if err = batch.Append(
			string(entry.Network),
			string(entry.Action),
			entry.Height,
			hashString(entry),
			entry.TipDepth,
			entry.Error,
			entry.RecordedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append journal entry: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert journal entries: %w", err)
	}
	return nil
}

func hashString(entry journal.Entry) string {
	if entry.Action == journal.ActionFailure {
		return ""
	}
	return entry.Hash.String()
}
