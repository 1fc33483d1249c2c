package leveldb

import (
	"time"

	"github.com/syndtr/goleveldb/leveldb/opt"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

// Checkpoint forces buffered writes to durable storage with a synced write of
// the current tip.
func (r *Repository) Checkpoint() (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("checkpoint", err, started)
	}()

	var tip model.ChainTip
	if r.best != nil {
		tip = *r.best
	}
	if err = r.db.Put(checkpointKey, encodeTip(tip), &opt.WriteOptions{Sync: true}); err != nil {
		return model.OperationFailed("checkpoint", err)
	}
	return nil
}

// countWrite advances the write counter and checkpoints every
// checkpointInterval saved blocks. A failed checkpoint does not fail the
// write that triggered it.
func (r *Repository) countWrite() {
	r.writes++
	if r.writes < r.checkpointInterval {
		return
	}
	r.writes = 0

	err := r.Checkpoint()
	r.metrics.ObserveCheckpoint(err)
	if err != nil {
		r.logger.Error("checkpoint failed", zap.Error(err))
		return
	}
	r.logger.Debug("checkpoint written", zap.Int("interval", r.checkpointInterval))
}
