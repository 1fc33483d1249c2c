// Package leveldb implements the multi-index block store on goleveldb.
//
// The five logical tables (blocks by depth, blocks by hash, transactions,
// spends and the address index) share one database and are separated by a
// one byte key prefix, so that every block write is a single atomic batch.
// A Repository is not safe for concurrent use; the ledger service serializes
// all access through its strand.
package leveldb

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveCheckpoint(err error)
	}
)

// Compression selects the block compression of the underlying tables.
type Compression string

var (
	CompressionNone   Compression = "none"
	CompressionSnappy Compression = "snappy"
)

// DefaultCheckpointInterval is the number of saved blocks between forced
// durable checkpoints.
const DefaultCheckpointInterval = 2000

// Options tunes the underlying key-value engine.
type Options struct {
	// CacheSize is the memory budget; half of it backs the block cache.
	CacheSize int
	// WriteBufferSize is the memtable size before a flush to disk.
	WriteBufferSize int
	// BloomFilterBits is the bits-per-key of the bloom filter, 0 disables it.
	BloomFilterBits int
	Compression     Compression
	// MaxOpenFiles caps the open table file handles.
	MaxOpenFiles    int
	CreateIfMissing bool
	// CheckpointInterval is the number of saved blocks between checkpoints.
	CheckpointInterval int
	Params             *chaincfg.Params
}

// DefaultOptions returns a small-footprint tuning: 1 MiB of cache, a 10 bit
// bloom filter and no compression.
func DefaultOptions() Options {
	const cacheSize = 1 << 20
	return Options{
		CacheSize:          cacheSize,
		WriteBufferSize:    cacheSize / 4,
		BloomFilterBits:    10,
		Compression:        CompressionNone,
		MaxOpenFiles:       64,
		CreateIfMissing:    true,
		CheckpointInterval: DefaultCheckpointInterval,
		Params:             &chaincfg.MainNetParams,
	}
}

func (o Options) leveldb() (*opt.Options, error) {
	options := &opt.Options{
		BlockCacheCapacity:     o.CacheSize / 2,
		WriteBuffer:            o.WriteBufferSize,
		OpenFilesCacheCapacity: o.MaxOpenFiles,
		ErrorIfMissing:         !o.CreateIfMissing,
	}
	if o.BloomFilterBits > 0 {
		options.Filter = filter.NewBloomFilter(o.BloomFilterBits)
	}
	switch o.Compression {
	case CompressionNone, "":
		options.Compression = opt.NoCompression
	case CompressionSnappy:
		options.Compression = opt.SnappyCompression
	default:
		return nil, fmt.Errorf("unknown compression %q", o.Compression)
	}
	return options, nil
}

// Repository is the multi-index store.
type Repository struct {
	db      *leveldb.DB
	params  *chaincfg.Params
	metrics Metrics
	logger  *zap.Logger

	best *model.ChainTip

	checkpointInterval int
	writes             int
}

// NewRepository opens (or creates) the store at path.
func NewRepository(path string, options Options, metrics Metrics, logger *zap.Logger) (*Repository, error) {
	if path == "" {
		return nil, errors.New("leveldb path is required")
	}
	if options.Params == nil {
		return nil, errors.New("chain params are required")
	}

	ldbOptions, err := options.leveldb()
	if err != nil {
		return nil, err
	}
	db, err := leveldb.OpenFile(path, ldbOptions)
	if err != nil {
		return nil, model.OperationFailed("open leveldb", err)
	}

	interval := options.CheckpointInterval
	if interval <= 0 {
		interval = DefaultCheckpointInterval
	}
	r := &Repository{
		db:                 db,
		params:             options.Params,
		metrics:            metrics,
		logger:             logger,
		checkpointInterval: interval,
	}
	if err := r.loadTip(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

// Close releases the database handle.
func (r *Repository) Close() error {
	if err := r.db.Close(); err != nil {
		return model.OperationFailed("close leveldb", err)
	}
	return nil
}

func (r *Repository) loadTip() error {
	raw, err := r.db.Get(tipKey, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil
	}
	if err != nil {
		return model.OperationFailed("load chain tip", err)
	}
	tip, err := decodeTip(raw)
	if err != nil {
		return err
	}
	r.best = &tip
	return nil
}

func (r *Repository) get(key []byte) ([]byte, error) {
	value, err := r.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, model.OperationFailed("get", err)
	}
	return value, nil
}
