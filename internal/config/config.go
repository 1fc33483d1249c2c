// Package config loads the optional TOML tuning file of the ledger daemon.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/goodnatureofminers/chainkeeper/internal/journal"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/follower"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/orphan"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/repository/leveldb"
	"github.com/goodnatureofminers/chainkeeper/internal/ledger/service"
)

// Config is the daemon tuning. Every field has a default, so the file only
// needs the values that differ.
type Config struct {
	Storage  StorageConfig  `toml:"storage"`
	Orphans  OrphansConfig  `toml:"orphans"`
	Follower FollowerConfig `toml:"follower"`
	Journal  JournalConfig  `toml:"journal"`
}

// StorageConfig tunes the leveldb store.
type StorageConfig struct {
	CacheSize       int    `toml:"cache_size"`
	WriteBufferSize int    `toml:"write_buffer_size"`
	BloomFilterBits int    `toml:"bloom_filter_bits"`
	Compression     string `toml:"compression"`
	MaxOpenFiles    int    `toml:"max_open_files"`
	CreateIfMissing bool   `toml:"create_if_missing"`
	// CheckpointInterval is the number of saved blocks between forced syncs.
	CheckpointInterval int `toml:"checkpoint_interval"`
}

// OrphansConfig bounds the orphan pool.
type OrphansConfig struct {
	Capacity int `toml:"capacity"`
	// TTL of a pooled block, zero disables expiry.
	TTL Duration `toml:"ttl"`
}

// FollowerConfig tunes the node follower.
type FollowerConfig struct {
	Workers      int      `toml:"workers"`
	BatchSize    int      `toml:"batch_size"`
	PollInterval Duration `toml:"poll_interval"`
	MaxRewind    int      `toml:"max_rewind"`
}

// JournalConfig tunes journal batching.
type JournalConfig struct {
	FlushSize     int      `toml:"flush_size"`
	FlushInterval Duration `toml:"flush_interval"`
	RPS           int      `toml:"rps"`
}

// Duration is a time.Duration read from a TOML string such as "30s".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// DefaultConfig returns the built-in tuning.
func DefaultConfig() *Config {
	store := leveldb.DefaultOptions()
	follow := follower.DefaultOptions()
	journ := journal.DefaultOptions()
	return &Config{
		Storage: StorageConfig{
			CacheSize:          store.CacheSize,
			WriteBufferSize:    store.WriteBufferSize,
			BloomFilterBits:    store.BloomFilterBits,
			Compression:        string(store.Compression),
			MaxOpenFiles:       store.MaxOpenFiles,
			CreateIfMissing:    store.CreateIfMissing,
			CheckpointInterval: store.CheckpointInterval,
		},
		Orphans: OrphansConfig{
			Capacity: orphan.DefaultCapacity,
			TTL:      Duration(time.Hour),
		},
		Follower: FollowerConfig{
			Workers:      follow.Workers,
			BatchSize:    follow.BatchSize,
			PollInterval: Duration(follow.PollInterval),
			MaxRewind:    follow.MaxRewind,
		},
		Journal: JournalConfig{
			FlushSize:     journ.FlushSize,
			FlushInterval: Duration(journ.FlushInterval),
			RPS:           journ.RPS,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parsing config file: unknown key %q", undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

var (
	ErrInvalidCacheSize          = errors.New("storage cache_size must be positive")
	ErrInvalidWriteBufferSize    = errors.New("storage write_buffer_size must be positive")
	ErrInvalidBloomFilterBits    = errors.New("storage bloom_filter_bits must be non-negative")
	ErrInvalidCompression        = errors.New("storage compression must be 'none' or 'snappy'")
	ErrInvalidMaxOpenFiles       = errors.New("storage max_open_files must be positive")
	ErrInvalidCheckpointInterval = errors.New("storage checkpoint_interval must be non-negative")
	ErrInvalidOrphanCapacity     = errors.New("orphans capacity must be positive")
	ErrInvalidOrphanTTL          = errors.New("orphans ttl must be non-negative")
	ErrInvalidWorkers            = errors.New("follower workers must be positive")
	ErrInvalidBatchSize          = errors.New("follower batch_size must be positive")
	ErrInvalidPollInterval       = errors.New("follower poll_interval must be positive")
	ErrInvalidMaxRewind          = errors.New("follower max_rewind must be positive")
	ErrMaxRewindExceedsOrphans   = errors.New("follower max_rewind must be below orphans capacity")
	ErrInvalidFlushSize          = errors.New("journal flush_size must be positive")
	ErrInvalidFlushInterval      = errors.New("journal flush_interval must be positive")
	ErrInvalidRPS                = errors.New("journal rps must be positive")
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("storage config: %w", err)
	}
	if err := c.Orphans.Validate(); err != nil {
		return fmt.Errorf("orphans config: %w", err)
	}
	if err := c.Follower.Validate(); err != nil {
		return fmt.Errorf("follower config: %w", err)
	}
	// a branch forking max_rewind blocks below the tip is pooled whole
	// before it can replace the best chain
	if c.Follower.MaxRewind >= c.Orphans.Capacity {
		return fmt.Errorf("follower config: %w (%d >= %d)", ErrMaxRewindExceedsOrphans, c.Follower.MaxRewind, c.Orphans.Capacity)
	}
	if err := c.Journal.Validate(); err != nil {
		return fmt.Errorf("journal config: %w", err)
	}
	return nil
}

func (c *StorageConfig) Validate() error {
	switch {
	case c.CacheSize <= 0:
		return ErrInvalidCacheSize
	case c.WriteBufferSize <= 0:
		return ErrInvalidWriteBufferSize
	case c.BloomFilterBits < 0:
		return ErrInvalidBloomFilterBits
	case c.Compression != string(leveldb.CompressionNone) && c.Compression != string(leveldb.CompressionSnappy):
		return ErrInvalidCompression
	case c.MaxOpenFiles <= 0:
		return ErrInvalidMaxOpenFiles
	case c.CheckpointInterval < 0:
		return ErrInvalidCheckpointInterval
	}
	return nil
}

func (c *OrphansConfig) Validate() error {
	if c.Capacity <= 0 {
		return ErrInvalidOrphanCapacity
	}
	if c.TTL < 0 {
		return ErrInvalidOrphanTTL
	}
	return nil
}

func (c *FollowerConfig) Validate() error {
	switch {
	case c.Workers <= 0:
		return ErrInvalidWorkers
	case c.BatchSize <= 0:
		return ErrInvalidBatchSize
	case c.PollInterval <= 0:
		return ErrInvalidPollInterval
	case c.MaxRewind <= 0:
		return ErrInvalidMaxRewind
	}
	return nil
}

func (c *JournalConfig) Validate() error {
	switch {
	case c.FlushSize <= 0:
		return ErrInvalidFlushSize
	case c.FlushInterval <= 0:
		return ErrInvalidFlushInterval
	case c.RPS <= 0:
		return ErrInvalidRPS
	}
	return nil
}

// EngineOptions maps the storage and orphan sections for params.
func (c *Config) EngineOptions(params *chaincfg.Params) service.Options {
	return service.Options{
		Store: leveldb.Options{
			CacheSize:          c.Storage.CacheSize,
			WriteBufferSize:    c.Storage.WriteBufferSize,
			BloomFilterBits:    c.Storage.BloomFilterBits,
			Compression:        leveldb.Compression(c.Storage.Compression),
			MaxOpenFiles:       c.Storage.MaxOpenFiles,
			CreateIfMissing:    c.Storage.CreateIfMissing,
			CheckpointInterval: c.Storage.CheckpointInterval,
			Params:             params,
		},
		OrphanCapacity: c.Orphans.Capacity,
		OrphanTTL:      c.Orphans.TTL.Duration(),
	}
}

func (c *Config) FollowerOptions() follower.Options {
	options := follower.DefaultOptions()
	options.Workers = c.Follower.Workers
	options.BatchSize = c.Follower.BatchSize
	options.PollInterval = c.Follower.PollInterval.Duration()
	options.MaxRewind = c.Follower.MaxRewind
	options.PoolCapacity = c.Orphans.Capacity
	return options
}

func (c *Config) JournalOptions() journal.Options {
	options := journal.DefaultOptions()
	options.FlushSize = c.Journal.FlushSize
	options.FlushInterval = c.Journal.FlushInterval.Duration()
	options.RPS = c.Journal.RPS
	return options
}
