// Package chaincache memoizes the wallet's transaction listing and the
// current block height, refreshing them at most once per observed block.
//
// Node RPCs that enumerate wallet history are slow, so consumers read the
// cached snapshot and ask for a refresh whenever the chain tip moves.
package chaincache

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gabapcia/txrelay/internal/pkg/logger"
	"github.com/gabapcia/txrelay/internal/pkg/resilience/retry"
	"github.com/gabapcia/txrelay/internal/pkg/types"
	"github.com/gabapcia/txrelay/internal/txstore"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	// ErrNilDependency is returned by New when a collaborator is missing.
	ErrNilDependency = errors.New("chaincache: nil dependency")

	// ErrTransactionNotFound is returned when no source knows a transaction.
	ErrTransactionNotFound = errors.New("transaction not found")
)

const (
	listPageSize = 100

	// Paging stops once an entry this deep has been seen; older history is
	// irrelevant to pending broadcasts.
	maxListedConfirmations = 1400

	defaultTransactionCacheSize = 4096
)

// Cache is the read and import surface consumed by the broadcaster and the
// explorer.
type Cache interface {
	Refresh(ctx context.Context, blockID chainhash.Hash) error
	BlockCount(ctx context.Context) (int32, error)
	Entries() []Entry
	GetTransaction(ctx context.Context, id chainhash.Hash) (*wire.MsgTx, error)
	ImportTransaction(ctx context.Context, tx *wire.MsgTx, confirmations int64) error
}

// snapshot is never mutated after publication.
type snapshot struct {
	entries []Entry
	known   types.Set[chainhash.Hash]
}

type cache struct {
	store   txstore.Store
	source  WalletSource
	fetcher TransactionFetcher
	retry   retry.Retry

	// refreshMu serializes rebuilds.
	refreshMu sync.Mutex

	// mu guards current, blockCount and refreshedAt. The snapshot and the
	// height are always published together.
	mu          sync.RWMutex
	current     *snapshot
	blockCount  int32
	refreshedAt *chainhash.Hash

	transactions *lru.Cache[chainhash.Hash, *wire.MsgTx]
}

var _ Cache = (*cache)(nil)

func (c *cache) isRefreshedAt(blockID chainhash.Hash) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.refreshedAt != nil && *c.refreshedAt == blockID
}

// Refresh rebuilds the snapshot and the block height unless blockID is the
// block of the last successful refresh.
//
// Concurrent callers with the same blockID trigger a single rebuild. When
// listing fails the previous snapshot stays in place and the block is not
// marked as refreshed, so the next call tries again.
func (c *cache) Refresh(ctx context.Context, blockID chainhash.Hash) error {
	if c.isRefreshedAt(blockID) {
		return nil
	}

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if c.isRefreshedAt(blockID) {
		return nil
	}

	height, err := c.source.LastBlockHeight(ctx)
	if err != nil {
		return fmt.Errorf("refresh block count: %w", err)
	}

	var next *snapshot
	err = c.retry.Execute(ctx, func() error {
		var err error
		next, err = c.listTransactions(ctx)
		return err
	})
	if err != nil {
		logger.Warn(ctx, "wallet listing failed, keeping previous snapshot",
			"block.id", blockID.String(),
			"error", err,
		)
		return fmt.Errorf("list wallet transactions: %w", err)
	}

	c.pruneTransactions(next.known)

	c.mu.Lock()
	c.current = next
	c.blockCount = height
	c.refreshedAt = &blockID
	c.mu.Unlock()

	logger.Debug(ctx, "chain cache refreshed",
		"block.id", blockID.String(),
		"block.height", height,
		"cache.entries", len(next.entries),
	)

	return nil
}

func (c *cache) listTransactions(ctx context.Context) (*snapshot, error) {
	next := &snapshot{known: types.NewSet[chainhash.Hash]()}

	var highestConfirmations int64
	for skip := 0; ; skip += listPageSize {
		page, err := c.source.ListTransactions(ctx, listPageSize, skip)
		if err != nil {
			return nil, err
		}

		for _, entry := range page {
			if !next.known.Contains(entry.TransactionID) {
				next.known.Add(entry.TransactionID)
				next.entries = append(next.entries, entry)
			}
			highestConfirmations = max(highestConfirmations, entry.Confirmations)
		}

		if len(page) < listPageSize || highestConfirmations >= maxListedConfirmations {
			return next, nil
		}
	}
}

// pruneTransactions drops in-memory transactions the wallet no longer lists.
// The persisted archive is left alone.
func (c *cache) pruneTransactions(listed types.Set[chainhash.Hash]) {
	for _, id := range c.transactions.Keys() {
		if !listed.Contains(id) {
			c.transactions.Remove(id)
		}
	}
}

func (c *cache) loadedBlockCount() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.blockCount
}

// BlockCount returns the height published with the current snapshot,
// loading it on first use. A height published by a concurrent Refresh wins
// over the lazily loaded one.
func (c *cache) BlockCount(ctx context.Context) (int32, error) {
	if height := c.loadedBlockCount(); height != 0 {
		return height, nil
	}

	height, err := c.source.LastBlockHeight(ctx)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.blockCount == 0 {
		c.blockCount = height
	}

	return c.blockCount, nil
}

// Entries returns a copy of the current snapshot, most recent first.
func (c *cache) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.current.entries)
}

// GetTransaction looks id up in memory, then in the archive, then through
// the fetcher. Whatever is found is written back to the faster layers.
//
// A failed fetch is reported as ErrTransactionNotFound and is not
// remembered.
func (c *cache) GetTransaction(ctx context.Context, id chainhash.Hash) (*wire.MsgTx, error) {
	if tx, ok := c.transactions.Get(id); ok {
		return tx, nil
	}

	archived, err := txstore.Get[txstore.ArchivedTransaction](ctx, c.store, txstore.ArchiveCollection, id.String())
	switch {
	case err == nil:
		c.transactions.Add(id, archived.Transaction)
		return archived.Transaction, nil
	case !errors.Is(err, txstore.ErrNotFound):
		logger.Warn(ctx, "archive lookup failed", "tx.id", id.String(), "error", err)
	}

	tx, err := c.fetcher.FetchTransaction(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrTransactionNotFound) {
			logger.Warn(ctx, "transaction fetch failed", "tx.id", id.String(), "error", err)
		}
		return nil, ErrTransactionNotFound
	}

	if err := c.putCached(ctx, tx); err != nil {
		logger.Warn(ctx, "archive write failed", "tx.id", id.String(), "error", err)
	}

	return tx, nil
}

func (c *cache) putCached(ctx context.Context, tx *wire.MsgTx) error {
	id := tx.TxHash()
	c.transactions.Add(id, tx)

	return txstore.Upsert(ctx, c.store, txstore.ArchiveCollection, id.String(),
		txstore.ArchivedTransaction{Transaction: tx},
		txstore.Overwrite,
	)
}

// ImportTransaction caches tx and, if the snapshot does not know it yet,
// publishes a new snapshot with tx at the front.
//
// Imports wait for a running rebuild so they are not lost when the rebuilt
// snapshot is swapped in.
func (c *cache) ImportTransaction(ctx context.Context, tx *wire.MsgTx, confirmations int64) error {
	if err := c.putCached(ctx, tx); err != nil {
		return fmt.Errorf("archive transaction: %w", err)
	}

	id := tx.TxHash()

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current.known.Contains(id) {
		return nil
	}

	entries := make([]Entry, 0, len(c.current.entries)+1)
	entries = append(entries, Entry{TransactionID: id, Confirmations: confirmations})
	entries = append(entries, c.current.entries...)

	known := c.current.known.Clone()
	known.Add(id)

	c.current = &snapshot{entries: entries, known: known}
	return nil
}

type config struct {
	retry     retry.Retry
	cacheSize int
}

// Option customizes the cache.
type Option func(*config)

// WithRetry sets the policy applied to the wallet listing during Refresh.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithTransactionCacheSize bounds the number of transactions held in memory.
func WithTransactionCacheSize(n int) Option {
	return func(c *config) {
		c.cacheSize = n
	}
}

// New builds a Cache with an empty snapshot. Every collaborator is
// required.
func New(store txstore.Store, source WalletSource, fetcher TransactionFetcher, opts ...Option) (*cache, error) {
	if store == nil || source == nil || fetcher == nil {
		return nil, ErrNilDependency
	}

	cfg := config{
		retry:     retry.New(),
		cacheSize: defaultTransactionCacheSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	transactions, err := lru.New[chainhash.Hash, *wire.MsgTx](cfg.cacheSize)
	if err != nil {
		return nil, err
	}

	return &cache{
		store:        store,
		source:       source,
		fetcher:      fetcher,
		retry:        cfg.retry,
		current:      &snapshot{known: types.NewSet[chainhash.Hash]()},
		transactions: transactions,
	}, nil
}
