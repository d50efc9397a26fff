// Package explorer answers chain queries on behalf of the wallet: heights,
// confirmations, merkle proofs and the transactions touching an address. It
// also provides the cancellable wait for the next block that drives the
// relay loop.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/txrelay/internal/chaincache"
	"github.com/gabapcia/txrelay/internal/pkg/logger"
	"github.com/gabapcia/txrelay/internal/pkg/types"
	"github.com/gabapcia/txrelay/internal/pkg/x/chflow"

	"github.com/benbjohnson/clock"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// DefaultPollInterval is how often WaitForNewBlock checks the wallet tip.
const DefaultPollInterval = 5 * time.Second

// ErrNilDependency is returned by New when a required collaborator is
// missing.
var ErrNilDependency = errors.New("explorer: nil dependency")

// ErrMissingProof is returned by TrackPrunedTransaction when the transaction
// or its merkle proof is nil.
var ErrMissingProof = errors.New("explorer: missing transaction or merkle proof")

// TransactionInformation is a transaction together with its depth and, when
// requested, the proof of its inclusion.
type TransactionInformation struct {
	Transaction   *wire.MsgTx
	Confirmations int64
	MerkleProof   *wire.MsgMerkleBlock
}

// Service is the chain explorer.
type Service interface {
	// CurrentHeight returns the cached chain height.
	CurrentHeight(ctx context.Context) (int32, error)

	// GetTransactions lists cached wallet transactions paying to or spending
	// from the address behind scriptPubKey. With withProof set, only
	// confirmed transactions with an available merkle proof are returned.
	GetTransactions(ctx context.Context, scriptPubKey []byte, withProof bool) ([]TransactionInformation, error)

	// GetTransaction looks a transaction up on the node, wallet or not.
	GetTransaction(ctx context.Context, id chainhash.Hash) (TransactionInformation, error)

	// WaitForNewBlock blocks until the wallet tip differs from known,
	// refreshes the chain cache and returns the new tip. It returns
	// ctx.Err() when ctx is done first.
	WaitForNewBlock(ctx context.Context, known chainhash.Hash) (chainhash.Hash, error)

	// GetBlockConfirmations returns the depth of blockID, zero for blocks
	// off the active chain.
	GetBlockConfirmations(ctx context.Context, blockID chainhash.Hash) (int64, error)

	// TrackPrunedTransaction imports tx proven by proof into the wallet and
	// the chain cache.
	TrackPrunedTransaction(ctx context.Context, tx *wire.MsgTx, proof *wire.MsgMerkleBlock) error

	// Track makes the wallet follow scriptPubKey.
	Track(ctx context.Context, scriptPubKey []byte) error
}

type service struct {
	cache  chaincache.Cache
	chain  ChainView
	wallet Wallet
	lookup TransactionLookup

	proofs   ProofSource
	importer ProofImporter
	watcher  ScriptWatcher

	params       *chaincfg.Params
	pollInterval time.Duration
	clock        clock.Clock
}

var _ Service = (*service)(nil)

// CurrentHeight implements Service.
func (s *service) CurrentHeight(ctx context.Context) (int32, error) {
	return s.cache.BlockCount(ctx)
}

// GetTransactions implements Service.
//
// Scripts that do not resolve to a single address yield an empty result.
// Transactions the cache cannot load and transactions without a proof are
// left out rather than failing the query.
func (s *service) GetTransactions(ctx context.Context, scriptPubKey []byte, withProof bool) ([]TransactionInformation, error) {
	addrScript := destinationScript(scriptPubKey, s.params)
	if addrScript == nil {
		return nil, nil
	}

	var (
		results []TransactionInformation
		seen    = types.NewSet[chainhash.Hash]()
	)
	for _, entry := range s.cache.Entries() {
		if seen.Contains(entry.TransactionID) {
			continue
		}
		if withProof && entry.Confirmations == 0 {
			continue
		}

		tx, err := s.cache.GetTransaction(ctx, entry.TransactionID)
		if err != nil {
			logger.Debug(ctx, "wallet transaction unavailable", "tx.id", entry.TransactionID.String(), "error", err)
			continue
		}

		if !involves(tx, addrScript, s.params) {
			continue
		}
		seen.Add(entry.TransactionID)

		info := TransactionInformation{Transaction: tx, Confirmations: entry.Confirmations}
		if withProof {
			proof, err := s.proofs.MerkleProof(ctx, entry.TransactionID)
			if err != nil {
				logger.Debug(ctx, "dropping transaction without merkle proof", "tx.id", entry.TransactionID.String(), "error", err)
				continue
			}
			info.MerkleProof = proof
		}

		results = append(results, info)
	}

	return results, nil
}

// GetTransaction implements Service. Unknown transactions are reported with
// chaincache.ErrTransactionNotFound; mempool transactions have zero
// confirmations.
func (s *service) GetTransaction(ctx context.Context, id chainhash.Hash) (TransactionInformation, error) {
	tx, err := s.lookup.FetchTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, chaincache.ErrTransactionNotFound) {
			return TransactionInformation{}, err
		}
		return TransactionInformation{}, fmt.Errorf("fetch transaction %s: %w", id, err)
	}

	info := TransactionInformation{Transaction: tx}

	blockID, err := s.lookup.FetchConfirmingBlockID(ctx, id)
	switch {
	case errors.Is(err, ErrBlockNotFound):
		return info, nil
	case err != nil:
		return TransactionInformation{}, fmt.Errorf("fetch confirming block of %s: %w", id, err)
	}

	info.Confirmations, err = s.GetBlockConfirmations(ctx, blockID)
	if err != nil {
		return TransactionInformation{}, err
	}

	return info, nil
}

// WaitForNewBlock implements Service.
//
// Lookup failures are logged and retried at the next tick; only ctx ends
// the wait without a new block.
func (s *service) WaitForNewBlock(ctx context.Context, known chainhash.Hash) (chainhash.Hash, error) {
	for {
		if err := ctx.Err(); err != nil {
			return chainhash.Hash{}, err
		}

		current, err := s.wallet.LastObservedBlockID(ctx)
		switch {
		case err != nil:
			logger.Warn(ctx, "failed to read the wallet tip", "error", err)
		case current != known:
			if err := s.cache.Refresh(ctx, current); err != nil {
				logger.Warn(ctx, "chain cache refresh failed", "block.id", current.String(), "error", err)
			}
			return current, nil
		}

		if _, ok := chflow.Receive(ctx, s.clock.After(s.pollInterval)); !ok {
			return chainhash.Hash{}, ctx.Err()
		}
	}
}

// GetBlockConfirmations implements Service.
func (s *service) GetBlockConfirmations(ctx context.Context, blockID chainhash.Hash) (int64, error) {
	height, err := s.chain.BlockHeight(ctx, blockID)
	if err != nil {
		return 0, fmt.Errorf("block height of %s: %w", blockID, err)
	}

	mainID, err := s.chain.BlockHash(ctx, height)
	switch {
	case errors.Is(err, ErrBlockNotFound):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("block hash at %d: %w", height, err)
	case mainID != blockID:
		return 0, nil
	}

	tip, err := s.chain.TipHeight(ctx)
	if err != nil {
		return 0, fmt.Errorf("tip height: %w", err)
	}

	return max(0, int64(tip)-int64(height)), nil
}

// TrackPrunedTransaction implements Service.
func (s *service) TrackPrunedTransaction(ctx context.Context, tx *wire.MsgTx, proof *wire.MsgMerkleBlock) error {
	if tx == nil || proof == nil {
		return ErrMissingProof
	}

	if err := s.importer.ImportPrunedFunds(ctx, tx, proof); err != nil {
		return fmt.Errorf("import pruned funds: %w", err)
	}

	confirmations, err := s.GetBlockConfirmations(ctx, proof.Header.BlockHash())
	if err != nil {
		return err
	}

	return s.cache.ImportTransaction(ctx, tx, confirmations)
}

// Track implements Service.
func (s *service) Track(ctx context.Context, scriptPubKey []byte) error {
	return s.watcher.WatchScript(ctx, scriptPubKey)
}

type config struct {
	params       *chaincfg.Params
	pollInterval time.Duration
	clock        clock.Clock
	proofs       ProofSource
	importer     ProofImporter
	watcher      ScriptWatcher
}

// Option customizes the explorer.
type Option func(*config)

// WithChainParams sets the network used to decode addresses. Defaults to
// mainnet.
func WithChainParams(params *chaincfg.Params) Option {
	return func(c *config) {
		c.params = params
	}
}

// WithPollInterval sets how often WaitForNewBlock polls the wallet.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithClock replaces the wall clock driving the poll loop.
func WithClock(c clock.Clock) Option {
	return func(cfg *config) {
		cfg.clock = c
	}
}

// WithProofSource enables merkle proofs in GetTransactions.
func WithProofSource(p ProofSource) Option {
	return func(c *config) {
		c.proofs = p
	}
}

// WithProofImporter enables TrackPrunedTransaction.
func WithProofImporter(i ProofImporter) Option {
	return func(c *config) {
		c.importer = i
	}
}

// WithScriptWatcher enables Track.
func WithScriptWatcher(w ScriptWatcher) Option {
	return func(c *config) {
		c.watcher = w
	}
}

// New builds an explorer. The cache, chain view, wallet and lookup are
// required; proof handling and script watching are optional and report
// ErrProofUnavailable or ErrUnsupported when absent.
func New(cache chaincache.Cache, chain ChainView, wallet Wallet, lookup TransactionLookup, opts ...Option) (*service, error) {
	if cache == nil || chain == nil || wallet == nil || lookup == nil {
		return nil, ErrNilDependency
	}

	cfg := config{
		params:       &chaincfg.MainNetParams,
		pollInterval: DefaultPollInterval,
		clock:        clock.New(),
		proofs:       nopProofSource{},
		importer:     nopProofImporter{},
		watcher:      nopScriptWatcher{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		cache:        cache,
		chain:        chain,
		wallet:       wallet,
		lookup:       lookup,
		proofs:       cfg.proofs,
		importer:     cfg.importer,
		watcher:      cfg.watcher,
		params:       cfg.params,
		pollInterval: cfg.pollInterval,
		clock:        cfg.clock,
	}, nil
}
