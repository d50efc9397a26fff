// Package broadcaster keeps locally created transactions in a persisted
// retry queue and delivers them to the network in dependency order until
// they confirm or expire.
package broadcaster

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gabapcia/txrelay/internal/chaincache"
	"github.com/gabapcia/txrelay/internal/pkg/logger"
	"github.com/gabapcia/txrelay/internal/pkg/types"
	"github.com/gabapcia/txrelay/internal/txstore"

	"github.com/benbjohnson/clock"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/txrelay/internal/broadcaster"

// DefaultExpirationWindow is how long a record is retried before it is
// abandoned.
const DefaultExpirationWindow = 72 * time.Hour

// ErrNilDependency is returned by New when a collaborator is missing.
var ErrNilDependency = errors.New("broadcaster: nil dependency")

// Cache is the part of the chain cache the engine reads and feeds.
type Cache interface {
	BlockCount(ctx context.Context) (int32, error)
	Entries() []chaincache.Entry
	GetTransaction(ctx context.Context, id chainhash.Hash) (*wire.MsgTx, error)
	ImportTransaction(ctx context.Context, tx *wire.MsgTx, confirmations int64) error
}

// PassResult summarizes one reconciliation pass.
type PassResult struct {
	// Broadcasted lists the transactions delivered during the pass.
	Broadcasted []*wire.MsgTx

	// KnownBroadcasted holds every id the pass considers settled or already
	// handled. Feeding it to the next pass saves network round trips.
	KnownBroadcasted types.Set[chainhash.Hash]

	// Monitored is the number of pending records the pass walked through.
	Monitored int

	Duration time.Duration
}

// Service is the broadcast engine.
type Service interface {
	// Broadcast enqueues tx and tries to deliver it right away. The boolean
	// reports whether this first attempt reached the network.
	Broadcast(ctx context.Context, tx *wire.MsgTx) (bool, error)

	// TryBroadcastAll runs a reconciliation pass over every pending record.
	// knownBroadcasted is a hint from a previous pass and may be nil.
	//
	// Passes must not overlap.
	TryBroadcastAll(ctx context.Context, knownBroadcasted types.Set[chainhash.Hash]) (PassResult, error)

	// Transactions returns the pending records in delivery order.
	Transactions(ctx context.Context) ([]txstore.Record, error)

	// GetKnownTransaction returns a pending or archived transaction without
	// touching the network, or txstore.ErrNotFound.
	GetKnownTransaction(ctx context.Context, id chainhash.Hash) (*wire.MsgTx, error)
}

type instruments struct {
	attempts  metric.Int64Counter
	successes metric.Int64Counter
	expired   metric.Int64Counter
}

type service struct {
	store     txstore.Store
	cache     Cache
	submitter Submitter

	clock            clock.Clock
	expirationBlocks int32
	tracer           trace.Tracer
	instruments      instruments
}

var _ Service = (*service)(nil)

// Broadcast implements Service.
func (s *service) Broadcast(ctx context.Context, tx *wire.MsgTx) (bool, error) {
	height, err := s.cache.BlockCount(ctx)
	if err != nil {
		return false, fmt.Errorf("read block count: %w", err)
	}

	record := txstore.Record{
		Transaction:      tx,
		ExpirationHeight: height + s.expirationBlocks,
	}

	id := record.ID()
	if err := txstore.Upsert(ctx, s.store, txstore.BroadcastsCollection, id.String(), record, txstore.KeepExisting); err != nil {
		return false, fmt.Errorf("persist broadcast record: %w", err)
	}

	ctx = logger.Derive(ctx, "tx.id", id.String())
	logger.Info(ctx, "transaction enqueued for broadcast", "tx.expiration", record.ExpirationHeight)

	return s.attempt(ctx, record, height, newSpendIndex(ctx, s.cache)), nil
}

// TryBroadcastAll implements Service.
func (s *service) TryBroadcastAll(ctx context.Context, knownBroadcasted types.Set[chainhash.Hash]) (PassResult, error) {
	ctx, span := s.tracer.Start(ctx, "broadcaster.TryBroadcastAll")
	defer span.End()

	start := s.clock.Now()

	height, err := s.cache.BlockCount(ctx)
	if err != nil {
		span.RecordError(err)
		return PassResult{}, fmt.Errorf("read block count: %w", err)
	}

	known := knownBroadcasted.Clone()
	for _, entry := range s.cache.Entries() {
		if entry.Confirmations > 0 {
			known.Add(entry.TransactionID)
		}
	}

	records, err := s.Transactions(ctx)
	if err != nil {
		span.RecordError(err)
		return PassResult{}, err
	}

	spends := newSpendIndex(ctx, s.cache)

	result := PassResult{Monitored: len(records)}
	for _, record := range records {
		id := record.ID()
		if !known.Contains(id) {
			recordCtx := logger.Derive(ctx, "tx.id", id.String())
			if s.attempt(recordCtx, record, height, spends) {
				result.Broadcasted = append(result.Broadcasted, record.Transaction)
			}
		}
		known.Add(id)
	}

	result.KnownBroadcasted = known
	result.Duration = s.clock.Since(start)

	span.SetAttributes(
		attribute.Int("broadcast.height", int(height)),
		attribute.Int("broadcast.monitored", result.Monitored),
		attribute.Int("broadcast.sent", len(result.Broadcasted)),
	)

	logger.Info(ctx, fmt.Sprintf("broadcasted %d transaction(s), monitoring %d entries", len(result.Broadcasted), result.Monitored),
		"block.height", height,
		"broadcast.duration", result.Duration.String(),
	)

	return result, nil
}

// Transactions implements Service.
func (s *service) Transactions(ctx context.Context) ([]txstore.Record, error) {
	records, err := txstore.ListValid[txstore.Record](ctx, s.store, txstore.BroadcastsCollection, func(err error) {
		logger.Error(ctx, "skipping unreadable broadcast record", "error", err)
	})
	if err != nil {
		return nil, fmt.Errorf("list broadcast records: %w", err)
	}

	return topologicalOrder(records), nil
}

// GetKnownTransaction implements Service.
func (s *service) GetKnownTransaction(ctx context.Context, id chainhash.Hash) (*wire.MsgTx, error) {
	record, err := txstore.Get[txstore.Record](ctx, s.store, txstore.BroadcastsCollection, id.String())
	if err == nil {
		return record.Transaction, nil
	}
	if !errors.Is(err, txstore.ErrNotFound) {
		return nil, err
	}

	archived, err := txstore.Get[txstore.ArchivedTransaction](ctx, s.store, txstore.ArchiveCollection, id.String())
	if err != nil {
		return nil, err
	}

	return archived.Transaction, nil
}

type config struct {
	params           *chaincfg.Params
	expirationWindow time.Duration
	clock            clock.Clock
	meterProvider    metric.MeterProvider
	tracerProvider   trace.TracerProvider
}

// Option customizes the engine.
type Option func(*config)

// WithChainParams sets the network whose block spacing converts the
// expiration window into blocks. Defaults to mainnet.
func WithChainParams(params *chaincfg.Params) Option {
	return func(c *config) {
		c.params = params
	}
}

// WithExpirationWindow sets how long records are retried.
func WithExpirationWindow(d time.Duration) Option {
	return func(c *config) {
		c.expirationWindow = d
	}
}

// WithClock replaces the wall clock used for finality checks and timings.
func WithClock(c clock.Clock) Option {
	return func(cfg *config) {
		cfg.clock = c
	}
}

// WithMeterProvider overrides the global otel meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// WithTracerProvider overrides the global otel tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// expirationBlocks converts window into a block count, rounding up.
func expirationBlocks(window, spacing time.Duration) int32 {
	return int32(math.Ceil(float64(window) / float64(spacing)))
}

// New builds the engine. Every collaborator is required.
func New(store txstore.Store, cache Cache, submitter Submitter, opts ...Option) (*service, error) {
	if store == nil || cache == nil || submitter == nil {
		return nil, ErrNilDependency
	}

	cfg := config{
		params:           &chaincfg.MainNetParams,
		expirationWindow: DefaultExpirationWindow,
		clock:            clock.New(),
		meterProvider:    otel.GetMeterProvider(),
		tracerProvider:   otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := cfg.meterProvider.Meter(instrumentationName)

	var (
		ins  instruments
		errs []error
		err  error
	)
	ins.attempts, err = meter.Int64Counter("txrelay.broadcast.attempts",
		metric.WithDescription("Transactions submitted to the network"))
	errs = append(errs, err)
	ins.successes, err = meter.Int64Counter("txrelay.broadcast.successes",
		metric.WithDescription("Submissions accepted by the network"))
	errs = append(errs, err)
	ins.expired, err = meter.Int64Counter("txrelay.broadcast.expired",
		metric.WithDescription("Records removed from the queue after expiring"))
	errs = append(errs, err)
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("create broadcast instruments: %w", err)
	}

	return &service{
		store:            store,
		cache:            cache,
		submitter:        submitter,
		clock:            cfg.clock,
		expirationBlocks: expirationBlocks(cfg.expirationWindow, cfg.params.TargetTimePerBlock),
		tracer:           cfg.tracerProvider.Tracer(instrumentationName),
		instruments:      ins,
	}, nil
}
