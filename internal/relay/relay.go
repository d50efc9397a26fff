// Package relay drives the broadcast engine: one reconciliation pass when it
// starts and one for every block the wallet observes afterwards.
package relay

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/txrelay/internal/broadcaster"
	"github.com/gabapcia/txrelay/internal/pkg/logger"
	"github.com/gabapcia/txrelay/internal/pkg/types"
	"github.com/gabapcia/txrelay/internal/pkg/x/chflow"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var ErrServiceAlreadyStarted = errors.New("service already started")

const passReportChannelBufferSize = 10

// Explorer blocks until the chain moves past a known tip.
type Explorer interface {
	WaitForNewBlock(ctx context.Context, known chainhash.Hash) (chainhash.Hash, error)
}

// Broadcaster runs reconciliation passes.
type Broadcaster interface {
	TryBroadcastAll(ctx context.Context, knownBroadcasted types.Set[chainhash.Hash]) (broadcaster.PassResult, error)
}

// PassReport is the outcome of the pass run for BlockID.
type PassReport struct {
	BlockID chainhash.Hash
	Result  broadcaster.PassResult
	Err     error
}

type Service interface {
	// Start launches the loop and returns the channel of pass reports. The
	// channel is closed once the loop stops; callers must drain it.
	Start(ctx context.Context) (<-chan PassReport, error)
	Close()
}

type closeFunc func()
type reportHandler func(ctx context.Context, report PassReport)

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	explorer      Explorer
	broadcaster   Broadcaster
	reportHandler reportHandler
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) (<-chan PassReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return nil, ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	var (
		wg       sync.WaitGroup
		reportCh = make(chan PassReport, passReportChannelBufferSize)
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(reportCh)

		s.run(ctx, reportCh)
	}()

	s.closeFunc = func() {
		cancel()
		wg.Wait()
	}

	s.isStarted = true
	return reportCh, nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

// run alternates between waiting for a new tip and running a pass. The zero
// tip is never current, so the first wait returns right away.
func (s *service) run(ctx context.Context, reportCh chan<- PassReport) {
	var tip chainhash.Hash
	for {
		next, err := s.explorer.WaitForNewBlock(ctx, tip)
		if err != nil {
			if ctx.Err() == nil {
				logger.Error(ctx, "relay stopped waiting for blocks", "error", err)
			}
			return
		}
		tip = next

		result, err := s.broadcaster.TryBroadcastAll(ctx, nil)
		report := PassReport{BlockID: tip, Result: result, Err: err}

		s.reportHandler(ctx, report)
		if !chflow.Send(ctx, reportCh, report) {
			return
		}
	}
}

type config struct {
	reportHandler reportHandler
}

type Option func(*config)

func New(explorer Explorer, broadcaster Broadcaster, opts ...Option) *service {
	cfg := config{
		reportHandler: defaultOnPassReport,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		explorer:      explorer,
		broadcaster:   broadcaster,
		reportHandler: cfg.reportHandler,
	}
}

func defaultOnPassReport(ctx context.Context, report PassReport) {
	if report.Err != nil {
		logger.Error(ctx, "broadcast pass failed",
			"block.id", report.BlockID.String(),
			"error", report.Err,
		)
		return
	}

	logger.Debug(ctx, "broadcast pass finished",
		"block.id", report.BlockID.String(),
		"broadcast.sent", len(report.Result.Broadcasted),
		"broadcast.monitored", report.Result.Monitored,
	)
}

// WithReportHandler replaces the default logging of pass reports.
func WithReportHandler(f reportHandler) Option {
	return func(c *config) {
		c.reportHandler = f
	}
}
