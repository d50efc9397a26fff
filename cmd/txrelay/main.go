// Command txrelay keeps locally created transactions broadcast until they
// confirm or expire, and answers chain queries for the wallet behind a
// bitcoind node.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/txrelay/internal/broadcaster"
	"github.com/gabapcia/txrelay/internal/chaincache"
	"github.com/gabapcia/txrelay/internal/config"
	"github.com/gabapcia/txrelay/internal/explorer"
	"github.com/gabapcia/txrelay/internal/handlers/cli"
	"github.com/gabapcia/txrelay/internal/infra/blockchain/bitcoind"
	"github.com/gabapcia/txrelay/internal/pkg/logger"
	"github.com/gabapcia/txrelay/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/txrelay/internal/pkg/transport/http"
	"github.com/gabapcia/txrelay/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txrelay/internal/relay"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	shutdownTelemetry := telemetry.ShutdownFunc(telemetry.Noop)
	if cfg.Telemetry.Enabled {
		shutdownTelemetry, err = telemetry.Init(ctx, telemetry.Config{
			ServiceName: cfg.Telemetry.ServiceName,
			Endpoint:    cfg.Telemetry.Endpoint,
			Insecure:    cfg.Telemetry.Insecure,
		})
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
	}

	defer func() {
		if err := shutdownTelemetry(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "telemetry shutdown failed", "error", err)
		}
	}()

	if err := logger.Init(cfg.LogLevel, logger.WithLoggerProvider(telemetry.LoggerProvider())); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store, closeStore, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn(ctx, "closing the store failed", "error", err)
		}
	}()

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.RPC.Timeout),
		transporthttp.WithRetryMax(cfg.RPC.RetryMax),
	)
	conn := jsonrpc.NewClient(httpClient.StandardClient(), cfg.RPC.URL, jsonrpc.WithBasicAuth(cfg.RPC.User, cfg.RPC.Password))
	node := bitcoind.NewClient(conn)

	params := cfg.ChainParams()

	cache, err := chaincache.New(store, node, node,
		chaincache.WithTransactionCacheSize(cfg.Cache.TransactionCacheSize),
	)
	if err != nil {
		return err
	}

	bc, err := broadcaster.New(store, cache, node,
		broadcaster.WithChainParams(params),
		broadcaster.WithExpirationWindow(cfg.Broadcast.ExpirationWindow),
	)
	if err != nil {
		return err
	}

	ex, err := explorer.New(cache, node, node, node,
		explorer.WithChainParams(params),
		explorer.WithPollInterval(cfg.Explorer.PollInterval),
		explorer.WithProofSource(node),
		explorer.WithProofImporter(node),
		explorer.WithScriptWatcher(node),
	)
	if err != nil {
		return err
	}

	return cli.Run(ctx, relay.New(ex, bc), bc, ex)
}
