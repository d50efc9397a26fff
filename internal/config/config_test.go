package config

import (
	"testing"
	"time"

	"github.com/gabapcia/txrelay/internal/pkg/validator"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("TXRELAY_RPC_URL", "http://127.0.0.1:8332")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "mainnet", cfg.Network)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 30*time.Second, cfg.RPC.Timeout)
		assert.Equal(t, 2, cfg.RPC.RetryMax)
		assert.Equal(t, DriverBolt, cfg.Storage.Driver)
		assert.Equal(t, "data/txrelay.db", cfg.Storage.Path)
		assert.Equal(t, 72*time.Hour, cfg.Broadcast.ExpirationWindow)
		assert.Equal(t, 5*time.Second, cfg.Explorer.PollInterval)
		assert.Equal(t, 4096, cfg.Cache.TransactionCacheSize)
		assert.False(t, cfg.Telemetry.Enabled)
		assert.Equal(t, "txrelay", cfg.Telemetry.ServiceName)
	})

	t.Run("reads nested settings", func(t *testing.T) {
		t.Setenv("TXRELAY_NETWORK", "regtest")
		t.Setenv("TXRELAY_RPC_URL", "http://127.0.0.1:18443")
		t.Setenv("TXRELAY_RPC_USER", "alice")
		t.Setenv("TXRELAY_STORAGE_DRIVER", "redis")
		t.Setenv("TXRELAY_STORAGE_REDIS_ADDR", "localhost:6379")
		t.Setenv("TXRELAY_STORAGE_REDIS_DB", "3")
		t.Setenv("TXRELAY_BROADCAST_EXPIRATION_WINDOW", "1h")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "alice", cfg.RPC.User)
		assert.Equal(t, DriverRedis, cfg.Storage.Driver)
		assert.Equal(t, "localhost:6379", cfg.Storage.RedisAddr)
		assert.Equal(t, 3, cfg.Storage.RedisDB)
		assert.Equal(t, time.Hour, cfg.Broadcast.ExpirationWindow)
		assert.Same(t, &chaincfg.RegressionNetParams, cfg.ChainParams())
	})

	t.Run("requires the rpc url", func(t *testing.T) {
		_, err := Load()
		assert.ErrorContains(t, err, "read environment")
	})

	t.Run("rejects unknown networks", func(t *testing.T) {
		t.Setenv("TXRELAY_RPC_URL", "http://127.0.0.1:8332")
		t.Setenv("TXRELAY_NETWORK", "litecoin")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorContains(t, err, "'Config.Network'")
	})

	t.Run("redis needs an address", func(t *testing.T) {
		t.Setenv("TXRELAY_RPC_URL", "http://127.0.0.1:8332")
		t.Setenv("TXRELAY_STORAGE_DRIVER", "redis")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorContains(t, err, "'Config.Storage.RedisAddr'")
	})

	t.Run("rejects unknown drivers", func(t *testing.T) {
		t.Setenv("TXRELAY_RPC_URL", "http://127.0.0.1:8332")
		t.Setenv("TXRELAY_STORAGE_DRIVER", "sqlite")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestConfig_ChainParams(t *testing.T) {
	tests := map[string]*chaincfg.Params{
		"mainnet":  &chaincfg.MainNetParams,
		"testnet3": &chaincfg.TestNet3Params,
		"regtest":  &chaincfg.RegressionNetParams,
		"signet":   &chaincfg.SigNetParams,
	}

	for network, params := range tests {
		t.Run(network, func(t *testing.T) {
			assert.Same(t, params, Config{Network: network}.ChainParams())
		})
	}
}
