// Package config loads the relay's settings from TXRELAY_* environment
// variables and validates them.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/txrelay/internal/pkg/validator"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "TXRELAY"

// Storage drivers.
const (
	DriverMemory  = "memory"
	DriverRedis   = "redis"
	DriverBolt    = "bolt"
	DriverLevelDB = "leveldb"
)

type RPC struct {
	URL      string        `split_words:"true" required:"true" validate:"required,url"`
	User     string        `split_words:"true"`
	Password string        `split_words:"true"`
	Timeout  time.Duration `split_words:"true" default:"30s" validate:"gt=0"`
	RetryMax int           `split_words:"true" default:"2" validate:"gte=0"`
}

type Storage struct {
	Driver string `split_words:"true" default:"bolt" validate:"oneof=memory redis bolt leveldb"`

	// Path is the database file (bolt) or directory (leveldb).
	Path string `split_words:"true" default:"data/txrelay.db" validate:"required_if=Driver bolt,required_if=Driver leveldb"`

	RedisAddr     string `split_words:"true" validate:"required_if=Driver redis"`
	RedisUsername string `split_words:"true"`
	RedisPassword string `split_words:"true"`
	RedisDB       int    `split_words:"true" default:"0" validate:"gte=0"`
}

type Broadcast struct {
	// ExpirationWindow is how long a pending transaction is retried before it
	// is archived.
	ExpirationWindow time.Duration `split_words:"true" default:"72h" validate:"gt=0"`
}

type Explorer struct {
	PollInterval time.Duration `split_words:"true" default:"5s" validate:"gt=0"`
}

type Cache struct {
	TransactionCacheSize int `split_words:"true" default:"4096" validate:"gt=0"`
}

type Telemetry struct {
	Enabled     bool   `split_words:"true" default:"false"`
	ServiceName string `split_words:"true" default:"txrelay" validate:"required_if=Enabled true"`
	Endpoint    string `split_words:"true"`
	Insecure    bool   `split_words:"true" default:"false"`
}

type Config struct {
	Network  string `split_words:"true" default:"mainnet" validate:"chainnet"`
	LogLevel string `split_words:"true" default:"info" validate:"oneof=debug info warn error"`

	RPC       RPC       `split_words:"true"`
	Storage   Storage   `split_words:"true"`
	Broadcast Broadcast `split_words:"true"`
	Explorer  Explorer  `split_words:"true"`
	Cache     Cache     `split_words:"true"`
	Telemetry Telemetry `split_words:"true"`
}

// Load reads the configuration from the environment. Nested settings use
// the section name as an infix, e.g. TXRELAY_RPC_URL or
// TXRELAY_STORAGE_DRIVER.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ChainParams returns the parameters of the configured network.
func (c Config) ChainParams() *chaincfg.Params {
	switch c.Network {
	case chaincfg.TestNet3Params.Name:
		return &chaincfg.TestNet3Params
	case chaincfg.RegressionNetParams.Name:
		return &chaincfg.RegressionNetParams
	case chaincfg.SigNetParams.Name:
		return &chaincfg.SigNetParams
	default:
		return &chaincfg.MainNetParams
	}
}
