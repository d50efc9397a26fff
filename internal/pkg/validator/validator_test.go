package validator

import (
	"errors"
	"testing"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatError(t *testing.T) {
	t.Run("formats every field error", func(t *testing.T) {
		type endpoint struct {
			URL  string `validate:"required,url"`
			User string `validate:"required"`
		}

		err := gvalidator.New().Struct(endpoint{URL: "not a url"})
		require.Error(t, err)

		formatted := formatError(err)
		assert.ErrorIs(t, formatted, ErrValidationFailed)
		assert.Contains(t, formatted.Error(), "'endpoint.URL': value 'not a url' does not meet the requirements for the 'url' validation")
		assert.Contains(t, formatted.Error(), "'endpoint.User': value '' does not meet the requirements for the 'required' validation")
	})

	t.Run("returns foreign errors untouched", func(t *testing.T) {
		original := errors.New("connection refused")
		assert.Equal(t, original, formatError(original))
	})
}

func TestValidate(t *testing.T) {
	type storage struct {
		Driver string `validate:"required,oneof=memory redis bolt leveldb"`
	}

	type settings struct {
		Network  string  `validate:"required,chainnet"`
		CacheLen int     `validate:"min=1"`
		Storage  storage `validate:"required"`
	}

	t.Run("accepts a valid struct", func(t *testing.T) {
		err := Validate(settings{Network: "regtest", CacheLen: 10, Storage: storage{Driver: "bolt"}})
		assert.NoError(t, err)
	})

	t.Run("accepts every known network", func(t *testing.T) {
		for _, network := range []string{"mainnet", "testnet3", "regtest", "signet"} {
			err := Validate(settings{Network: network, CacheLen: 1, Storage: storage{Driver: "memory"}})
			assert.NoError(t, err, network)
		}
	})

	t.Run("rejects an unknown network", func(t *testing.T) {
		err := Validate(settings{Network: "litecoin", CacheLen: 1, Storage: storage{Driver: "memory"}})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "'settings.Network': value 'litecoin' does not meet the requirements for the 'chainnet' validation")
	})

	t.Run("reports nested failures with their namespace", func(t *testing.T) {
		err := Validate(settings{Network: "mainnet", CacheLen: 0, Storage: storage{Driver: "postgres"}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "'settings.CacheLen'")
		assert.Contains(t, err.Error(), "'settings.Storage.Driver': value 'postgres'")
	})

	t.Run("rejects non-struct input", func(t *testing.T) {
		for _, input := range []any{"text", 42, nil, []string{"a"}} {
			assert.Error(t, Validate(input))
		}
	})
}
