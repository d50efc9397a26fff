package main

import (
	"path/filepath"
	"testing"

	"github.com/gabapcia/txrelay/internal/config"
	"github.com/gabapcia/txrelay/internal/infra/storage/bolt"
	"github.com/gabapcia/txrelay/internal/infra/storage/leveldb"
	"github.com/gabapcia/txrelay/internal/txstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Storage
		expected any
	}{
		{"memory", config.Storage{Driver: config.DriverMemory}, &txstore.MemoryStore{}},
		{"bolt", config.Storage{Driver: config.DriverBolt, Path: filepath.Join(t.TempDir(), "relay.db")}, &bolt.Store{}},
		{"leveldb", config.Storage{Driver: config.DriverLevelDB, Path: filepath.Join(t.TempDir(), "relay")}, &leveldb.Store{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, closeStore, err := openStore(t.Context(), tt.cfg)
			require.NoError(t, err)
			assert.IsType(t, tt.expected, store)

			require.NoError(t, txstore.Upsert(t.Context(), store, "c", "k", "v", txstore.Overwrite))
			value, err := txstore.Get[string](t.Context(), store, "c", "k")
			require.NoError(t, err)
			assert.Equal(t, "v", value)

			assert.NoError(t, closeStore())
		})
	}
}
