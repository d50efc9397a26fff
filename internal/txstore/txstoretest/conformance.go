// Package txstoretest holds a behavioural test suite every txstore.Store
// driver is expected to pass.
package txstoretest

import (
	"testing"

	"github.com/gabapcia/txrelay/internal/txstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises a fresh store returned by newStore for every case.
func Run(t *testing.T, newStore func(t *testing.T) txstore.Store) {
	t.Run("get of a missing key", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Get(t.Context(), "collection", "missing")
		assert.ErrorIs(t, err, txstore.ErrNotFound)
	})

	t.Run("list of an unknown collection", func(t *testing.T) {
		s := newStore(t)

		values, err := s.List(t.Context(), "collection")
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("upsert then get", func(t *testing.T) {
		s := newStore(t)
		ctx := t.Context()

		require.NoError(t, s.Upsert(ctx, "collection", "k", []byte("v1"), txstore.KeepExisting))

		value, err := s.Get(ctx, "collection", "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), value)
	})

	t.Run("conflict resolution", func(t *testing.T) {
		s := newStore(t)
		ctx := t.Context()

		require.NoError(t, s.Upsert(ctx, "collection", "k", []byte("v1"), txstore.Overwrite))
		require.NoError(t, s.Upsert(ctx, "collection", "k", []byte("v2"), txstore.KeepExisting))

		value, err := s.Get(ctx, "collection", "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), value)

		require.NoError(t, s.Upsert(ctx, "collection", "k", []byte("v3"), txstore.Overwrite))

		value, err = s.Get(ctx, "collection", "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v3"), value)

		var seen [2][]byte
		merge := func(existing, incoming []byte) []byte {
			seen = [2][]byte{existing, incoming}
			return append(append([]byte{}, existing...), incoming...)
		}
		require.NoError(t, s.Upsert(ctx, "collection", "k", []byte("+"), merge))

		assert.Equal(t, []byte("v3"), seen[0])
		assert.Equal(t, []byte("+"), seen[1])

		value, err = s.Get(ctx, "collection", "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v3+"), value)
	})

	t.Run("collections are isolated", func(t *testing.T) {
		s := newStore(t)
		ctx := t.Context()

		require.NoError(t, s.Upsert(ctx, "a", "k", []byte("in a"), txstore.Overwrite))
		require.NoError(t, s.Upsert(ctx, "ab", "k", []byte("in ab"), txstore.Overwrite))

		values, err := s.List(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, [][]byte{[]byte("in a")}, values)

		_, err = s.Get(ctx, "b", "k")
		assert.ErrorIs(t, err, txstore.ErrNotFound)
	})

	t.Run("list returns every value", func(t *testing.T) {
		s := newStore(t)
		ctx := t.Context()

		for _, k := range []string{"k3", "k1", "k2"} {
			require.NoError(t, s.Upsert(ctx, "collection", k, []byte("value-"+k), txstore.Overwrite))
		}

		values, err := s.List(ctx, "collection")
		require.NoError(t, err)
		assert.ElementsMatch(t, [][]byte{[]byte("value-k1"), []byte("value-k2"), []byte("value-k3")}, values)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		ctx := t.Context()

		require.NoError(t, s.Upsert(ctx, "collection", "k", []byte("v"), txstore.Overwrite))
		require.NoError(t, s.Delete(ctx, "collection", "k"))
		require.NoError(t, s.Delete(ctx, "collection", "k"), "deleting twice must succeed")
		require.NoError(t, s.Delete(ctx, "other", "k"))

		_, err := s.Get(ctx, "collection", "k")
		assert.ErrorIs(t, err, txstore.ErrNotFound)
	})
}
