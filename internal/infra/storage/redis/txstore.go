package redis

import (
	"context"
	"errors"
	"slices"

	"github.com/gabapcia/txrelay/internal/txstore"

	"github.com/redis/go-redis/v9"
)

// txstoreKeyPrefix namespaces the collection hashes.
const txstoreKeyPrefix = "txrelay"

// maxUpsertAttempts bounds the optimistic WATCH/MULTI loop of Upsert.
const maxUpsertAttempts = 8

// ErrUpsertContention is returned when Upsert keeps losing the race for a
// collection hash.
var ErrUpsertContention = errors.New("redis: upsert aborted after repeated concurrent writes")

func collectionKey(collection string) string {
	return txstoreKeyPrefix + ":" + collection
}

// List implements txstore.Store. Values are returned in field order.
func (c *client) List(ctx context.Context, collection string) ([][]byte, error) {
	entries, err := c.conn.HGetAll(ctx, collectionKey(collection)).Result()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	values := make([][]byte, 0, len(keys))
	for _, k := range keys {
		values = append(values, []byte(entries[k]))
	}

	return values, nil
}

// Get implements txstore.Store.
func (c *client) Get(ctx context.Context, collection, key string) ([]byte, error) {
	value, err := c.conn.HGet(ctx, collectionKey(collection), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, txstore.ErrNotFound
	}

	return value, err
}

// Upsert implements txstore.Store.
//
// The read of the current field and the write of the resolved value run
// inside WATCH/MULTI on the collection hash; a concurrent write to the hash
// restarts the cycle.
func (c *client) Upsert(ctx context.Context, collection, key string, value []byte, resolve txstore.ConflictResolver) error {
	hash := collectionKey(collection)

	txf := func(tx *redis.Tx) error {
		resolved := value

		existing, err := tx.HGet(ctx, hash, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			resolved = resolve(existing, value)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, hash, key, resolved)
			return nil
		})
		return err
	}

	for range maxUpsertAttempts {
		err := c.conn.Watch(ctx, txf, hash)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		return err
	}

	return ErrUpsertContention
}

// Delete implements txstore.Store.
func (c *client) Delete(ctx context.Context, collection, key string) error {
	return c.conn.HDel(ctx, collectionKey(collection), key).Err()
}

var _ txstore.Store = (*client)(nil)
