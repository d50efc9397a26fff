// Package txstore defines the persisted key-value contract shared by the
// broadcaster and the chain cache, together with typed helpers and the
// on-disk representation of pending and archived transactions.
//
// Drivers live under internal/infra/storage and only deal with raw bytes;
// encoding happens here so every driver stores the same format.
package txstore

import (
	"context"
	"errors"
)

const (
	// BroadcastsCollection holds pending broadcast records keyed by txid.
	BroadcastsCollection = "broadcasts"

	// ArchiveCollection holds raw transactions keyed by txid.
	ArchiveCollection = "cached_transactions"
)

// ErrNotFound is returned by Get when the key is absent from the collection.
var ErrNotFound = errors.New("record not found")

// ConflictResolver picks the value to keep when Upsert hits an existing key.
type ConflictResolver func(existing, incoming []byte) []byte

// KeepExisting leaves the stored value untouched.
func KeepExisting(existing, _ []byte) []byte { return existing }

// Overwrite replaces the stored value with the incoming one.
func Overwrite(_, incoming []byte) []byte { return incoming }

// Store is a collection-scoped byte store.
//
// Implementations must give read-your-writes consistency within a process
// and must apply Upsert atomically with respect to other writers.
type Store interface {
	// List returns every value of collection. An unknown collection is empty.
	List(ctx context.Context, collection string) ([][]byte, error)

	// Get returns the value under key or ErrNotFound.
	Get(ctx context.Context, collection, key string) ([]byte, error)

	// Upsert stores value under key. When the key already exists, resolve
	// receives the stored and the incoming value and returns what is kept.
	Upsert(ctx context.Context, collection, key string, value []byte, resolve ConflictResolver) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, collection, key string) error
}
