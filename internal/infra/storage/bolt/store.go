// Package bolt implements txstore.Store on a single bbolt file, one bucket
// per collection.
package bolt

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabapcia/txrelay/internal/txstore"

	bolt "go.etcd.io/bbolt"
)

// Store is a bbolt backed txstore.Store.
type Store struct {
	db *bolt.DB
}

var _ txstore.Store = (*Store)(nil)

// Open creates (if needed) and opens the database file at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create bolt directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// List implements txstore.Store.
func (s *Store) List(_ context.Context, collection string) ([][]byte, error) {
	var values [][]byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return nil
		}

		return b.ForEach(func(_, v []byte) error {
			values = append(values, bytes.Clone(v))
			return nil
		})
	})

	return values, err
}

// Get implements txstore.Store.
func (s *Store) Get(_ context.Context, collection, key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return txstore.ErrNotFound
		}

		v := b.Get([]byte(key))
		if v == nil {
			return txstore.ErrNotFound
		}

		value = bytes.Clone(v)
		return nil
	})

	return value, err
}

// Upsert implements txstore.Store. The read and the write share one update
// transaction.
func (s *Store) Upsert(_ context.Context, collection, key string, value []byte, resolve txstore.ConflictResolver) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(collection))
		if err != nil {
			return fmt.Errorf("create bucket %q: %w", collection, err)
		}

		if existing := b.Get([]byte(key)); existing != nil {
			value = resolve(bytes.Clone(existing), value)
		}

		return b.Put([]byte(key), value)
	})
}

// Delete implements txstore.Store.
func (s *Store) Delete(_ context.Context, collection, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return nil
		}

		return b.Delete([]byte(key))
	})
}
