// Package leveldb implements txstore.Store on goleveldb. Every key is
// prefixed with its collection name and a separator byte.
package leveldb

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/txrelay/internal/txstore"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const separator = 0x00

// Store is a goleveldb backed txstore.Store.
type Store struct {
	db *leveldb.DB

	// writeMu serializes the read-resolve-write cycle of Upsert.
	writeMu sync.Mutex
}

var _ txstore.Store = (*Store)(nil)

// Open opens or creates the database directory at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{
		Filter: filter.NewBloomFilter(10),
	})
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func collectionPrefix(collection string) []byte {
	return append([]byte(collection), separator)
}

func entryKey(collection, key string) []byte {
	return append(collectionPrefix(collection), key...)
}

// List implements txstore.Store.
func (s *Store) List(_ context.Context, collection string) ([][]byte, error) {
	iter := s.db.NewIterator(util.BytesPrefix(collectionPrefix(collection)), nil)
	defer iter.Release()

	var values [][]byte
	for iter.Next() {
		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())
		values = append(values, value)
	}

	return values, iter.Error()
}

// Get implements txstore.Store.
func (s *Store) Get(_ context.Context, collection, key string) ([]byte, error) {
	value, err := s.db.Get(entryKey(collection, key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, txstore.ErrNotFound
	}

	return value, err
}

// Upsert implements txstore.Store.
func (s *Store) Upsert(_ context.Context, collection, key string, value []byte, resolve txstore.ConflictResolver) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	k := entryKey(collection, key)

	existing, err := s.db.Get(k, nil)
	switch {
	case errors.Is(err, leveldb.ErrNotFound):
	case err != nil:
		return err
	default:
		value = resolve(existing, value)
	}

	return s.db.Put(k, value, nil)
}

// Delete implements txstore.Store.
func (s *Store) Delete(_ context.Context, collection, key string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.db.Delete(entryKey(collection, key), nil)
}
