package main

import (
	"context"
	"fmt"

	"github.com/gabapcia/txrelay/internal/config"
	"github.com/gabapcia/txrelay/internal/infra/storage/bolt"
	"github.com/gabapcia/txrelay/internal/infra/storage/leveldb"
	"github.com/gabapcia/txrelay/internal/infra/storage/redis"
	"github.com/gabapcia/txrelay/internal/txstore"
)

func openStore(ctx context.Context, cfg config.Storage) (txstore.Store, func() error, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return txstore.NewMemoryStore(), func() error { return nil }, nil
	case config.DriverRedis:
		client, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		return client, client.Close, nil
	case config.DriverLevelDB:
		store, err := leveldb.Open(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open leveldb: %w", err)
		}
		return store, store.Close, nil
	default:
		store, err := bolt.Open(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt: %w", err)
		}
		return store, store.Close, nil
	}
}
