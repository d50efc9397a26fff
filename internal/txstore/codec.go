package txstore

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// List decodes every value of collection into T.
func List[T any](ctx context.Context, s Store, collection string) ([]T, error) {
	raw, err := s.List(ctx, collection)
	if err != nil {
		return nil, err
	}

	values := make([]T, 0, len(raw))
	for _, data := range raw {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode %s entry: %w", collection, err)
		}
		values = append(values, v)
	}

	return values, nil
}

// ListValid decodes every value of collection into T. Entries that fail to
// decode are handed to onInvalid and left out of the result.
func ListValid[T any](ctx context.Context, s Store, collection string, onInvalid func(error)) ([]T, error) {
	raw, err := s.List(ctx, collection)
	if err != nil {
		return nil, err
	}

	values := make([]T, 0, len(raw))
	for _, data := range raw {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			onInvalid(fmt.Errorf("decode %s entry: %w", collection, err))
			continue
		}
		values = append(values, v)
	}

	return values, nil
}

// Get decodes the value stored under key.
func Get[T any](ctx context.Context, s Store, collection, key string) (T, error) {
	var v T

	data, err := s.Get(ctx, collection, key)
	if err != nil {
		return v, err
	}

	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode %s/%s: %w", collection, key, err)
	}

	return v, nil
}

// Upsert encodes value and stores it under key using resolve on conflict.
func Upsert[T any](ctx context.Context, s Store, collection, key string, value T, resolve ConflictResolver) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", collection, key, err)
	}

	return s.Upsert(ctx, collection, key, data, resolve)
}
