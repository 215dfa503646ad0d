package db

import (
	"context"
	"encoding/json"

	"github.com/dgraph-io/ristretto"
)

// CachedStore wraps a Store with a ristretto snapshot cache, one entry per
// collection. The dashboard re-reads all three collections on every render,
// so cached list snapshots absorb most of that traffic. Any mutation to a
// collection drops its snapshot; single-writer last-write-wins semantics make
// that sufficient.
type CachedStore struct {
	inner Store
	cache *ristretto.Cache
}

func NewCachedStore(inner Store) (*CachedStore, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1000, // number of keys to track frequency of
		MaxCost:     100,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		return nil, err
	}
	return &CachedStore{inner: inner, cache: cache}, nil
}

func (s *CachedStore) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	if cached, ok := s.cache.Get(collection); ok {
		if docs, ok := cached.([]json.RawMessage); ok {
			return docs, nil
		}
	}

	docs, err := s.inner.List(ctx, collection)
	if err != nil {
		return nil, err
	}
	s.cache.Set(collection, docs, 1)
	return docs, nil
}

func (s *CachedStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	return s.inner.Get(ctx, collection, id)
}

func (s *CachedStore) Insert(ctx context.Context, collection, id string, doc json.RawMessage) error {
	if err := s.inner.Insert(ctx, collection, id, doc); err != nil {
		return err
	}
	s.cache.Del(collection)
	return nil
}

func (s *CachedStore) Replace(ctx context.Context, collection, id string, doc json.RawMessage) error {
	if err := s.inner.Replace(ctx, collection, id, doc); err != nil {
		return err
	}
	s.cache.Del(collection)
	return nil
}

func (s *CachedStore) Delete(ctx context.Context, collection, id string) error {
	if err := s.inner.Delete(ctx, collection, id); err != nil {
		return err
	}
	s.cache.Del(collection)
	return nil
}

func (s *CachedStore) Close() {
	s.cache.Close()
	s.inner.Close()
}
