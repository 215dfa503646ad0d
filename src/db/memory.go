package db

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps collections in process memory. It backs tests and the
// STORE=memory mode; data does not survive a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	docs  map[string]map[string]json.RawMessage
	order map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:  make(map[string]map[string]json.RawMessage),
		order: make(map[string][]string),
	}
}

func (s *MemoryStore) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.order[collection]
	docs := make([]json.RawMessage, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, cloneDoc(s.docs[collection][id]))
	}
	return docs, nil
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneDoc(doc), nil
}

func (s *MemoryStore) Insert(ctx context.Context, collection, id string, doc json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.docs[collection] == nil {
		s.docs[collection] = make(map[string]json.RawMessage)
	}
	if _, exists := s.docs[collection][id]; !exists {
		s.order[collection] = append(s.order[collection], id)
	}
	s.docs[collection][id] = cloneDoc(doc)
	return nil
}

func (s *MemoryStore) Replace(ctx context.Context, collection, id string, doc json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[collection][id]; !ok {
		return ErrNotFound
	}
	s.docs[collection][id] = cloneDoc(doc)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[collection][id]; !ok {
		return ErrNotFound
	}
	delete(s.docs[collection], id)

	ids := s.order[collection]
	for i, existing := range ids {
		if existing == id {
			s.order[collection] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) Close() {}

func cloneDoc(doc json.RawMessage) json.RawMessage {
	out := make(json.RawMessage, len(doc))
	copy(out, doc)
	return out
}
