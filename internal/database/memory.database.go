package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process DocumentStore used by tests and local
// development. A single mutex serializes whole operations, so concurrent
// read-modify-write sequences observe last-writer-wins without corruption.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]json.RawMessage),
	}
}

func (s *MemoryStore) Get(ctx context.Context, collection, key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.collections[collection][key]
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s/%s: %w", collection, key, err)
	}

	return true, nil
}

func (s *MemoryStore) Set(ctx context.Context, collection, key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", collection, key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]json.RawMessage)
	}
	s.collections[collection][key] = data

	return nil
}

func (s *MemoryStore) UpdateField(
	ctx context.Context,
	collection, key, field string,
	value any,
) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode field %s: %w", field, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.collections[collection][key]
	if !ok {
		return fmt.Errorf("%s/%s: %w", collection, key, ErrDocumentNotFound)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(existing, &doc); err != nil {
		return fmt.Errorf("decode %s/%s: %w", collection, key, err)
	}

	doc[field] = data

	merged, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", collection, key, err)
	}
	s.collections[collection][key] = merged

	return nil
}
