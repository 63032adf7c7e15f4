package remote

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore keeps documents in process memory.
// Used in tests; FailWith makes every write fail.
type MemoryStore struct {
	mu       sync.Mutex
	docs     map[string]map[string]interface{}
	writes   int
	failWith error
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]map[string]interface{})}
}

// FailWith makes subsequent writes return err (nil restores success)
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

// SetDocument stores a copy of data under collection/document
func (s *MemoryStore) SetDocument(ctx context.Context, collection, document string, data map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.writes++
	if s.failWith != nil {
		return s.failWith
	}
	s.docs[collection+"/"+document] = maps.Clone(data)
	return nil
}

// Document returns a copy of the stored document and whether it exists
func (s *MemoryStore) Document(collection, document string) (map[string]interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[collection+"/"+document]
	return maps.Clone(doc), ok
}

// Writes returns the number of SetDocument calls, failed ones included
func (s *MemoryStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}
