package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/pkg/numeric"
)

// MemoryStore is a map-backed document store used in tests and local
// development. It honors the same contracts as the hosted store, including
// success on delete-of-absent.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]document.Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]document.Document)}
}

// Seed inserts a document under a fixed id, bypassing id generation.
func (s *MemoryStore) Seed(collection, id string, data document.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]document.Document)
	}
	s.collections[collection][id] = clone(data)
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (document.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return document.Record{}, fmt.Errorf("%s/%s: %w", collection, id, document.ErrNotFound)
	}
	return document.Record{ID: id, Data: clone(doc)}, nil
}

func (s *MemoryStore) List(ctx context.Context, collection string) ([]document.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []document.Record
	for id, doc := range s.collections[collection] {
		records = append(records, document.Record{ID: id, Data: clone(doc)})
	}
	return records, nil
}

func (s *MemoryStore) Query(ctx context.Context, collection string, eq map[string]interface{}, in *document.InFilter, order *document.Order, limit int) ([]document.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []document.Record
	for id, doc := range s.collections[collection] {
		if !matches(doc, eq, in) {
			continue
		}
		records = append(records, document.Record{ID: id, Data: clone(doc)})
	}

	if order != nil {
		sort.SliceStable(records, func(i, j int) bool {
			less := valueLess(records[i].Data[order.Field], records[j].Data[order.Field])
			if order.Desc {
				return !less && !valuesEqual(records[i].Data[order.Field], records[j].Data[order.Field])
			}
			return less
		})
	}

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (s *MemoryStore) Create(ctx context.Context, collection string, data document.Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]document.Document)
	}
	id := uuid.NewString()
	s.collections[collection][id] = clone(data)
	return id, nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, data document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return fmt.Errorf("%s/%s: %w", collection, id, document.ErrNotFound)
	}
	for k, v := range data {
		doc[k] = v
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

func matches(doc document.Document, eq map[string]interface{}, in *document.InFilter) bool {
	for field, want := range eq {
		if !valuesEqual(doc[field], want) {
			return false
		}
	}
	if in != nil {
		found := false
		for _, want := range in.Values {
			if valuesEqual(doc[in.Field], want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func valuesEqual(a, b interface{}) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	af, aok := numeric.ToFloatOK(a)
	bf, bok := numeric.ToFloatOK(b)
	return aok && bok && af == bf
}

func valueLess(a, b interface{}) bool {
	af, aok := numeric.ToFloatOK(a)
	bf, bok := numeric.ToFloatOK(b)
	if aok && bok {
		return af < bf
	}
	return numeric.ToString(a) < numeric.ToString(b)
}

func clone(doc document.Document) document.Document {
	out := make(document.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
