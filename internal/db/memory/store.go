// Package memory implements the document store in process memory. It backs
// unit tests and the "memory" database driver for local runs.
package memory

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/hearthapi/hearth/internal/db"
	"github.com/hearthapi/hearth/internal/domain/query"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

var idPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// Store keeps collections as insertion-ordered document slices. Assigned ids
// are zero-padded counters, so their lexical order matches insertion order —
// the same recency proxy ObjectIDs give.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]db.Document
	counter     uint64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{collections: make(map[string][]db.Document)}
}

// Ping always succeeds.
func (s *Store) Ping(_ context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() {}

// WaitForReady returns immediately.
func (s *Store) WaitForReady(_ context.Context, _ time.Duration) error { return nil }

// InsertOne stores a copy of the document and returns its assigned id.
func (s *Store) InsertOne(_ context.Context, collection string, doc db.Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	id := fmt.Sprintf("%024x", s.counter)

	stored := cloneDocument(doc)
	stored[db.IDField] = id
	s.collections[collection] = append(s.collections[collection], stored)
	return id, nil
}

// Find evaluates the filter over the collection, sorts and limits.
func (s *Store) Find(_ context.Context, collection string, q query.Query) ([]db.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []db.Document
	for _, doc := range s.collections[collection] {
		if matchExpression(doc, q.Filter()) {
			matched = append(matched, doc)
		}
	}

	sortDocuments(matched, q.Sort())

	if len(matched) > q.Limit() {
		matched = matched[:q.Limit()]
	}

	out := make([]db.Document, len(matched))
	for i, doc := range matched {
		out[i] = cloneDocument(doc)
	}
	return out, nil
}

// Count returns the number of matching documents, ignoring sort and limit.
func (s *Store) Count(_ context.Context, collection string, f query.Expression) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, doc := range s.collections[collection] {
		if matchExpression(doc, f) {
			n++
		}
	}
	return n, nil
}

// FindByID resolves a document by id. Ids that do not look like native keys
// are rejected as invalid, mirroring the ObjectID hex check.
func (s *Store) FindByID(_ context.Context, collection, id string) (db.Document, error) {
	if !idPattern.MatchString(id) {
		return nil, fmt.Errorf("%w: %q", db.ErrInvalidID, id)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if doc[db.IDField] == id {
			return cloneDocument(doc), nil
		}
	}
	return nil, db.ErrDocumentNotFound
}

// ListCollections names the non-empty collections in stable order.
func (s *Store) ListCollections(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func cloneDocument(doc db.Document) db.Document {
	out := make(db.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
