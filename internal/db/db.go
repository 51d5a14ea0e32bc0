// Package db defines the document store boundary: named collections with
// generic insert/find/count operations driven by a query.Query. Concrete
// drivers live in the subpackages.
package db

import (
	"context"
	"time"

	"github.com/hearthapi/hearth/internal/domain/query"
)

// IDField is the reserved key a driver stores its native identifier under.
// It never leaves the repository layer in its native form.
const IDField = "_id"

// Document is a stored record as the driver returns it, including the
// native identifier under IDField.
type Document = map[string]any

// Store is the document store facade. Drivers must be safe for concurrent
// use by multiple in-flight requests.
type Store interface {
	Pinger

	// InsertOne stores a document in the named collection and returns the
	// string form of the store-assigned identifier.
	InsertOne(ctx context.Context, collection string, doc Document) (string, error)

	// Find returns documents matching the query filter, ordered by its sort
	// key and capped at its limit.
	Find(ctx context.Context, collection string, q query.Query) ([]Document, error)

	// Count returns the number of documents matching the filter alone,
	// unaffected by any sort or limit.
	Count(ctx context.Context, collection string, f query.Expression) (int64, error)

	// FindByID resolves a single document by the string form of its
	// identifier. A syntactically invalid id yields ErrInvalidID; an unknown
	// one yields ErrDocumentNotFound.
	FindByID(ctx context.Context, collection, id string) (Document, error)

	// ListCollections names the existing collections, for diagnostics.
	ListCollections(ctx context.Context) ([]string, error)

	WaitForReady(ctx context.Context, timeout time.Duration) error
	Close()
}

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KV is the small key-value surface the read cache needs.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
