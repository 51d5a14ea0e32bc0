// Package listing persists property listings and shapes stored documents
// into their external representation.
package listing

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hearthapi/hearth/internal/db"
	"github.com/hearthapi/hearth/internal/domain"
	domlisting "github.com/hearthapi/hearth/internal/domain/listing"
	"github.com/hearthapi/hearth/internal/domain/query"
)

// Collection is the property collection name.
const Collection = "property"

// Repo implements usecase/listing.Repository on a document store.
type Repo struct {
	store db.Store
}

// New creates a property repository.
func New(store db.Store) *Repo {
	return &Repo{store: store}
}

// Create stores a new listing and returns its assigned id.
func (r *Repo) Create(ctx context.Context, p *domlisting.Property) (string, error) {
	doc, err := toDocument(p)
	if err != nil {
		return "", fmt.Errorf("encode property: %w", err)
	}

	id, err := r.store.InsertOne(ctx, Collection, doc)
	if err != nil {
		return "", fmt.Errorf("insert property: %w", err)
	}
	return id, nil
}

// Search runs the query and counts the total match set, normalizing every
// returned document. total may exceed len(items) because the count ignores
// the query limit.
func (r *Repo) Search(ctx context.Context, q query.Query) ([]db.Document, int64, error) {
	docs, err := r.store.Find(ctx, Collection, q)
	if err != nil {
		return nil, 0, fmt.Errorf("find properties: %w", err)
	}

	total, err := r.store.Count(ctx, Collection, q.Filter())
	if err != nil {
		return nil, 0, fmt.Errorf("count properties: %w", err)
	}

	items := make([]db.Document, len(docs))
	for i, doc := range docs {
		items[i] = Normalize(doc)
	}
	return items, total, nil
}

// Get resolves one listing by its external id. Syntactically invalid and
// unknown ids both surface as the not-found sentinel; only store failures
// pass through as errors.
func (r *Repo) Get(ctx context.Context, id string) (db.Document, error) {
	doc, err := r.store.FindByID(ctx, Collection, id)
	if err != nil {
		if errors.Is(err, db.ErrInvalidID) || errors.Is(err, db.ErrDocumentNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property %q: %w", id, err)
	}
	return Normalize(doc), nil
}

// toDocument converts a typed listing into a plain document via a BSON
// round trip, then strips the driver's named map/slice types so every store
// backend sees the same shapes.
func toDocument(p *domlisting.Property) (db.Document, error) {
	raw, err := bson.Marshal(p)
	if err != nil {
		return nil, err
	}
	var doc db.Document
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return plainDocument(doc), nil
}

func plainDocument(doc db.Document) db.Document {
	out := make(db.Document, len(doc))
	for k, v := range doc {
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v any) any {
	switch x := v.(type) {
	case primitive.M:
		return plainDocument(db.Document(x))
	case db.Document:
		return plainDocument(x)
	case primitive.A:
		return plainSlice(x)
	case []any:
		return plainSlice(x)
	default:
		return v
	}
}

func plainSlice(in []any) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = plainValue(v)
	}
	return out
}
