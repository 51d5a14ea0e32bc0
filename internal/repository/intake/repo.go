// Package intake persists buyer inquiries and sales leads. Both are written
// once and never read back through the API.
package intake

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/hearthapi/hearth/internal/db"
	domlisting "github.com/hearthapi/hearth/internal/domain/listing"
)

// Collection names.
const (
	CollectionInquiry = "inquiry"
	CollectionLead    = "lead"
)

// Repo implements usecase/intake.Repository on a document store.
type Repo struct {
	store db.Store
}

// New creates an intake repository.
func New(store db.Store) *Repo {
	return &Repo{store: store}
}

// CreateInquiry stores an inquiry and returns its assigned id.
func (r *Repo) CreateInquiry(ctx context.Context, in *domlisting.Inquiry) (string, error) {
	doc, err := toDocument(in)
	if err != nil {
		return "", fmt.Errorf("encode inquiry: %w", err)
	}
	id, err := r.store.InsertOne(ctx, CollectionInquiry, doc)
	if err != nil {
		return "", fmt.Errorf("insert inquiry: %w", err)
	}
	return id, nil
}

// CreateLead stores a lead and returns its assigned id.
func (r *Repo) CreateLead(ctx context.Context, l *domlisting.Lead) (string, error) {
	doc, err := toDocument(l)
	if err != nil {
		return "", fmt.Errorf("encode lead: %w", err)
	}
	id, err := r.store.InsertOne(ctx, CollectionLead, doc)
	if err != nil {
		return "", fmt.Errorf("insert lead: %w", err)
	}
	return id, nil
}

func toDocument(v any) (db.Document, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc db.Document
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
