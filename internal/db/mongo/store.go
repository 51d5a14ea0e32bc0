// Package mongo implements the document store on MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/hearthapi/hearth/internal/db"
	"github.com/hearthapi/hearth/internal/domain/query"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for a MongoDB store.
type Config struct {
	URI      string
	Database string
}

// Store implements db.Store via the official MongoDB driver.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects a MongoDB store.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("uri is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("database name is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

// Ping checks connectivity against the primary.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close disconnects the client.
func (s *Store) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.client.Disconnect(ctx)
}

// WaitForReady polls Ping until the store responds or the timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for database: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// InsertOne stores a document and returns the hex form of its ObjectID.
func (s *Store) InsertOne(ctx context.Context, collection string, doc db.Document) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", &db.Error{Op: db.OpInsertOne, Err: err}
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

// Find returns documents matching the query, ordered and limited by it.
func (s *Store) Find(ctx context.Context, collection string, q query.Query) ([]db.Document, error) {
	opts := options.Find().
		SetSort(compileSort(q.Sort())).
		SetLimit(int64(q.Limit()))

	cur, err := s.db.Collection(collection).Find(ctx, compileFilter(q.Filter()), opts)
	if err != nil {
		return nil, &db.Error{Op: db.OpFind, Err: err}
	}
	defer func() { _ = cur.Close(ctx) }()

	var docs []db.Document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, &db.Error{Op: db.OpFind, Err: err}
	}
	return docs, nil
}

// Count returns the number of documents matching the filter, ignoring sort
// and limit.
func (s *Store) Count(ctx context.Context, collection string, f query.Expression) (int64, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, compileFilter(f))
	if err != nil {
		return 0, &db.Error{Op: db.OpCount, Err: err}
	}
	return n, nil
}

// FindByID resolves a document by its hex ObjectID. A malformed id is
// reported as db.ErrInvalidID, never as a server failure.
func (s *Store) FindByID(ctx context.Context, collection, id string) (db.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", db.ErrInvalidID, id)
	}

	var doc db.Document
	err = s.db.Collection(collection).FindOne(ctx, bson.M{db.IDField: oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, db.ErrDocumentNotFound
		}
		return nil, &db.Error{Op: db.OpFindByID, Err: err}
	}
	return doc, nil
}

// ListCollections names the database's collections.
func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, &db.Error{Op: db.OpListCollections, Err: err}
	}
	return names, nil
}
