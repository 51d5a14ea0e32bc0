package listing

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/hearthapi/hearth/internal/db"
	domlisting "github.com/hearthapi/hearth/internal/domain/listing"
	"github.com/hearthapi/hearth/internal/domain/query"
)

const cacheKeyPrefix = "hearth:property:"

// Cached decorates a Repo with a key-value read cache for single-property
// lookups. Listings are immutable once created, so entries only ever expire,
// never invalidate. Cache failures degrade to the inner repository.
type Cached struct {
	inner      *Repo
	kv         db.KV
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// NewCached creates the caching decorator. cacheTotal is a counter vec with
// label "result" ("hit"/"miss") and may be nil.
func NewCached(
	inner *Repo,
	kv db.KV,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *Cached {
	return &Cached{
		inner:      inner,
		kv:         kv,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Create delegates to the inner repository.
func (c *Cached) Create(ctx context.Context, p *domlisting.Property) (string, error) {
	return c.inner.Create(ctx, p)
}

// Search delegates to the inner repository. Search pages are not cached:
// the parameter space is wide and totals must stay exact.
func (c *Cached) Search(ctx context.Context, q query.Query) ([]db.Document, int64, error) {
	return c.inner.Search(ctx, q)
}

// Get returns a cached normalized document or falls through to the store.
func (c *Cached) Get(ctx context.Context, id string) (db.Document, error) {
	key := cacheKeyPrefix + id

	if doc, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return doc, nil
	}
	c.incCache("miss")

	doc, err := c.inner.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.putToCache(ctx, key, doc)
	return doc, nil
}

func (c *Cached) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *Cached) getFromCache(ctx context.Context, key string) (db.Document, bool) {
	data, err := c.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to read property cache", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var doc db.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		c.logger.Warn("Failed to decode cached property", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return doc, true
}

func (c *Cached) putToCache(ctx context.Context, key string, doc db.Document) {
	data, err := json.Marshal(doc)
	if err != nil {
		c.logger.Warn("Failed to encode property for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.kv.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to write property cache", zap.String("key", key), zap.Error(err))
	}
}
