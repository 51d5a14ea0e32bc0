// Package listing implements the property listing use cases: creation with
// defaulting and validation, parameterized search and single lookup.
package listing

import (
	"context"
	"fmt"

	"github.com/hearthapi/hearth/internal/db"
	domlisting "github.com/hearthapi/hearth/internal/domain/listing"
	"github.com/hearthapi/hearth/internal/domain/query"
)

// SearchResult carries one page of listings plus the total match count.
// Total counts the whole filtered set, not the page.
type SearchResult struct {
	Items []db.Document
	Total int64
}

// Service handles property listing operations.
type Service struct {
	repo    Repository
	builder query.Builder
}

// New creates a listing service with default pagination limits.
func New(repo Repository) *Service {
	return &Service{repo: repo, builder: query.NewBuilder()}
}

// WithLimits configures the default and maximum search limits.
func (s *Service) WithLimits(defaultLimit, maxLimit int) *Service {
	s.builder = s.builder.WithLimits(defaultLimit, maxLimit)
	return s
}

// Create validates a new listing, fills defaults and stores it. The returned
// id is the store-assigned external id.
func (s *Service) Create(ctx context.Context, p *domlisting.Property) (string, error) {
	p.ApplyDefaults()
	if err := p.Validate(); err != nil {
		return "", err
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return "", fmt.Errorf("create property: %w", err)
	}
	return id, nil
}

// Search translates the request parameters into a query and runs it.
func (s *Service) Search(ctx context.Context, p query.Params) (SearchResult, error) {
	q, err := s.builder.Build(p)
	if err != nil {
		return SearchResult{}, fmt.Errorf("build query: %w", err)
	}

	items, total, err := s.repo.Search(ctx, q)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search properties: %w", err)
	}
	return SearchResult{Items: items, Total: total}, nil
}

// Get returns one listing by id.
func (s *Service) Get(ctx context.Context, id string) (db.Document, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
