package listing

import (
	"context"

	"github.com/hearthapi/hearth/internal/db"
	domlisting "github.com/hearthapi/hearth/internal/domain/listing"
	"github.com/hearthapi/hearth/internal/domain/query"
)

// Repository defines the storage contract for property listings.
type Repository interface {
	Create(ctx context.Context, p *domlisting.Property) (string, error)
	Search(ctx context.Context, q query.Query) (items []db.Document, total int64, err error)
	Get(ctx context.Context, id string) (db.Document, error)
}
