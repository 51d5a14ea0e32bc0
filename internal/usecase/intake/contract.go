package intake

import (
	"context"

	domlisting "github.com/hearthapi/hearth/internal/domain/listing"
)

// Repository defines the storage contract for inquiries and leads.
type Repository interface {
	CreateInquiry(ctx context.Context, in *domlisting.Inquiry) (string, error)
	CreateLead(ctx context.Context, l *domlisting.Lead) (string, error)
}
