package listing

import (
	"fmt"

	"github.com/hearthapi/hearth/internal/domain"
)

// DefaultInquirySource is recorded when an inquiry arrives without one.
const DefaultInquirySource = "website"

// Inquiry is a prospect message about a specific property or a general one.
// The property reference is weak: no existence check is performed.
type Inquiry struct {
	PropertyID string `bson:"property_id,omitempty" json:"property_id,omitempty"`
	Name       string `bson:"name" json:"name"`
	Email      string `bson:"email" json:"email"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
	Message    string `bson:"message,omitempty" json:"message,omitempty"`
	Source     string `bson:"source" json:"source"`
}

// ApplyDefaults fills the source when absent.
func (i *Inquiry) ApplyDefaults() {
	if i.Source == "" {
		i.Source = DefaultInquirySource
	}
}

// Validate checks required fields.
func (i *Inquiry) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("inquiry name is required: %w", domain.ErrValidation)
	}
	if i.Email == "" {
		return fmt.Errorf("inquiry email is required: %w", domain.ErrValidation)
	}
	return nil
}

// Lead is a prospect capture. Interest is "buy", "sell" or "rent" by
// convention only.
type Lead struct {
	Name          string `bson:"name" json:"name"`
	Email         string `bson:"email" json:"email"`
	Phone         string `bson:"phone,omitempty" json:"phone,omitempty"`
	Interest      string `bson:"interest,omitempty" json:"interest,omitempty"`
	PreferredArea string `bson:"preferred_area,omitempty" json:"preferred_area,omitempty"`
}

// Validate checks required fields.
func (l *Lead) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("lead name is required: %w", domain.ErrValidation)
	}
	if l.Email == "" {
		return fmt.Errorf("lead email is required: %w", domain.ErrValidation)
	}
	return nil
}
