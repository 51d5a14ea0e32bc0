// Package intake implements the prospect capture use cases: inquiries about a
// property and general sales leads. The property reference on an inquiry is
// recorded as given, without an existence check.
package intake

import (
	"context"
	"fmt"

	domlisting "github.com/hearthapi/hearth/internal/domain/listing"
)

// Service handles inquiry and lead submission.
type Service struct {
	repo Repository
}

// New creates an intake service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// SubmitInquiry validates an inquiry, defaults its source and stores it.
func (s *Service) SubmitInquiry(ctx context.Context, in *domlisting.Inquiry) (string, error) {
	in.ApplyDefaults()
	if err := in.Validate(); err != nil {
		return "", err
	}

	id, err := s.repo.CreateInquiry(ctx, in)
	if err != nil {
		return "", fmt.Errorf("create inquiry: %w", err)
	}
	return id, nil
}

// SubmitLead validates a lead and stores it.
func (s *Service) SubmitLead(ctx context.Context, l *domlisting.Lead) (string, error) {
	if err := l.Validate(); err != nil {
		return "", err
	}

	id, err := s.repo.CreateLead(ctx, l)
	if err != nil {
		return "", fmt.Errorf("create lead: %w", err)
	}
	return id, nil
}
