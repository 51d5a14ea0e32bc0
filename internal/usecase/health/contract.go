package health

import "context"

// Store checks database availability and enumerates its collections.
type Store interface {
	Ping(ctx context.Context) error
	ListCollections(ctx context.Context) ([]string, error)
}
