// Package health reports service and database availability.
package health

import "context"

// Component states reported by Check.
const (
	// StateUp indicates the component responds.
	StateUp = "up"
	// StateDown indicates the component does not respond.
	StateDown = "down"
	// StateDegraded indicates the database responds but collection
	// enumeration fails.
	StateDegraded = "degraded"
)

// maxReportedCollections caps the collection list in the report.
const maxReportedCollections = 10

// Report aggregates the health probe outcome.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseName     string   `json:"database_name,omitempty"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	Error            string   `json:"error,omitempty"`
}

// Service coordinates health checks.
type Service struct {
	store  Store
	dbName string
}

// New creates a Service. store can be nil when no database is configured.
func New(store Store, dbName string) *Service {
	return &Service{store: store, dbName: dbName}
}

// Check probes the database and lists up to ten of its collections. The
// backend itself is always reported up; a probe failure downgrades only the
// database fields.
func (s *Service) Check(ctx context.Context) Report {
	r := Report{
		Backend:          StateUp,
		Database:         StateDown,
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if s.store == nil {
		return r
	}

	if err := s.store.Ping(ctx); err != nil {
		r.Error = err.Error()
		return r
	}
	r.Database = StateUp
	r.DatabaseName = s.dbName
	r.ConnectionStatus = "connected"

	names, err := s.store.ListCollections(ctx)
	if err != nil {
		r.Database = StateDegraded
		r.Error = err.Error()
		return r
	}
	if len(names) > maxReportedCollections {
		names = names[:maxReportedCollections]
	}
	r.Collections = names
	return r
}
