package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/disaster-response/internal/domain"
)

// DisasterRepository persists disasters.
type DisasterRepository interface {
	// Create inserts a disaster and returns it with its generated id and
	// timestamps.
	Create(ctx context.Context, d *domain.Disaster) (*domain.Disaster, error)

	// Get returns domain.ErrNotFound if the disaster does not exist.
	Get(ctx context.Context, id string) (*domain.Disaster, error)

	// List returns disasters newest first.
	List(ctx context.Context, filter domain.DisasterFilter) ([]domain.Disaster, error)

	// Update applies u and appends entry to the audit trail.
	// Returns domain.ErrNotFound if the disaster does not exist.
	Update(ctx context.Context, id string, u domain.DisasterUpdate, entry domain.AuditEntry) (*domain.Disaster, error)

	// Delete returns domain.ErrNotFound if the disaster does not exist.
	Delete(ctx context.Context, id string) error
}

// ResourceRepository persists relief resources.
type ResourceRepository interface {
	Create(ctx context.Context, r domain.NewResource) (*domain.Resource, error)

	// List returns up to page.Limit+1 resources newest first, starting after
	// page.After when set. The extra row tells callers another page exists.
	List(ctx context.Context, page PageRequest) ([]domain.Resource, error)

	// Nearby returns the disaster's resources within the query radius,
	// nearest first, with DistanceMeters set.
	Nearby(ctx context.Context, q domain.NearbyQuery) ([]domain.Resource, error)
}

// ReportRepository persists reports.
type ReportRepository interface {
	Create(ctx context.Context, r domain.NewReport) (*domain.Report, error)

	// UpsertFromFeed inserts feed reports, updating content of reports already
	// ingested for the same disaster and source URI.
	UpsertFromFeed(ctx context.Context, reports []domain.NewReport) ([]domain.Report, error)

	// Get returns domain.ErrNotFound if the report does not exist.
	Get(ctx context.Context, id string) (*domain.Report, error)

	// ListByDisaster returns a disaster's reports newest first.
	ListByDisaster(ctx context.Context, disasterID string) ([]domain.Report, error)

	// Update returns domain.ErrNotFound if the report does not exist.
	Update(ctx context.Context, id string, u domain.ReportUpdate) (*domain.Report, error)

	// RecordVerification stores an image verification outcome and appends its
	// audit entry.
	RecordVerification(ctx context.Context, id string, v domain.ReportVerification) (*domain.Report, error)
}

// PageRequest selects one page of a keyset-paginated listing.
type PageRequest struct {
	After *PageCursor
	Limit int
}

// PageCursor is the position of the last row of the previous page.
type PageCursor struct {
	CreatedAt time.Time
	ID        string
}

// LookupCache stores serialized lookup results with an expiry.
type LookupCache interface {
	// Get returns ok=false for a missing or expired key.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
