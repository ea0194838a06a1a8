package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/ports"
)

// ResourceService manages relief resources.
type ResourceService struct {
	resources ports.ResourceRepository
	locator   *GeocodeService
	events    ports.EventPublisher
	clock     clockwork.Clock
	logger    *slog.Logger
}

// ResourceServiceConfig holds the ResourceService dependencies.
type ResourceServiceConfig struct {
	Resources ports.ResourceRepository
	Locator   *GeocodeService
	Events    ports.EventPublisher
	Clock     clockwork.Clock
	Logger    *slog.Logger
}

// NewResourceService creates a ResourceService.
func NewResourceService(cfg ResourceServiceConfig) *ResourceService {
	return &ResourceService{
		resources: cfg.Resources,
		locator:   cfg.Locator,
		events:    cfg.Events,
		clock:     orRealClock(cfg.Clock),
		logger:    orDefaultLogger(cfg.Logger).With(slog.String("component", "app.ResourceService")),
	}
}

// List returns up to page.Limit+1 resources newest first; the extra row
// tells the caller another page exists.
func (s *ResourceService) List(ctx context.Context, page ports.PageRequest) ([]domain.Resource, error) {
	return s.resources.List(ctx, page)
}

// Create stores a resource, geocoding its location name when no coordinates
// were supplied.
func (s *ResourceService) Create(ctx context.Context, nr domain.NewResource) (*domain.Resource, error) {
	if err := nr.Validate(); err != nil {
		return nil, err
	}

	if nr.Location == nil {
		located, err := s.locator.Geocode(ctx, nr.LocationName)
		if err != nil {
			return nil, err
		}
		nr.Location = &located.Point
	}

	created, err := s.resources.Create(ctx, nr)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	logger := requestLogger(ctx, s.logger, "Create")
	logger.InfoContext(ctx, "resource created",
		slog.String("disaster_id", created.DisasterID),
		slog.String("resource_id", created.ID),
	)
	publish(ctx, s.events, logger,
		domain.NewResourcesUpdatedEvent(created.DisasterID, []domain.Resource{*created}, s.clock.Now()))

	return created, nil
}

// Nearby returns a disaster's resources within the query radius, nearest
// first. A zero radius selects domain.DefaultNearbyRadiusMeters.
func (s *ResourceService) Nearby(ctx context.Context, q domain.NearbyQuery) ([]domain.Resource, error) {
	if q.RadiusMeters == 0 {
		q.RadiusMeters = domain.DefaultNearbyRadiusMeters
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	found, err := s.resources.Nearby(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("finding nearby resources: %w", err)
	}

	logger := requestLogger(ctx, s.logger, "Nearby")
	logger.DebugContext(ctx, "nearby resources",
		slog.String("disaster_id", q.DisasterID),
		slog.Int("count", len(found)),
	)
	publish(ctx, s.events, logger, domain.NewResourcesUpdatedEvent(q.DisasterID, found, s.clock.Now()))

	return found, nil
}
