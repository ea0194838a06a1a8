package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/platform/metrics"
	"github.com/jsamuelsen/disaster-response/internal/platform/telemetry"
	"github.com/jsamuelsen/disaster-response/internal/ports"
)

// DisasterService manages disaster records and the relief hub created with
// each new disaster.
type DisasterService struct {
	disasters ports.DisasterRepository
	resources ports.ResourceRepository
	locator   *GeocodeService
	events    ports.EventPublisher
	flags     ports.FeatureFlags
	metrics   *metrics.Metrics
	clock     clockwork.Clock
	logger    *slog.Logger
}

// DisasterServiceConfig holds the DisasterService dependencies. Events,
// Flags, Metrics, Clock and Logger are optional.
type DisasterServiceConfig struct {
	Disasters ports.DisasterRepository
	Resources ports.ResourceRepository
	Locator   *GeocodeService
	Events    ports.EventPublisher
	Flags     ports.FeatureFlags
	Metrics   *metrics.Metrics
	Clock     clockwork.Clock
	Logger    *slog.Logger
}

// NewDisasterService creates a DisasterService.
func NewDisasterService(cfg DisasterServiceConfig) *DisasterService {
	return &DisasterService{
		disasters: cfg.Disasters,
		resources: cfg.Resources,
		locator:   cfg.Locator,
		events:    cfg.Events,
		flags:     cfg.Flags,
		metrics:   cfg.Metrics,
		clock:     orRealClock(cfg.Clock),
		logger:    orDefaultLogger(cfg.Logger).With(slog.String("component", "app.DisasterService")),
	}
}

// Create validates and geocodes nd, stores it owned by userID and, unless
// the auto_relief_resource flag is off, adds a relief hub next to it.
func (s *DisasterService) Create(ctx context.Context, userID string, nd domain.NewDisaster) (_ *domain.Disaster, err error) {
	ctx, span := telemetry.StartSpan(ctx, "disaster.create", attribute.String("user_id", userID))
	defer func() { telemetry.EndSpan(span, err) }()

	if err := nd.Validate(); err != nil {
		return nil, err
	}

	located, err := s.locator.Resolve(ctx, nd.LocationName, nd.Description)
	if err != nil {
		return nil, err
	}

	locationName := strings.TrimSpace(nd.LocationName)
	if locationName == "" {
		locationName = located.LocationName
	}

	now := s.clock.Now()
	created, err := s.disasters.Create(ctx, &domain.Disaster{
		Title:        strings.TrimSpace(nd.Title),
		LocationName: locationName,
		Description:  nd.Description,
		Tags:         nd.Tags,
		Location:     located.Point,
		OwnerID:      ownerOrSystem(userID),
		AuditTrail:   []domain.AuditEntry{domain.NewAuditEntry(domain.AuditCreate, userID, now)},
	})
	if err != nil {
		return nil, fmt.Errorf("creating disaster: %w", err)
	}

	logger := requestLogger(ctx, s.logger, "Create")
	logger.InfoContext(ctx, "disaster created",
		slog.String("disaster_id", created.ID),
		slog.String("location_name", created.LocationName),
	)

	if s.reliefHubsEnabled(ctx) {
		s.createReliefHub(ctx, logger, created)
	}

	publish(ctx, s.events, logger, domain.NewDisasterUpdatedEvent(created, s.clock.Now()))

	return created, nil
}

func (s *DisasterService) reliefHubsEnabled(ctx context.Context) bool {
	if s.flags == nil {
		return true
	}
	return s.flags.IsEnabled(ctx, ports.FlagAutoReliefResource, true)
}

// createReliefHub never fails disaster creation.
func (s *DisasterService) createReliefHub(ctx context.Context, logger *slog.Logger, d *domain.Disaster) {
	now := s.clock.Now()
	hub, err := s.resources.Create(ctx, domain.ReliefHubFor(d, now))
	if err != nil {
		logger.WarnContext(ctx, "relief hub creation failed",
			slog.String("disaster_id", d.ID),
			slog.Any("error", err),
		)
		return
	}

	if s.metrics != nil {
		s.metrics.ReliefHubsCreated.Inc()
	}
	logger.InfoContext(ctx, "relief hub created",
		slog.String("disaster_id", d.ID),
		slog.String("resource_id", hub.ID),
		slog.String("type", hub.Type),
	)

	publish(ctx, s.events, logger, domain.NewResourcesUpdatedEvent(d.ID, []domain.Resource{*hub}, now))
}

// Get returns one disaster.
func (s *DisasterService) Get(ctx context.Context, id string) (*domain.Disaster, error) {
	return s.disasters.Get(ctx, id)
}

// List returns disasters newest first.
func (s *DisasterService) List(ctx context.Context, filter domain.DisasterFilter) ([]domain.Disaster, error) {
	filter.Tag = strings.TrimSpace(filter.Tag)
	return s.disasters.List(ctx, filter)
}

// Update applies u and records the change in the audit trail.
func (s *DisasterService) Update(ctx context.Context, userID, id string, u domain.DisasterUpdate) (*domain.Disaster, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if u.Title != nil {
		title := strings.TrimSpace(*u.Title)
		u.Title = &title
	}

	entry := domain.NewAuditEntry(domain.AuditUpdate, userID, s.clock.Now())
	updated, err := s.disasters.Update(ctx, id, u, entry)
	if err != nil {
		return nil, err
	}

	logger := requestLogger(ctx, s.logger, "Update")
	logger.InfoContext(ctx, "disaster updated", slog.String("disaster_id", id))
	publish(ctx, s.events, logger, domain.NewDisasterUpdatedEvent(updated, s.clock.Now()))

	return updated, nil
}

// Delete removes a disaster together with its resources and reports.
func (s *DisasterService) Delete(ctx context.Context, id string) error {
	if err := s.disasters.Delete(ctx, id); err != nil {
		return err
	}

	logger := requestLogger(ctx, s.logger, "Delete")
	logger.InfoContext(ctx, "disaster deleted", slog.String("disaster_id", id))
	publish(ctx, s.events, logger, domain.NewDisasterDeletedEvent(id, s.clock.Now()))

	return nil
}

func ownerOrSystem(userID string) string {
	if userID == "" {
		return domain.SystemUser
	}
	return userID
}
