package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/ports"
)

// ReportService manages user and feed reports.
type ReportService struct {
	disasters ports.DisasterRepository
	reports   ports.ReportRepository
	events    ports.EventPublisher
	clock     clockwork.Clock
	logger    *slog.Logger
}

// ReportServiceConfig holds the ReportService dependencies.
type ReportServiceConfig struct {
	Disasters ports.DisasterRepository
	Reports   ports.ReportRepository
	Events    ports.EventPublisher
	Clock     clockwork.Clock
	Logger    *slog.Logger
}

// NewReportService creates a ReportService.
func NewReportService(cfg ReportServiceConfig) *ReportService {
	return &ReportService{
		disasters: cfg.Disasters,
		reports:   cfg.Reports,
		events:    cfg.Events,
		clock:     orRealClock(cfg.Clock),
		logger:    orDefaultLogger(cfg.Logger).With(slog.String("component", "app.ReportService")),
	}
}

// Create files a user report against a disaster.
func (s *ReportService) Create(ctx context.Context, userID string, nr domain.NewReport) (*domain.Report, error) {
	nr.UserID = ownerOrSystem(userID)
	nr.SourceURI = ""
	nr.CreatedAt = s.clock.Now()
	nr.Content = strings.TrimSpace(nr.Content)
	if err := nr.Validate(); err != nil {
		return nil, err
	}

	created, err := s.reports.Create(ctx, nr)
	if err != nil {
		return nil, err
	}

	logger := requestLogger(ctx, s.logger, "Create")
	logger.InfoContext(ctx, "report created",
		slog.String("disaster_id", created.DisasterID),
		slog.String("report_id", created.ID),
	)
	publish(ctx, s.events, logger, domain.NewReportUpdatedEvent(created, s.clock.Now()))

	return created, nil
}

// List returns a disaster's reports newest first.
func (s *ReportService) List(ctx context.Context, disasterID string) ([]domain.Report, error) {
	if _, err := s.disasters.Get(ctx, disasterID); err != nil {
		return nil, err
	}
	return s.reports.ListByDisaster(ctx, disasterID)
}

// Update applies a partial update to a report.
func (s *ReportService) Update(ctx context.Context, id string, u domain.ReportUpdate) (*domain.Report, error) {
	if u.Empty() {
		return nil, domain.NewValidationError("", "at least one of content, image_url or verification_status is required")
	}

	updated, err := s.reports.Update(ctx, id, u)
	if err != nil {
		return nil, fmt.Errorf("updating report: %w", err)
	}

	logger := requestLogger(ctx, s.logger, "Update")
	logger.InfoContext(ctx, "report updated", slog.String("report_id", id))
	publish(ctx, s.events, logger, domain.NewReportUpdatedEvent(updated, s.clock.Now()))

	return updated, nil
}
