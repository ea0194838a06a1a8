package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/platform/telemetry"
	"github.com/jsamuelsen/disaster-response/internal/ports"
)

// LocationLookupError reports a failed extraction or geocoding step. It
// unwraps to domain.ErrUnavailable only, so an upstream "not found" or
// "no location" never surfaces as a client error.
type LocationLookupError struct {
	Step  string
	Input string
	Cause error
}

// Error implements the error interface.
func (e *LocationLookupError) Error() string {
	return fmt.Sprintf("location %s failed for %q: %v", e.Step, e.Input, e.Cause)
}

// Unwrap returns domain.ErrUnavailable.
func (e *LocationLookupError) Unwrap() error {
	return domain.ErrUnavailable
}

// GeocodeService turns free text or place names into coordinates.
type GeocodeService struct {
	extractor ports.LocationExtractor
	geocoder  ports.Geocoder
	logger    *slog.Logger
}

// GeocodeServiceConfig holds the GeocodeService dependencies.
type GeocodeServiceConfig struct {
	Extractor ports.LocationExtractor
	Geocoder  ports.Geocoder
	Logger    *slog.Logger
}

// NewGeocodeService creates a GeocodeService.
func NewGeocodeService(cfg GeocodeServiceConfig) *GeocodeService {
	return &GeocodeService{
		extractor: cfg.Extractor,
		geocoder:  cfg.Geocoder,
		logger:    orDefaultLogger(cfg.Logger).With(slog.String("component", "app.GeocodeService")),
	}
}

// Locate extracts a place name from description and geocodes it.
func (s *GeocodeService) Locate(ctx context.Context, description string) (*domain.GeocodeResult, error) {
	if strings.TrimSpace(description) == "" {
		return nil, domain.NewValidationError("description", "Description is required and must be a string.")
	}
	return s.Resolve(ctx, "", description)
}

// Resolve geocodes locationName, extracting it from description first when
// it is blank.
func (s *GeocodeService) Resolve(ctx context.Context, locationName, description string) (_ *domain.GeocodeResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "location.resolve",
		attribute.Bool("location.extracted", strings.TrimSpace(locationName) == ""))
	defer func() { telemetry.EndSpan(span, err) }()

	logger := requestLogger(ctx, s.logger, "Resolve")

	name := strings.TrimSpace(locationName)
	if name == "" {
		extracted, err := s.extractor.ExtractLocation(ctx, description)
		if err != nil {
			return nil, &LocationLookupError{Step: "extraction", Input: description, Cause: err}
		}
		logger.DebugContext(ctx, "location extracted", slog.String("location_name", extracted))
		name = extracted
	}

	return s.Geocode(ctx, name)
}

// Geocode resolves a place name.
func (s *GeocodeService) Geocode(ctx context.Context, locationName string) (*domain.GeocodeResult, error) {
	result, err := s.geocoder.Geocode(ctx, locationName)
	if err != nil {
		return nil, &LocationLookupError{Step: "geocoding", Input: locationName, Cause: err}
	}
	return result, nil
}
