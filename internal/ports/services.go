// Package ports defines the interfaces the application layer depends on.
// Adapters implement them for Postgres, the in-memory store, the upstream
// APIs and the broadcast sinks.
//
// Every method takes a context first and speaks domain types. Errors use the
// domain sentinels (ErrNotFound, ErrValidation, ErrUnavailable).
package ports

import (
	"context"

	"github.com/jsamuelsen/disaster-response/internal/domain"
)

// LocationExtractor pulls a place name out of free text.
type LocationExtractor interface {
	// ExtractLocation returns domain.ErrValidation when no location is found.
	ExtractLocation(ctx context.Context, description string) (string, error)
}

// Geocoder resolves a place name to coordinates.
type Geocoder interface {
	// Geocode returns domain.ErrNotFound when the place cannot be resolved.
	Geocode(ctx context.Context, locationName string) (*domain.GeocodeResult, error)
}

// SocialFeed searches a public social feed.
type SocialFeed interface {
	SearchPosts(ctx context.Context, keyword string, limit int) ([]domain.SocialPost, error)
}

// ImageFetcher downloads an image for analysis.
type ImageFetcher interface {
	FetchImage(ctx context.Context, imageURL string) (*domain.Image, error)
}

// ImageAnalyzer asks a vision model whether an image is authentic.
type ImageAnalyzer interface {
	AnalyzeImage(ctx context.Context, img *domain.Image) (*domain.ImageAssessment, error)
}

// EventPublisher broadcasts change events to subscribers and sinks.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
