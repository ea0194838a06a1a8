package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jsamuelsen/disaster-response/internal/adapters/clients"
	"github.com/jsamuelsen/disaster-response/internal/domain"
)

// MapboxAdapter implements ports.Geocoder using Mapbox forward geocoding.
type MapboxAdapter struct {
	BaseAdapter
	token  string
	logger *slog.Logger
}

// NewMapboxAdapter creates a geocoder. The client's BaseURL should be the
// Mapbox API root (https://api.mapbox.com).
func NewMapboxAdapter(client *clients.Client, token string, logger *slog.Logger) *MapboxAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &MapboxAdapter{
		BaseAdapter: NewBaseAdapter(client),
		token:       token,
		logger:      logger.With(slog.String("component", "acl.MapboxAdapter")),
	}
}

type mapboxResponse struct {
	Features []mapboxFeature `json:"features"`
}

type mapboxFeature struct {
	Center    []float64 `json:"center"` // [lon, lat]
	PlaceName string    `json:"place_name"`
	Text      string    `json:"text"`
	Relevance float64   `json:"relevance"`
}

// Geocode resolves locationName to coordinates. The best match wins; no
// match is a not-found error.
func (a *MapboxAdapter) Geocode(ctx context.Context, locationName string) (*domain.GeocodeResult, error) {
	name := strings.TrimSpace(locationName)
	if err := ValidateRequired(name, "location_name"); err != nil {
		return nil, err
	}

	params := url.Values{
		"access_token": {a.token},
		"limit":        {"1"},
	}
	path := fmt.Sprintf("/geocoding/v5/mapbox.places/%s.json?%s", url.PathEscape(name), params.Encode())

	resp, err := a.Get(ctx, path, "geocode")
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponse[mapboxResponse](resp.Body)
	if err != nil {
		return nil, domain.NewUnavailableError(a.ServiceName(), err.Error())
	}

	if len(ext.Features) == 0 {
		return nil, domain.NewNotFoundError("location", name)
	}

	result, err := a.translate(name, &ext.Features[0])
	if err != nil {
		return nil, err
	}

	a.logger.DebugContext(ctx, "location geocoded",
		slog.String("location_name", name),
		slog.String("place_name", ext.Features[0].PlaceName),
		slog.Float64("relevance", ext.Features[0].Relevance),
	)

	return result, nil
}

func (a *MapboxAdapter) translate(name string, f *mapboxFeature) (*domain.GeocodeResult, error) {
	if len(f.Center) != 2 {
		return nil, domain.NewUnavailableError(a.ServiceName(), "feature has no center")
	}

	p := domain.Point{Lat: f.Center[1], Lng: f.Center[0]}
	if !p.Valid() {
		return nil, domain.NewUnavailableError(a.ServiceName(), "feature center out of range")
	}

	return &domain.GeocodeResult{LocationName: name, Point: p}, nil
}
