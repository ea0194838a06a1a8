package acl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/platform/metrics"
	"github.com/jsamuelsen/disaster-response/internal/ports"
)

// Cache key prefixes. Keys are prefix + the raw lookup input.
const (
	LocationCachePrefix = "gemini_location:"
	GeocodeCachePrefix  = "geocode:"
)

// lookupCache wraps a ports.LookupCache with JSON encoding, metrics and
// error swallowing: a cache failure is logged and treated as a miss.
type lookupCache struct {
	store   ports.LookupCache
	ttl     time.Duration
	kind    string
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func (c *lookupCache) get(ctx context.Context, key string, dst any) bool {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.Any("error", err))
		ok = false
	}
	if ok {
		if err := json.Unmarshal(raw, dst); err != nil {
			c.logger.WarnContext(ctx, "cache entry unreadable", slog.String("key", key), slog.Any("error", err))
			ok = false
		}
	}

	if c.metrics != nil {
		result := "miss"
		if ok {
			result = "hit"
		}
		c.metrics.LookupCache.WithLabelValues(c.kind, result).Inc()
	}

	return ok
}

func (c *lookupCache) set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err == nil {
		err = c.store.Set(ctx, key, raw, c.ttl)
	}
	if err != nil {
		c.logger.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

// CachedLocationExtractor decorates a ports.LocationExtractor with a
// lookup cache keyed by the description.
type CachedLocationExtractor struct {
	inner ports.LocationExtractor
	cache lookupCache
}

// NewCachedLocationExtractor wraps inner. m may be nil.
func NewCachedLocationExtractor(inner ports.LocationExtractor, store ports.LookupCache, ttl time.Duration, m *metrics.Metrics, logger *slog.Logger) *CachedLocationExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedLocationExtractor{
		inner: inner,
		cache: lookupCache{store: store, ttl: ttl, kind: "extract", metrics: m, logger: logger},
	}
}

// ExtractLocation implements ports.LocationExtractor.
func (c *CachedLocationExtractor) ExtractLocation(ctx context.Context, description string) (string, error) {
	key := LocationCachePrefix + description

	var name string
	if c.cache.get(ctx, key, &name) && name != "" {
		return name, nil
	}

	name, err := c.inner.ExtractLocation(ctx, description)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(name) != "" {
		c.cache.set(ctx, key, name)
	}
	return name, nil
}

// CachedGeocoder decorates a ports.Geocoder with a lookup cache keyed by
// location name.
type CachedGeocoder struct {
	inner ports.Geocoder
	cache lookupCache
}

// cachedPoint is the stored form of a geocode result.
type cachedPoint struct {
	LocationName string  `json:"location_name"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

// NewCachedGeocoder wraps inner. m may be nil.
func NewCachedGeocoder(inner ports.Geocoder, store ports.LookupCache, ttl time.Duration, m *metrics.Metrics, logger *slog.Logger) *CachedGeocoder {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedGeocoder{
		inner: inner,
		cache: lookupCache{store: store, ttl: ttl, kind: "geocode", metrics: m, logger: logger},
	}
}

// Geocode implements ports.Geocoder.
func (c *CachedGeocoder) Geocode(ctx context.Context, locationName string) (*domain.GeocodeResult, error) {
	key := GeocodeCachePrefix + locationName

	var hit cachedPoint
	if c.cache.get(ctx, key, &hit) {
		p := domain.Point{Lat: hit.Lat, Lng: hit.Lng}
		if p.Valid() {
			return &domain.GeocodeResult{LocationName: hit.LocationName, Point: p}, nil
		}
	}

	result, err := c.inner.Geocode(ctx, locationName)
	if err != nil {
		return nil, err
	}

	c.cache.set(ctx, key, cachedPoint{
		LocationName: result.LocationName,
		Lat:          result.Point.Lat,
		Lng:          result.Point.Lng,
	})
	return result, nil
}
