package domain

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"time"
)

// Relief resource types assigned to auto-created hubs.
const (
	ResourceTypeFloodRelief      = "Flood Relief"
	ResourceTypeEarthquakeRelief = "Earthquake Relief"
	ResourceTypeGeneralRelief    = "General Relief"
)

const (
	// ReliefHubOffsetMeters and ReliefHubBearing place the default hub due east
	// of the disaster.
	ReliefHubOffsetMeters = 100.0
	ReliefHubBearing      = 90.0

	// DefaultNearbyRadiusMeters is the search radius when none is given.
	DefaultNearbyRadiusMeters = 10000.0
)

var (
	floodTag      = regexp.MustCompile(`(?i)flood`)
	earthquakeTag = regexp.MustCompile(`(?i)earthquake`)
)

// Resource is a relief asset (shelter, hospital, relief hub) tied to a disaster.
type Resource struct {
	ID           string
	DisasterID   string
	Name         string
	LocationName string
	Type         string
	Location     Point
	CreatedAt    time.Time

	// DistanceMeters is set on nearby search results only.
	DistanceMeters float64
}

// NewResource is the caller-supplied part of a resource. Location is nil when
// it must be geocoded from LocationName.
type NewResource struct {
	DisasterID   string
	Name         string
	LocationName string
	Type         string
	Location     *Point
}

// Validate checks that every required field is present.
func (n NewResource) Validate() error {
	if strings.TrimSpace(n.DisasterID) == "" ||
		strings.TrimSpace(n.Name) == "" ||
		strings.TrimSpace(n.LocationName) == "" ||
		strings.TrimSpace(n.Type) == "" {
		return NewValidationError("", "Missing required fields: disaster_id, name, location_name, type")
	}
	if n.Location != nil && !n.Location.Valid() {
		return NewValidationErrorWithValue("location", "latitude or longitude out of range", *n.Location)
	}
	return nil
}

// NearbyQuery selects a disaster's resources within a radius of Center.
type NearbyQuery struct {
	DisasterID   string
	Center       Point
	RadiusMeters float64
}

// Validate checks the query center and radius.
func (q NearbyQuery) Validate() error {
	if !q.Center.Valid() {
		return NewValidationError("", "Latitude and longitude are required.")
	}
	if q.RadiusMeters <= 0 {
		return NewValidationErrorWithValue("radius", "radius must be positive", q.RadiusMeters)
	}
	return nil
}

// ReliefTypeForTags picks the hub type from a disaster's tags. Flood wins
// over earthquake.
func ReliefTypeForTags(tags []string) string {
	for _, tag := range tags {
		if floodTag.MatchString(tag) {
			return ResourceTypeFloodRelief
		}
	}
	for _, tag := range tags {
		if earthquakeTag.MatchString(tag) {
			return ResourceTypeEarthquakeRelief
		}
	}
	return ResourceTypeGeneralRelief
}

// ReliefHubFor builds the default relief resource for a newly created disaster.
func ReliefHubFor(d *Disaster, now time.Time) NewResource {
	loc := Destination(d.Location, ReliefHubOffsetMeters, ReliefHubBearing)
	if !loc.Valid() {
		loc = d.Location
	}

	return NewResource{
		DisasterID:   d.ID,
		Name:         d.Title + " Relief Center " + now.UTC().Format(time.DateOnly),
		LocationName: d.LocationName + " - Relief Hub",
		Type:         ReliefTypeForTags(d.Tags),
		Location:     &loc,
	}
}

// FilterNearby returns the resources within q's radius of its center, nearest
// first, with DistanceMeters populated.
func FilterNearby(resources []Resource, q NearbyQuery) []Resource {
	out := make([]Resource, 0, len(resources))
	for _, r := range resources {
		if q.DisasterID != "" && r.DisasterID != q.DisasterID {
			continue
		}
		d := HaversineDistance(q.Center, r.Location)
		if d <= q.RadiusMeters {
			r.DistanceMeters = d
			out = append(out, r)
		}
	}

	slices.SortStableFunc(out, func(a, b Resource) int {
		return cmp.Compare(a.DistanceMeters, b.DistanceMeters)
	})
	return out
}
