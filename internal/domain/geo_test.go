package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Point
		want  float64
		delta float64
	}{
		{"same point", Point{40.7128, -74.0060}, Point{40.7128, -74.0060}, 0, 1e-9},
		{"nyc to la", Point{40.7128, -74.0060}, Point{34.0522, -118.2437}, 3935746, 2000},
		{"one degree of latitude", Point{0, 0}, Point{1, 0}, 111195, 5},
		{"across antimeridian", Point{0, 179.5}, Point{0, -179.5}, 111195, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, HaversineDistance(tt.a, tt.b), tt.delta)
			assert.InDelta(t, tt.want, HaversineDistance(tt.b, tt.a), tt.delta)
		})
	}
}

func TestDestination(t *testing.T) {
	origin := Point{Lat: 40.7128, Lng: -74.0060}

	east := Destination(origin, 100, 90)

	assert.InDelta(t, 100, HaversineDistance(origin, east), 0.01)
	assert.InDelta(t, origin.Lat, east.Lat, 1e-5)
	assert.Greater(t, east.Lng, origin.Lng)

	north := Destination(origin, 1000, 0)
	assert.InDelta(t, origin.Lng, north.Lng, 1e-9)
	assert.Greater(t, north.Lat, origin.Lat)
}

func TestDestination_WrapsLongitude(t *testing.T) {
	p := Destination(Point{Lat: 0, Lng: 179.9999}, 1000, 90)

	assert.True(t, p.Valid())
	assert.Less(t, p.Lng, 0.0)
}

func TestPoint_Valid(t *testing.T) {
	assert.True(t, Point{Lat: 90, Lng: -180}.Valid())
	assert.False(t, Point{Lat: 90.1, Lng: 0}.Valid())
	assert.False(t, Point{Lat: 0, Lng: 181}.Valid())
}
