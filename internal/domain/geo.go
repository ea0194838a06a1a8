package domain

import "math"

// EarthRadiusMeters is the mean Earth radius used for great-circle math.
const EarthRadiusMeters = 6371000.0

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64
	Lng float64
}

// Valid reports whether the point lies within latitude/longitude bounds.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// HaversineDistance returns the great-circle distance between a and b in meters.
func HaversineDistance(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := lat2 - lat1
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Destination returns the point reached by travelling distance meters from p
// along the initial bearing (degrees clockwise from north).
func Destination(p Point, distance, bearing float64) Point {
	delta := distance / EarthRadiusMeters
	theta := toRadians(bearing)
	lat1 := toRadians(p.Lat)
	lng1 := toRadians(p.Lng)

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) + math.Cos(lat1)*math.Sin(delta)*math.Cos(theta))
	lng2 := lng1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2),
	)

	return Point{Lat: toDegrees(lat2), Lng: normalizeLongitude(toDegrees(lng2))}
}

func normalizeLongitude(lng float64) float64 {
	lng = math.Mod(lng+540, 360) - 180
	if lng == -180 {
		return 180
	}
	return lng
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }
