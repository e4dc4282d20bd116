package hexgrid

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// LatLng is a point on the sphere in radians.
type LatLng struct {
	Lat float64
	Lng float64
}

// LatLngFromDegrees converts a degree pair to radians.
func LatLngFromDegrees(lat, lng float64) LatLng {
	return LatLng{
		Lat: (s1.Angle(lat) * s1.Degree).Radians(),
		Lng: (s1.Angle(lng) * s1.Degree).Radians(),
	}
}

// Degrees returns the point as a (lat, lng) degree pair.
func (ll LatLng) Degrees() (float64, float64) {
	return s1.Angle(ll.Lat).Degrees(), s1.Angle(ll.Lng).Degrees()
}

// IsFinite reports whether both components are finite numbers.
func (ll LatLng) IsFinite() bool {
	return !math.IsNaN(ll.Lat) && !math.IsInf(ll.Lat, 0) &&
		!math.IsNaN(ll.Lng) && !math.IsInf(ll.Lng, 0)
}

func (ll LatLng) s2() s2.LatLng {
	return s2.LatLng{Lat: s1.Angle(ll.Lat), Lng: s1.Angle(ll.Lng)}
}

func (ll LatLng) point() s2.Point {
	return s2.PointFromLatLng(ll.s2())
}

// vec3 projects ll onto the unit sphere.
func (ll LatLng) vec3() r3.Vector {
	r := math.Cos(ll.Lat)
	return r3.Vector{
		X: math.Cos(ll.Lng) * r,
		Y: math.Sin(ll.Lng) * r,
		Z: math.Sin(ll.Lat),
	}
}

// vertexEpsilon is the distance in radians under which two boundary vertices
// are the same point.
const vertexEpsilon = 1e-9

// almostEqual compares two points with a threshold suited to vertex matching.
func (ll LatLng) almostEqual(o LatLng, threshold float64) bool {
	return math.Abs(ll.Lat-o.Lat) < threshold && math.Abs(ll.Lng-o.Lng) < threshold
}

// posAngle normalizes an angle into [0, 2pi).
func posAngle(a float64) float64 {
	t := math.Mod(a, 2*math.Pi)
	if t < 0.0 {
		t += 2 * math.Pi
	}
	return t
}

// constrainLng normalizes a longitude into [-pi, pi].
func constrainLng(lng float64) float64 {
	for lng > math.Pi {
		lng -= 2 * math.Pi
	}
	for lng < -math.Pi {
		lng += 2 * math.Pi
	}
	return lng
}

// azimuth returns the initial bearing from p1 to p2.
func azimuth(p1, p2 LatLng) float64 {
	return math.Atan2(
		math.Cos(p2.Lat)*math.Sin(p2.Lng-p1.Lng),
		math.Cos(p1.Lat)*math.Sin(p2.Lat)-math.Sin(p1.Lat)*math.Cos(p2.Lat)*math.Cos(p2.Lng-p1.Lng),
	)
}

// azDistance returns the point reached by travelling distance radians from
// p1 along bearing az.
func azDistance(p1 LatLng, az, distance float64) LatLng {
	if distance < epsilon {
		return p1
	}
	az = posAngle(az)

	var p2 LatLng
	if az < epsilon || math.Abs(az-math.Pi) < epsilon {
		// due north or south
		if az < epsilon {
			p2.Lat = p1.Lat + distance
		} else {
			p2.Lat = p1.Lat - distance
		}
		if math.Abs(p2.Lat-math.Pi/2) < epsilon {
			return LatLng{Lat: math.Pi / 2}
		}
		if math.Abs(p2.Lat+math.Pi/2) < epsilon {
			return LatLng{Lat: -math.Pi / 2}
		}
		p2.Lng = constrainLng(p1.Lng)
		return p2
	}

	sinLat := math.Sin(p1.Lat)*math.Cos(distance) + math.Cos(p1.Lat)*math.Sin(distance)*math.Cos(az)
	sinLat = clamp(sinLat, -1.0, 1.0)
	p2.Lat = math.Asin(sinLat)
	if math.Abs(p2.Lat-math.Pi/2) < epsilon {
		return LatLng{Lat: math.Pi / 2}
	}
	if math.Abs(p2.Lat+math.Pi/2) < epsilon {
		return LatLng{Lat: -math.Pi / 2}
	}

	sinLng := math.Sin(az) * math.Sin(distance) / math.Cos(p2.Lat)
	cosLng := (math.Cos(distance) - math.Sin(p1.Lat)*math.Sin(p2.Lat)) / math.Cos(p1.Lat) / math.Cos(p2.Lat)
	sinLng = clamp(sinLng, -1.0, 1.0)
	cosLng = clamp(cosLng, -1.0, 1.0)
	p2.Lng = constrainLng(p1.Lng + math.Atan2(sinLng, cosLng))
	return p2
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
