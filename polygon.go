package hexgrid

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// GeoLoop is an open ring of vertices; the last vertex connects back to the
// first.
type GeoLoop []LatLng

// GeoPolygon is an outer loop with zero or more holes.
type GeoPolygon struct {
	Outer GeoLoop
	Holes []GeoLoop
}

// validate rejects loops that cannot bound an area: fewer than three
// distinct vertices, non-finite coordinates, or edges that cross.
func (l GeoLoop) validate() error {
	distinct := 0
	for i, v := range l {
		if !v.IsFinite() {
			return fmt.Errorf("%w: vertex %d is not finite", ErrInvalidPolygon, i)
		}
		if i == 0 || v != l[i-1] {
			distinct++
		}
	}
	if len(l) > 1 && l[0] == l[len(l)-1] {
		distinct--
	}
	if distinct < 3 {
		return fmt.Errorf("%w: loop has %d distinct vertices", ErrInvalidPolygon, distinct)
	}
	return l.checkSelfCrossing()
}

func (l GeoLoop) points() []s2.Point {
	pts := make([]s2.Point, len(l))
	for i, v := range l {
		pts[i] = v.point()
	}
	return pts
}

func (l GeoLoop) checkSelfCrossing() error {
	pts := l.points()
	n := len(pts)
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				// edges sharing the closing vertex
				continue
			}
			c, d := pts[j], pts[(j+1)%n]
			if s2.CrossingSign(a, b, c, d) == s2.Cross {
				return fmt.Errorf("%w: edges %d and %d cross", ErrInvalidPolygon, i, j)
			}
		}
	}
	return nil
}

// loopsCross reports whether any edge of a crosses any edge of b.
func loopsCross(a, b GeoLoop) bool {
	pa, pb := a.points(), b.points()
	for i := range pa {
		a0, a1 := pa[i], pa[(i+1)%len(pa)]
		for j := range pb {
			if s2.CrossingSign(a0, a1, pb[j], pb[(j+1)%len(pb)]) == s2.Cross {
				return true
			}
		}
	}
	return false
}

// Validate checks every loop and that no hole crosses the outer loop or
// another hole.
func (p GeoPolygon) Validate() error {
	if err := p.Outer.validate(); err != nil {
		return fmt.Errorf("outer loop: %w", err)
	}
	for i, h := range p.Holes {
		if err := h.validate(); err != nil {
			return fmt.Errorf("hole %d: %w", i, err)
		}
		if loopsCross(p.Outer, h) {
			return fmt.Errorf("%w: hole %d crosses the outer loop", ErrInvalidPolygon, i)
		}
		for j := range i {
			if loopsCross(p.Holes[j], h) {
				return fmt.Errorf("%w: holes %d and %d cross", ErrInvalidPolygon, j, i)
			}
		}
	}
	return nil
}

// bbox is a lat/lng rectangle. A box with east < west crosses the
// antimeridian.
type bbox struct {
	north, south, east, west float64
}

func (b bbox) isTransmeridian() bool { return b.east < b.west }

func (b bbox) contains(ll LatLng) bool {
	if ll.Lat < b.south || ll.Lat > b.north {
		return false
	}
	if b.isTransmeridian() {
		return ll.Lng >= b.west || ll.Lng <= b.east
	}
	return ll.Lng >= b.west && ll.Lng <= b.east
}

// bboxFromLoop returns the bounding box of a loop. A loop with an edge
// spanning more than pi of longitude is treated as crossing the
// antimeridian.
func bboxFromLoop(l GeoLoop) bbox {
	if len(l) == 0 {
		return bbox{}
	}
	b := bbox{north: -math.MaxFloat64, south: math.MaxFloat64, east: -math.MaxFloat64, west: math.MaxFloat64}
	minPosLng := math.MaxFloat64
	maxNegLng := -math.MaxFloat64
	transmeridian := false
	for i, v := range l {
		next := l[(i+1)%len(l)]
		b.south = min(b.south, v.Lat)
		b.north = max(b.north, v.Lat)
		b.west = min(b.west, v.Lng)
		b.east = max(b.east, v.Lng)
		if v.Lng > 0 && v.Lng < minPosLng {
			minPosLng = v.Lng
		}
		if v.Lng < 0 && v.Lng > maxNegLng {
			maxNegLng = v.Lng
		}
		if math.Abs(v.Lng-next.Lng) > math.Pi {
			transmeridian = true
		}
	}
	if transmeridian {
		b.east = maxNegLng
		b.west = minPosLng
	}
	return b
}

func normalizeLng(lng float64, transmeridian bool) float64 {
	if transmeridian && lng < 0 {
		return lng + 2*math.Pi
	}
	return lng
}

// machineEpsilon is the spacing of float64 values near 1.
const machineEpsilon = 2.220446049250313e-16

// contains casts a ray east from ll and counts edge crossings. Points on a
// vertex latitude are nudged north and points on a vertex longitude are
// nudged west, so shared boundaries are assigned to exactly one side.
func (l GeoLoop) contains(b bbox, ll LatLng) bool {
	if !b.contains(ll) {
		return false
	}
	tm := b.isTransmeridian()
	lat := ll.Lat
	lng := normalizeLng(ll.Lng, tm)
	inside := false
	for i := range l {
		a, c := l[i], l[(i+1)%len(l)]
		if a.Lat > c.Lat {
			a, c = c, a
		}
		if lat == a.Lat || lat == c.Lat {
			lat += machineEpsilon
		}
		if lat < a.Lat || lat > c.Lat {
			continue
		}
		aLng := normalizeLng(a.Lng, tm)
		cLng := normalizeLng(c.Lng, tm)
		if aLng == lng || cLng == lng {
			lng -= machineEpsilon
		}
		ratio := (lat - a.Lat) / (c.Lat - a.Lat)
		testLng := normalizeLng(aLng+(cLng-aLng)*ratio, tm)
		if testLng > lng {
			inside = !inside
		}
	}
	return inside
}

// preparedPolygon caches the bounding boxes used by containment tests.
type preparedPolygon struct {
	poly  GeoPolygon
	boxes []bbox // outer first, then one per hole
}

func preparePolygon(p GeoPolygon) *preparedPolygon {
	boxes := make([]bbox, 0, 1+len(p.Holes))
	boxes = append(boxes, bboxFromLoop(p.Outer))
	for _, h := range p.Holes {
		boxes = append(boxes, bboxFromLoop(h))
	}
	return &preparedPolygon{poly: p, boxes: boxes}
}

// contains reports whether ll is inside the outer loop and outside every
// hole.
func (pp *preparedPolygon) contains(ll LatLng) bool {
	if !pp.poly.Outer.contains(pp.boxes[0], ll) {
		return false
	}
	for i, h := range pp.poly.Holes {
		if h.contains(pp.boxes[i+1], ll) {
			return false
		}
	}
	return true
}

// Contains reports whether ll lies inside the polygon by the same rule used
// to select cell centers.
func (p GeoPolygon) Contains(ll LatLng) bool {
	return preparePolygon(p).contains(ll)
}
