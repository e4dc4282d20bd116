package hexgrid

import (
	"math"
	"sync"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// polygonToCellsBuffer covers the edge tracing overshoot of tiny polygons
// near icosahedron edges.
const polygonToCellsBuffer = 12

// pentagonRadii holds the center to vertex distance of a pentagon at each
// resolution, the most distorted cell size of the resolution.
var pentagonRadii = sync.OnceValue(func() [MaxResolution + 1]float64 {
	var radii [MaxResolution + 1]float64
	for res := range radii {
		p := newCell(res, 4, Center)
		radii[res] = GreatCircleDistanceKm(p.LatLng(), p.Boundary()[0])
	}
	return radii
})

func pentagonRadiusKm(res int) float64 { return pentagonRadii()[res] }

// PolygonToCells returns the cells at res whose centers lie inside the
// polygon. flags is reserved and must be zero.
//
// Candidates are found by sampling every polygon edge at res and flood
// filling through neighbors whose centers pass the containment test.
func PolygonToCells(poly GeoPolygon, res int, flags uint32) ([]Cell, error) {
	if flags != 0 {
		return nil, ErrUnsupportedFlags
	}
	if res < 0 || res > MaxResolution {
		return nil, resolutionErr("PolygonToCells", res)
	}
	if err := poly.Validate(); err != nil {
		return nil, err
	}

	pp := preparePolygon(poly)
	visited := roaring64.New()
	var out, search []Cell

	consider := func(c Cell) {
		if !visited.CheckedAdd(uint64(c)) {
			return
		}
		if pp.contains(c.LatLng()) {
			out = append(out, c)
			search = append(search, c)
		}
	}

	// edge cells seed the search whether or not their centers are inside
	var seeds []Cell
	radius := pentagonRadiusKm(res)
	trace := func(l GeoLoop) error {
		for i, a := range l {
			b := l[(i+1)%len(l)]
			cells, err := traceEdge(a, b, res, radius)
			if err != nil {
				return err
			}
			for _, c := range cells {
				if visited.CheckedAdd(uint64(c)) {
					seeds = append(seeds, c)
				}
			}
		}
		return nil
	}
	if err := trace(poly.Outer); err != nil {
		return nil, err
	}
	for _, h := range poly.Holes {
		if err := trace(h); err != nil {
			return nil, err
		}
	}

	for _, c := range seeds {
		if pp.contains(c.LatLng()) {
			out = append(out, c)
		}
	}
	search = append(search, seeds...)

	for len(search) > 0 {
		c := search[len(search)-1]
		search = search[:len(search)-1]
		neighbors, err := GridDisk(c, 1, DiskUnchecked)
		if err != nil {
			return nil, err
		}
		for _, n := range neighbors[1:] {
			consider(n)
		}
	}
	return out, nil
}

// traceEdge returns the cells under evenly spaced samples of the segment
// from a to b, interpolated linearly in lat/lng.
func traceEdge(a, b LatLng, res int, radiusKm float64) ([]Cell, error) {
	n := math.Ceil(GreatCircleDistanceKm(a, b) / radiusKm)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, ErrInvalidPolygon
	}
	steps := max(int64(n), 1)
	bLng := b.Lng
	// walk across the antimeridian rather than around the globe
	switch {
	case bLng-a.Lng > math.Pi:
		bLng -= 2 * math.Pi
	case a.Lng-bLng > math.Pi:
		bLng += 2 * math.Pi
	}
	out := make([]Cell, 0, steps)
	for j := range steps {
		w0 := float64(steps-j) / float64(steps)
		w1 := float64(j) / float64(steps)
		p := LatLng{Lat: a.Lat*w0 + b.Lat*w1, Lng: constrainLng(a.Lng*w0 + bLng*w1)}
		c, err := LatLngToCell(p, res)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// MaxPolygonToCellsSize returns a buffer size estimate for
// PolygonToCells(poly, res, flags): the bounding box area divided by the
// smallest cell area of the resolution, floored at the vertex count, plus a
// fixed margin.
func MaxPolygonToCellsSize(poly GeoPolygon, res int, flags uint32) (int64, error) {
	if flags != 0 {
		return 0, ErrUnsupportedFlags
	}
	if res < 0 || res > MaxResolution {
		return 0, resolutionErr("MaxPolygonToCellsSize", res)
	}
	if len(poly.Outer) == 0 {
		return 0, nil
	}
	n, err := bboxCellEstimate(bboxFromLoop(poly.Outer), res)
	if err != nil {
		return 0, err
	}
	verts := int64(len(poly.Outer))
	for _, h := range poly.Holes {
		verts += int64(len(h))
	}
	return max(n, verts) + polygonToCellsBuffer, nil
}

func bboxCellEstimate(b bbox, res int) (int64, error) {
	r := pentagonRadiusKm(res)
	// regular hexagon area 3/2*sqrt(3)*r^2, shrunk by 20%
	pentArea := 0.8 * (2.59807621135 * r * r)

	p1 := LatLng{Lat: b.north, Lng: b.east}
	p2 := LatLng{Lat: b.south, Lng: b.west}
	d := GreatCircleDistanceKm(p1, p2)
	dLng := math.Abs(p1.Lng - p2.Lng)
	dLat := math.Abs(p1.Lat - p2.Lat)

	// the aspect correction is capped at 3; a flat box divides by zero
	ratio := 3.0
	if dLat != 0 {
		ratio = math.Min(3.0, dLng/dLat)
	}
	if ratio == 0 || math.IsNaN(ratio) {
		ratio = 3.0
	}
	est := math.Ceil(d * d / ratio / pentArea)
	if math.IsNaN(est) || math.IsInf(est, 0) {
		return 0, ErrInvalidPolygon
	}
	return max(int64(est), 1), nil
}
