package hexgrid

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// PolygonRef is one polygon of a MultiPolygon: an outer loop and its holes,
// given as indexes into MultiPolygon.Loops.
type PolygonRef struct {
	Outer int
	Holes []int
}

// MultiPolygon is the outline of a cell set. Loops are stored flat and
// polygons reference them by index.
type MultiPolygon struct {
	Loops    []GeoLoop
	Polygons []PolygonRef
}

// Polygon returns polygon i as a GeoPolygon sharing the loop slices.
func (m *MultiPolygon) Polygon(i int) GeoPolygon {
	ref := m.Polygons[i]
	p := GeoPolygon{Outer: m.Loops[ref.Outer]}
	for _, h := range ref.Holes {
		p.Holes = append(p.Holes, m.Loops[h])
	}
	return p
}

const (
	vertexBucket    = 1e-8
	vertexThreshold = vertexEpsilon
)

type vertexKey struct{ lat, lng int64 }

// vertexIndex interns boundary vertices so that the same corner computed
// from two neighboring cells maps to one id.
type vertexIndex struct {
	buckets map[vertexKey][]int
	verts   []LatLng
}

func newVertexIndex(capacity int) *vertexIndex {
	return &vertexIndex{
		buckets: make(map[vertexKey][]int, capacity),
		verts:   make([]LatLng, 0, capacity),
	}
}

func bucketOf(v LatLng) vertexKey {
	return vertexKey{int64(math.Floor(v.Lat / vertexBucket)), int64(math.Floor(v.Lng / vertexBucket))}
}

func (vi *vertexIndex) intern(v LatLng) int {
	k := bucketOf(v)
	for dl := int64(-1); dl <= 1; dl++ {
		for dg := int64(-1); dg <= 1; dg++ {
			for _, id := range vi.buckets[vertexKey{k.lat + dl, k.lng + dg}] {
				if vi.verts[id].almostEqual(v, vertexThreshold) {
					return id
				}
			}
		}
	}
	id := len(vi.verts)
	vi.verts = append(vi.verts, v)
	vi.buckets[k] = append(vi.buckets[k], id)
	return id
}

type segment struct {
	from, to int
	alive    bool
}

// CellsToMultiPolygon traces the outline of the union of cells. Edges shared
// by two input cells cancel; the remaining edges are walked into loops.
// Counter-clockwise loops become outers and clockwise loops become holes of
// the innermost outer containing them.
func CellsToMultiPolygon(cells []Cell) (*MultiPolygon, error) {
	out := &MultiPolygon{}
	if len(cells) == 0 {
		return out, nil
	}
	res := cells[0].Resolution()
	seen := roaring64.New()
	for _, c := range cells {
		if !c.IsValid() {
			return nil, cellErr("CellsToMultiPolygon", c, ErrInvalidCell)
		}
		if c.Resolution() != res {
			return nil, ErrMixedResolution
		}
		if !seen.CheckedAdd(uint64(c)) {
			return nil, cellErr("CellsToMultiPolygon", c, ErrDuplicateInput)
		}
	}

	vi := newVertexIndex(len(cells) * numHexVerts)
	segs := make([]segment, 0, len(cells)*numHexVerts)
	byEnds := make(map[[2]int]int, len(cells)*numHexVerts)
	for _, c := range cells {
		b := c.Boundary()
		ids := make([]int, len(b))
		for i, v := range b {
			ids[i] = vi.intern(v)
		}
		for i := range ids {
			from, to := ids[i], ids[(i+1)%len(ids)]
			if from == to {
				continue
			}
			if rev, ok := byEnds[[2]int{to, from}]; ok && segs[rev].alive {
				segs[rev].alive = false
				delete(byEnds, [2]int{to, from})
				continue
			}
			byEnds[[2]int{from, to}] = len(segs)
			segs = append(segs, segment{from: from, to: to, alive: true})
		}
	}

	outgoing := make(map[int][]int)
	for i, s := range segs {
		if s.alive {
			outgoing[s.from] = append(outgoing[s.from], i)
		}
	}

	var outers, holes []int
	for i := range segs {
		if !segs[i].alive {
			continue
		}
		start := segs[i].from
		var loop GeoLoop
		cur := i
		for {
			segs[cur].alive = false
			loop = append(loop, vi.verts[segs[cur].from])
			next := segs[cur].to
			if next == start {
				break
			}
			cur = -1
			for _, cand := range outgoing[next] {
				if segs[cand].alive {
					cur = cand
					break
				}
			}
			if cur < 0 {
				return nil, fmt.Errorf("%w: outline does not close", ErrInvalidPolygon)
			}
		}
		idx := len(out.Loops)
		out.Loops = append(out.Loops, loop)
		if loop.isClockwise() {
			holes = append(holes, idx)
		} else {
			outers = append(outers, idx)
		}
	}

	refOf := make(map[int]int, len(outers))
	for _, o := range outers {
		refOf[o] = len(out.Polygons)
		out.Polygons = append(out.Polygons, PolygonRef{Outer: o})
	}
	boxes := make(map[int]bbox, len(outers))
	for _, o := range outers {
		boxes[o] = bboxFromLoop(out.Loops[o])
	}
	for _, h := range holes {
		container := deepestContainer(out.Loops, outers, boxes, out.Loops[h])
		if container < 0 {
			return nil, fmt.Errorf("%w: hole without an outer loop", ErrInvalidPolygon)
		}
		ref := &out.Polygons[refOf[container]]
		ref.Holes = append(ref.Holes, h)
	}
	return out, nil
}

// deepestContainer returns the outer loop containing hole that is itself
// contained by the most other candidates, or -1.
func deepestContainer(loops []GeoLoop, outers []int, boxes map[int]bbox, hole GeoLoop) int {
	var candidates []int
	for _, o := range outers {
		if loops[o].contains(boxes[o], hole[0]) {
			candidates = append(candidates, o)
		}
	}
	if len(candidates) <= 1 {
		if len(candidates) == 0 {
			return -1
		}
		return candidates[0]
	}
	best, bestDepth := -1, -1
	for _, c := range candidates {
		depth := 0
		for _, other := range candidates {
			if other != c && loops[other].contains(boxes[other], loops[c][0]) {
				depth++
			}
		}
		if depth > bestDepth {
			best, bestDepth = c, depth
		}
	}
	return best
}

// isClockwise reports the winding of the loop in the lat/lng plane,
// unwrapping longitudes when an edge crosses the antimeridian.
func (l GeoLoop) isClockwise() bool {
	tm := false
	for i, a := range l {
		if math.Abs(a.Lng-l[(i+1)%len(l)].Lng) > math.Pi {
			tm = true
			break
		}
	}
	sum := 0.0
	for i, a := range l {
		b := l[(i+1)%len(l)]
		sum += (normalizeLng(b.Lng, tm) - normalizeLng(a.Lng, tm)) * (b.Lat + a.Lat)
	}
	return sum > 0
}
