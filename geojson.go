package hexgrid

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func (ll LatLng) orbPoint() orb.Point {
	lat, lng := ll.Degrees()
	return orb.Point{lng, lat}
}

func latLngFromOrb(p orb.Point) LatLng {
	return LatLngFromDegrees(p.Lat(), p.Lon())
}

// orbRing converts an open loop into a closed GeoJSON ring in degrees.
func (l GeoLoop) orbRing() orb.Ring {
	ring := make(orb.Ring, 0, len(l)+1)
	for _, v := range l {
		ring = append(ring, v.orbPoint())
	}
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return ring
}

// Polygon returns the cell outline as a closed single-ring polygon in
// degrees.
func (c Cell) Polygon() orb.Polygon {
	return orb.Polygon{GeoLoop(c.Boundary()).orbRing()}
}

// CellsToFeatureCollection returns one Polygon feature per cell with the
// cell index and resolution as properties.
func CellsToFeatureCollection(cells []Cell) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range cells {
		f := geojson.NewFeature(c.Polygon())
		f.Properties["cell"] = c.String()
		f.Properties["resolution"] = c.Resolution()
		fc.Append(f)
	}
	return fc
}

// Orb returns the outline as GeoJSON-ready geometry in degrees.
func (m *MultiPolygon) Orb() orb.MultiPolygon {
	out := make(orb.MultiPolygon, 0, len(m.Polygons))
	for _, ref := range m.Polygons {
		poly := orb.Polygon{m.Loops[ref.Outer].orbRing()}
		for _, h := range ref.Holes {
			poly = append(poly, m.Loops[h].orbRing())
		}
		out = append(out, poly)
	}
	return out
}

// GeoPolygonFromOrb converts a degree polygon whose first ring is the outer
// boundary. The closing point of each ring is dropped.
func GeoPolygonFromOrb(p orb.Polygon) (GeoPolygon, error) {
	if len(p) == 0 {
		return GeoPolygon{}, fmt.Errorf("%w: polygon has no rings", ErrInvalidPolygon)
	}
	gp := GeoPolygon{Outer: loopFromOrb(p[0])}
	for _, r := range p[1:] {
		gp.Holes = append(gp.Holes, loopFromOrb(r))
	}
	return gp, nil
}

func loopFromOrb(r orb.Ring) GeoLoop {
	if r.Closed() && len(r) > 1 {
		r = r[:len(r)-1]
	}
	loop := make(GeoLoop, len(r))
	for i, p := range r {
		loop[i] = latLngFromOrb(p)
	}
	return loop
}

// ParsePolygonGeoJSON reads every Polygon and MultiPolygon in a GeoJSON
// geometry, Feature or FeatureCollection.
func ParsePolygonGeoJSON(data []byte) ([]GeoPolygon, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("read geojson: %w", err)
	}

	var geoms []orb.Geometry
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("read feature collection: %w", err)
		}
		for _, f := range fc.Features {
			geoms = append(geoms, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("read feature: %w", err)
		}
		geoms = append(geoms, f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("read geometry: %w", err)
		}
		geoms = append(geoms, g.Geometry())
	}

	var out []GeoPolygon
	for _, g := range geoms {
		switch v := g.(type) {
		case orb.Polygon:
			p, err := GeoPolygonFromOrb(v)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		case orb.MultiPolygon:
			for _, poly := range v {
				p, err := GeoPolygonFromOrb(poly)
				if err != nil {
					return nil, err
				}
				out = append(out, p)
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no polygon geometry found", ErrInvalidPolygon)
	}
	return out, nil
}
