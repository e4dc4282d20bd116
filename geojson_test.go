package hexgrid

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellsToFeatureCollection(t *testing.T) {
	cells := parseCells(t, "8928308280fffff", "821c07fffffffff")
	fc := CellsToFeatureCollection(cells)
	require.Len(t, fc.Features, 2)

	hex := fc.Features[0]
	assert.Equal(t, "8928308280fffff", hex.Properties["cell"])
	assert.Equal(t, 9, hex.Properties["resolution"])
	poly, ok := hex.Geometry.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, poly, 1)
	assert.Len(t, poly[0], 7)
	assert.True(t, poly[0].Closed())

	// GeoJSON orders coordinates as lng, lat
	lat, lng := cells[0].Boundary()[0].Degrees()
	assert.InDelta(t, lng, poly[0][0].Lon(), 1e-12)
	assert.InDelta(t, lat, poly[0][0].Lat(), 1e-12)

	pent := fc.Features[1].Geometry.(orb.Polygon)
	assert.Len(t, pent[0], 6)

	data, err := fc.MarshalJSON()
	require.NoError(t, err)
	back, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	assert.Len(t, back.Features, 2)
}

func TestParsePolygonGeoJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		polys int
		holes int
	}{
		{
			name:  "geometry",
			input: `{"type":"Polygon","coordinates":[[[-122.5,37.7],[-122.3,37.7],[-122.3,37.8],[-122.5,37.8],[-122.5,37.7]]]}`,
			polys: 1,
		},
		{
			name:  "feature with hole",
			input: `{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0],[4,0],[4,4],[0,4],[0,0]],[[1,1],[1,2],[2,2],[2,1],[1,1]]]}}`,
			polys: 1,
			holes: 1,
		},
		{
			name: "collection",
			input: `{"type":"FeatureCollection","features":[
				{"type":"Feature","properties":{},"geometry":{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[1,1],[0,0]]],[[[5,5],[6,5],[6,6],[5,5]]]]}},
				{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[0,0]}}
			]}`,
			polys: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			polys, err := ParsePolygonGeoJSON([]byte(tt.input))
			require.NoError(t, err)
			require.Len(t, polys, tt.polys)
			assert.Len(t, polys[0].Holes, tt.holes)
			for _, p := range polys {
				assert.NoError(t, p.Validate())
				// the closing point is dropped
				assert.NotEqual(t, p.Outer[0], p.Outer[len(p.Outer)-1])
			}
		})
	}

	t.Run("Geographic order", func(t *testing.T) {
		polys, err := ParsePolygonGeoJSON([]byte(tests[0].input))
		require.NoError(t, err)
		lat, lng := polys[0].Outer[0].Degrees()
		assert.InDelta(t, 37.7, lat, 1e-9)
		assert.InDelta(t, -122.5, lng, 1e-9)
	})

	t.Run("No polygons", func(t *testing.T) {
		_, err := ParsePolygonGeoJSON([]byte(`{"type":"Point","coordinates":[1,2]}`))
		assert.ErrorIs(t, err, ErrInvalidPolygon)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := ParsePolygonGeoJSON([]byte(`{"type":`))
		assert.Error(t, err)
	})
}

func TestMultiPolygonOrb(t *testing.T) {
	origin := parseCells(t, "8928308280fffff")[0]
	ring, err := GridRing(origin, 1)
	require.NoError(t, err)
	mp, err := CellsToMultiPolygon(ring)
	require.NoError(t, err)

	geom := mp.Orb()
	require.Len(t, geom, 1)
	require.Len(t, geom[0], 2)
	assert.Len(t, geom[0][0], 19)
	assert.Len(t, geom[0][1], 7)

	data, err := geojson.NewFeature(geom).MarshalJSON()
	require.NoError(t, err)
	polys, err := ParsePolygonGeoJSON(data)
	require.NoError(t, err)
	require.Len(t, polys, 1)
	assert.Len(t, polys[0].Outer, 18)
	require.Len(t, polys[0].Holes, 1)
	assert.False(t, polys[0].Contains(origin.LatLng()))
}
