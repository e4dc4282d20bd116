package hexgrid

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusKm is the authalic radius used for every metric conversion.
const EarthRadiusKm = 6371.007180918475

// Average hexagon area and edge length per resolution.
var (
	hexagonAreaAvgKm2 = [MaxResolution + 1]float64{
		4.357449416078383e+06,
		6.097884417941332e+05,
		8.680178039899720e+04,
		1.239343465508816e+04,
		1.770347654491307e+03,
		2.529038581819449e+02,
		3.612906216441245e+01,
		5.161293359717191e+00,
		7.373275975944177e-01,
		1.053325134272067e-01,
		1.504750190766435e-02,
		2.149643129451879e-03,
		3.070918756316060e-04,
		4.387026794728296e-05,
		6.267181135324313e-06,
		8.953115907605790e-07,
	}

	hexagonEdgeLengthAvgKm = [MaxResolution + 1]float64{
		1.281256011263025e+03,
		4.830568391620300e+02,
		1.825129565681842e+02,
		6.897921794310090e+01,
		2.607175968307813e+01,
		9.854090990536018e+00,
		3.724532667395852e+00,
		1.406475763360684e+00,
		5.314140100998150e-01,
		2.007861476609002e-01,
		7.586378245437420e-02,
		2.867388104072212e-02,
		1.083018823958049e-02,
		4.092010473421981e-03,
		1.546099657320101e-03,
		5.841690981464880e-04,
	}
)

// GreatCircleDistanceRads returns the angle between two points.
func GreatCircleDistanceRads(a, b LatLng) float64 {
	return a.s2().Distance(b.s2()).Radians()
}

// GreatCircleDistanceKm returns the surface distance between two points in
// kilometers.
func GreatCircleDistanceKm(a, b LatLng) float64 {
	return GreatCircleDistanceRads(a, b) * EarthRadiusKm
}

// GreatCircleDistanceM returns the surface distance in meters.
func GreatCircleDistanceM(a, b LatLng) float64 {
	return GreatCircleDistanceKm(a, b) * 1000
}

// CellAreaRads2 returns the exact area of c in steradians, summing the
// spherical triangles fanned from the center to each boundary edge.
func CellAreaRads2(c Cell) (float64, error) {
	if !c.IsValid() {
		return 0, cellErr("CellArea", c, ErrInvalidCell)
	}
	center := c.LatLng().point()
	b := c.Boundary()
	area := 0.0
	for i := range b {
		j := (i + 1) % len(b)
		area += s2.PointArea(b[i].point(), b[j].point(), center)
	}
	return area, nil
}

func CellAreaKm2(c Cell) (float64, error) {
	a, err := CellAreaRads2(c)
	return a * EarthRadiusKm * EarthRadiusKm, err
}

func CellAreaM2(c Cell) (float64, error) {
	a, err := CellAreaKm2(c)
	return a * 1000 * 1000, err
}

// HexagonAreaAvgKm2 returns the average hexagon area at res.
func HexagonAreaAvgKm2(res int) (float64, error) {
	if res < 0 || res > MaxResolution {
		return 0, resolutionErr("HexagonAreaAvgKm2", res)
	}
	return hexagonAreaAvgKm2[res], nil
}

func HexagonAreaAvgM2(res int) (float64, error) {
	a, err := HexagonAreaAvgKm2(res)
	return a * 1000 * 1000, err
}

// HexagonEdgeLengthAvgKm returns the average hexagon edge length at res.
func HexagonEdgeLengthAvgKm(res int) (float64, error) {
	if res < 0 || res > MaxResolution {
		return 0, resolutionErr("HexagonEdgeLengthAvgKm", res)
	}
	return hexagonEdgeLengthAvgKm[res], nil
}

func HexagonEdgeLengthAvgM(res int) (float64, error) {
	l, err := HexagonEdgeLengthAvgKm(res)
	return l * 1000, err
}

// lengthRads sums the great-circle lengths of consecutive vertices.
func (b Boundary) lengthRads() float64 {
	total := 0.0
	for i := 1; i < len(b); i++ {
		total += GreatCircleDistanceRads(b[i-1], b[i])
	}
	return total
}
