package hexgrid

import (
	"fmt"
	"strings"

	geohash "github.com/TomiHiltunen/geohash-golang"
)

const geohashAlphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// maxGeohashPrecision is the longest hash that still resolves below a
// centimeter; longer input is rejected.
const maxGeohashPrecision = 12

func validGeohash(hash string) bool {
	if hash == "" || len(hash) > maxGeohashPrecision {
		return false
	}
	for _, r := range strings.ToLower(hash) {
		if !strings.ContainsRune(geohashAlphabet, r) {
			return false
		}
	}
	return true
}

// GeohashPolygon returns the rectangle of a geohash as a polygon.
func GeohashPolygon(hash string) (GeoPolygon, error) {
	if !validGeohash(hash) {
		return GeoPolygon{}, fmt.Errorf("%w: bad geohash %q", ErrInvalidPolygon, hash)
	}
	box := geohash.Decode(strings.ToLower(hash))
	sw, ne := box.SouthWest(), box.NorthEast()
	return GeoPolygon{Outer: GeoLoop{
		LatLngFromDegrees(sw.Lat(), sw.Lng()),
		LatLngFromDegrees(sw.Lat(), ne.Lng()),
		LatLngFromDegrees(ne.Lat(), ne.Lng()),
		LatLngFromDegrees(ne.Lat(), sw.Lng()),
	}}, nil
}

// GeohashToCells returns the cells at res whose centers fall inside the
// geohash rectangle.
func GeohashToCells(hash string, res int) ([]Cell, error) {
	poly, err := GeohashPolygon(hash)
	if err != nil {
		return nil, err
	}
	return PolygonToCells(poly, res, 0)
}

// CellToGeohash encodes the center of c at the given precision (1..12).
func CellToGeohash(c Cell, precision int) (string, error) {
	if !c.IsValid() {
		return "", cellErr("CellToGeohash", c, ErrInvalidCell)
	}
	if precision < 1 || precision > maxGeohashPrecision {
		return "", fmt.Errorf("%w: geohash precision %d out of range 1..%d", ErrInvalidResolution, precision, maxGeohashPrecision)
	}
	lat, lng := c.LatLng().Degrees()
	return geohash.EncodeWithPrecision(lat, lng, precision), nil
}
