package hexgrid

import (
	"errors"
	"math"
	"strconv"
	"testing"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.
func Test(t *testing.T) { TestingT(t) }

type IndexSuite struct {
	known []knownCell
}

var _ = Suite(&IndexSuite{})

func (s *IndexSuite) SetUpSuite(c *C) {
	s.known = knownCells
}

func mustCell(c *C, s string) Cell {
	cell, err := ParseCell(s)
	c.Assert(err, IsNil)
	return cell
}

func (s *IndexSuite) TestEncode(c *C) {
	for _, k := range s.known {
		cell, err := LatLngToCell(LatLngFromDegrees(k.lat, k.lng), k.res)
		c.Assert(err, IsNil)
		c.Assert(cell.String(), Equals, k.want)
	}
}

func (s *IndexSuite) TestEncodeSouthPolar(c *C) {
	tests := []struct {
		lat, lng float64
		res      int
		want     string
	}{
		{-64.248, -158.284, 4, "84eb0c3ffffffff"},
		{-80, 170, 3, "83f384fffffffff"},
		{-89.9, 0, 2, "82f297fffffffff"},
		{-70, -170, 5, "85eaec2ffffffff"},
		{-80, 170, 0, "80f3fffffffffff"},
	}
	for _, tt := range tests {
		cell, err := LatLngToCell(LatLngFromDegrees(tt.lat, tt.lng), tt.res)
		c.Assert(err, IsNil)
		c.Assert(cell.String(), Equals, tt.want, Commentf("%f, %f res %d", tt.lat, tt.lng, tt.res))

		back, err := LatLngToCell(cell.LatLng(), tt.res)
		c.Assert(err, IsNil)
		c.Assert(back, Equals, cell)
	}
}

func (s *IndexSuite) TestFields(c *C) {
	cell := mustCell(c, "8928308280fffff")
	c.Assert(cell.Resolution(), Equals, 9)
	c.Assert(cell.BaseCell(), Equals, 20)
	c.Assert(cell.IsPentagon(), Equals, false)
	c.Assert(cell.IsResClassIII(), Equals, true)
	c.Assert(cell.IsValid(), Equals, true)
}

func (s *IndexSuite) TestParse(c *C) {
	cell, err := ParseCell("8928308280FFFFF")
	c.Assert(err, IsNil)
	c.Assert(cell, Equals, Cell(0x8928308280fffff))

	for _, bad := range []string{"", "xyz", "0x", "0x8928308280fffff", "8928308280fffff0000", "0"} {
		_, err := ParseCell(bad)
		c.Assert(errors.Is(err, ErrParse), Equals, true, Commentf("input %q", bad))
	}

	// edge mode is not a cell
	_, err = ParseCell("11928308280fffff")
	c.Assert(errors.Is(err, ErrInvalidCell), Equals, true)

	// the cause is reachable through errors.Is, not errors.Unwrap
	_, err = ParseCell("xyz")
	var pe *ParseError
	c.Assert(errors.As(err, &pe), Equals, true)
	c.Assert(pe.Input, Equals, "xyz")
	c.Assert(errors.Is(err, strconv.ErrSyntax), Equals, true)
	c.Assert(errors.Unwrap(pe), IsNil)
}

func (s *IndexSuite) TestInvalid(c *C) {
	cell := mustCell(c, "8928308280fffff")
	c.Assert(cell.withDigit(12, Center).IsValid(), Equals, false)
	c.Assert(cell.withDigit(5, InvalidDigit).IsValid(), Equals, false)
	c.Assert(cell.withBaseCell(122).IsValid(), Equals, false)
	c.Assert(Cell(uint64(cell)|highBitMask).IsValid(), Equals, false)

	// pentagon lineages never take the K digit first
	pent := newCell(1, 4, Center)
	c.Assert(pent.IsValid(), Equals, true)
	c.Assert(pent.withDigit(1, KAxes).IsValid(), Equals, false)
}

func (s *IndexSuite) TestCounts(c *C) {
	n, err := NumCells(0)
	c.Assert(err, IsNil)
	c.Assert(n, Equals, int64(122))
	n, err = NumCells(15)
	c.Assert(err, IsNil)
	c.Assert(n, Equals, int64(569707381193162))

	_, err = NumCells(16)
	c.Assert(errors.Is(err, ErrInvalidResolution), Equals, true)

	c.Assert(Res0Cells(), HasLen, NumBaseCells)
	c.Assert(PentagonCount(), Equals, 12)
}

func (s *IndexSuite) TestPentagons(c *C) {
	for res := 0; res <= MaxResolution; res++ {
		pents, err := Pentagons(res)
		c.Assert(err, IsNil)
		c.Assert(pents, HasLen, 12)
		for _, p := range pents {
			c.Assert(p.IsValid(), Equals, true)
			c.Assert(p.IsPentagon(), Equals, true)
			c.Assert(p.Resolution(), Equals, res)
		}
	}
	_, err := Pentagons(-1)
	c.Assert(errors.Is(err, ErrInvalidResolution), Equals, true)
}

func (s *IndexSuite) TestBaseCellCenters(c *C) {
	for _, cell := range Res0Cells() {
		got, err := LatLngToCell(cell.LatLng(), 0)
		c.Assert(err, IsNil)
		c.Assert(got, Equals, cell)
	}
}

func (s *IndexSuite) TestCenterRoundTrip(c *C) {
	for res := 0; res <= MaxResolution; res++ {
		for _, ll := range []LatLng{
			LatLngFromDegrees(37.775938728915946, -122.41795063018799),
			LatLngFromDegrees(-33.8688, 151.2093),
			LatLngFromDegrees(89.9, 10),
			LatLngFromDegrees(0, 180),
		} {
			cell, err := LatLngToCell(ll, res)
			c.Assert(err, IsNil)
			back, err := LatLngToCell(cell.LatLng(), res)
			c.Assert(err, IsNil)
			c.Assert(back, Equals, cell, Commentf("res %d", res))
		}
	}
}

func (s *IndexSuite) TestEncodeRejects(c *C) {
	_, err := LatLngToCell(LatLng{Lat: math.NaN()}, 5)
	c.Assert(errors.Is(err, ErrInvalidLatLng), Equals, true)
	_, err = LatLngToCell(LatLng{Lng: math.Inf(1)}, 5)
	c.Assert(errors.Is(err, ErrInvalidLatLng), Equals, true)
	_, err = LatLngToCell(LatLng{}, 16)
	c.Assert(errors.Is(err, ErrInvalidResolution), Equals, true)

	var resErr *ResolutionError
	c.Assert(errors.As(err, &resErr), Equals, true)
	c.Assert(resErr.Res, Equals, 16)
}

func (s *IndexSuite) TestDecodeRejects(c *C) {
	_, err := CellToLatLng(Cell(0))
	c.Assert(errors.Is(err, ErrInvalidCell), Equals, true)
}
