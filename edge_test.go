package hexgrid

import (
	"errors"
	"math"

	. "gopkg.in/check.v1"
)

type EdgeSuite struct{}

var _ = Suite(&EdgeSuite{})

func (s *EdgeSuite) TestCellsToDirectedEdge(c *C) {
	origin := mustCell(c, "8928308280fffff")
	dest := mustCell(c, "8928308280bffff")

	e, err := CellsToDirectedEdge(origin, dest)
	c.Assert(err, IsNil)
	c.Assert(e.String(), Equals, "16928308280fffff")
	c.Assert(e.IsValid(), Equals, true)

	o, d, err := e.Cells()
	c.Assert(err, IsNil)
	c.Assert(o, Equals, origin)
	c.Assert(d, Equals, dest)

	_, err = CellsToDirectedEdge(origin, mustCell(c, "89283082993ffff"))
	c.Assert(errors.Is(err, ErrNotNeighbors), Equals, true)
	_, err = CellsToDirectedEdge(origin, origin)
	c.Assert(errors.Is(err, ErrNotNeighbors), Equals, true)
}

func (s *EdgeSuite) TestParse(c *C) {
	e, err := ParseDirectedEdge("11928308280fffff")
	c.Assert(err, IsNil)
	c.Assert(e.Direction(), Equals, KAxes)

	o, err := e.Origin()
	c.Assert(err, IsNil)
	c.Assert(o.String(), Equals, "8928308280fffff")
	d, err := e.Destination()
	c.Assert(err, IsNil)
	c.Assert(d.String(), Equals, "8928308283bffff")

	_, err = ParseDirectedEdge("8928308280fffff")
	c.Assert(errors.Is(err, ErrInvalidEdge), Equals, true)
	c.Assert(DirectedEdge(0x8928308280fffff).IsValid(), Equals, false)

	_, err = DirectedEdge(0x8928308280fffff).Destination()
	c.Assert(errors.Is(err, ErrInvalidEdge), Equals, true)
}

func (s *EdgeSuite) TestDirectedEdges(c *C) {
	hex := mustCell(c, "8928308280fffff")
	edges, err := hex.DirectedEdges()
	c.Assert(err, IsNil)
	c.Assert(edges, HasLen, 6)
	for _, e := range edges {
		c.Assert(e.IsValid(), Equals, true)
		o, d, err := e.Cells()
		c.Assert(err, IsNil)
		c.Assert(o, Equals, hex)
		ok, err := AreNeighborCells(o, d)
		c.Assert(err, IsNil)
		c.Assert(ok, Equals, true)

		back, err := CellsToDirectedEdge(o, d)
		c.Assert(err, IsNil)
		c.Assert(back, Equals, e)
	}

	pent := mustCell(c, "821c07fffffffff")
	edges, err = pent.DirectedEdges()
	c.Assert(err, IsNil)
	c.Assert(edges, HasLen, 5)
	for _, e := range edges {
		c.Assert(e.IsValid(), Equals, true)
	}
	c.Assert(newDirectedEdge(pent, KAxes).IsValid(), Equals, false)
}

func (s *EdgeSuite) TestBoundary(c *C) {
	e, err := ParseDirectedEdge("11928308280fffff")
	c.Assert(err, IsNil)
	b, err := e.Boundary()
	c.Assert(err, IsNil)
	c.Assert(b, HasLen, 2)

	want := [][2]float64{
		{37.77820687262237, -122.41971895414808},
		{37.77652420699321, -122.42079024541876},
	}
	for i, v := range b {
		lat, lng := v.Degrees()
		c.Assert(math.Abs(lat-want[i][0]) < 1e-6, Equals, true, Commentf("vertex %d lat %f", i, lat))
		c.Assert(math.Abs(lng-want[i][1]) < 1e-6, Equals, true, Commentf("vertex %d lng %f", i, lng))
	}
}

func (s *EdgeSuite) TestBoundaryShared(c *C) {
	hex := mustCell(c, "8928308280fffff")
	edges, err := hex.DirectedEdges()
	c.Assert(err, IsNil)
	for _, e := range edges {
		o, d, err := e.Cells()
		c.Assert(err, IsNil)
		rev, err := CellsToDirectedEdge(d, o)
		c.Assert(err, IsNil)

		fwd, err := e.Boundary()
		c.Assert(err, IsNil)
		back, err := rev.Boundary()
		c.Assert(err, IsNil)
		c.Assert(back, HasLen, len(fwd))
		// the reverse edge walks the same segment the other way
		c.Assert(fwd[0].almostEqual(back[len(back)-1], vertexEpsilon), Equals, true)
		c.Assert(fwd[len(fwd)-1].almostEqual(back[0], vertexEpsilon), Equals, true)
	}
}

func (s *EdgeSuite) TestLength(c *C) {
	e := DirectedEdge(0x16928308280fffff)
	km, err := e.LengthKm()
	c.Assert(err, IsNil)
	avg, err := HexagonEdgeLengthAvgKm(9)
	c.Assert(err, IsNil)
	c.Assert(km > avg/2 && km < avg*2, Equals, true, Commentf("length %f avg %f", km, avg))

	m, err := e.LengthM()
	c.Assert(err, IsNil)
	c.Assert(math.Abs(m-km*1000) < 1e-6, Equals, true)

	_, err = DirectedEdge(0).LengthRads()
	c.Assert(errors.Is(err, ErrInvalidEdge), Equals, true)
}

func (s *EdgeSuite) TestBasePentagonEdges(c *C) {
	tests := []struct {
		pentagon string
		edges    []string
		dests    []string
	}{
		{
			"80ebfffffffffff",
			[]string{"120ebfffffffffff", "130ebfffffffffff", "140ebfffffffffff", "150ebfffffffffff", "160ebfffffffffff"},
			[]string{"80dbfffffffffff", "80edfffffffffff", "80e3fffffffffff", "80f3fffffffffff", "80d5fffffffffff"},
		},
		{
			"8009fffffffffff",
			[]string{"12009fffffffffff", "13009fffffffffff", "14009fffffffffff", "15009fffffffffff", "16009fffffffffff"},
			[]string{"801ffffffffffff", "8011fffffffffff", "8007fffffffffff", "8001fffffffffff", "8019fffffffffff"},
		},
	}
	for _, tt := range tests {
		p := mustCell(c, tt.pentagon)
		edges, err := p.DirectedEdges()
		c.Assert(err, IsNil)
		c.Assert(edges, HasLen, len(tt.edges))
		for i, e := range edges {
			c.Assert(e.String(), Equals, tt.edges[i])
			d, err := e.Destination()
			c.Assert(err, IsNil)
			c.Assert(d.String(), Equals, tt.dests[i])

			back, err := CellsToDirectedEdge(p, d)
			c.Assert(err, IsNil)
			c.Assert(back, Equals, e, Commentf("edge %s", e))
		}
	}
}

func (s *EdgeSuite) TestRoundTripCoarse(c *C) {
	cells := Res0Cells()
	for _, base := range Res0Cells() {
		children, err := base.Children(1)
		c.Assert(err, IsNil)
		cells = append(cells, children...)
	}
	for _, cell := range cells {
		edges, err := cell.DirectedEdges()
		c.Assert(err, IsNil)
		for _, e := range edges {
			o, d, err := e.Cells()
			c.Assert(err, IsNil)
			back, err := CellsToDirectedEdge(o, d)
			c.Assert(err, IsNil)
			c.Assert(back, Equals, e, Commentf("edge %s", e))
		}
	}
}
