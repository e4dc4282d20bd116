package hexgrid

import (
	"errors"
	"sort"

	. "gopkg.in/check.v1"
)

type HierarchySuite struct{}

var _ = Suite(&HierarchySuite{})

func (s *HierarchySuite) TestParent(c *C) {
	cell := mustCell(c, "8928308280fffff")

	p, err := cell.Parent(8)
	c.Assert(err, IsNil)
	c.Assert(p.String(), Equals, "8828308281fffff")

	p, err = cell.Parent(5)
	c.Assert(err, IsNil)
	c.Assert(p.String(), Equals, "85283083fffffff")

	p, err = cell.Parent(9)
	c.Assert(err, IsNil)
	c.Assert(p, Equals, cell)

	_, err = cell.Parent(10)
	c.Assert(errors.Is(err, ErrInvalidResolution), Equals, true)
	_, err = cell.Parent(-1)
	c.Assert(errors.Is(err, ErrInvalidResolution), Equals, true)
}

func (s *HierarchySuite) TestCenterChild(c *C) {
	cell := mustCell(c, "8928308280fffff")
	child, err := cell.CenterChild(10)
	c.Assert(err, IsNil)
	c.Assert(child.String(), Equals, "8a28308280c7fff")

	_, err = cell.CenterChild(8)
	c.Assert(errors.Is(err, ErrInvalidResolution), Equals, true)
}

func (s *HierarchySuite) TestChildren(c *C) {
	cell := mustCell(c, "8928308280fffff")
	children, err := cell.Children(10)
	c.Assert(err, IsNil)
	c.Assert(children, HasLen, 7)
	for _, child := range children {
		c.Assert(child.IsValid(), Equals, true)
		p, err := child.Parent(9)
		c.Assert(err, IsNil)
		c.Assert(p, Equals, cell)
	}
	center, _ := cell.CenterChild(10)
	c.Assert(children[0], Equals, center)

	grand, err := cell.Children(11)
	c.Assert(err, IsNil)
	c.Assert(grand, HasLen, 49)

	self, err := cell.Children(9)
	c.Assert(err, IsNil)
	c.Assert(self, DeepEquals, []Cell{cell})
}

func (s *HierarchySuite) TestPentagonChildren(c *C) {
	pents, err := Pentagons(0)
	c.Assert(err, IsNil)
	for _, p := range pents {
		children, err := p.Children(1)
		c.Assert(err, IsNil)
		c.Assert(children, HasLen, 6)

		grand, err := p.Children(2)
		c.Assert(err, IsNil)
		c.Assert(grand, HasLen, 6+5*7)
		c.Assert(int64(len(grand)), Equals, p.childrenCount(2))

		upper, err := p.MaxChildrenCount(2)
		c.Assert(err, IsNil)
		c.Assert(upper, Equals, int64(49))
	}
}

func (s *HierarchySuite) TestAllCellsAtLowResolutions(c *C) {
	var all []Cell
	for _, base := range Res0Cells() {
		children, err := base.Children(2)
		c.Assert(err, IsNil)
		all = append(all, children...)
	}
	n, _ := NumCells(2)
	c.Assert(int64(len(all)), Equals, n)

	set := NewCellSet(all...)
	c.Assert(set.Len(), Equals, len(all))
}

func (s *HierarchySuite) TestChildrenContainCenters(c *C) {
	cell := mustCell(c, "85283473fffffff")
	children, err := cell.Children(6)
	c.Assert(err, IsNil)
	for _, child := range children {
		got, err := LatLngToCell(child.LatLng(), 6)
		c.Assert(err, IsNil)
		c.Assert(got, Equals, child)
	}
}

func (s *HierarchySuite) TestSouthPolarPentagonChildren(c *C) {
	p := mustCell(c, "80ebfffffffffff")
	c.Assert(p.IsPentagon(), Equals, true)
	children, err := p.Children(1)
	c.Assert(err, IsNil)
	got := make([]string, len(children))
	for i, ch := range children {
		got[i] = ch.String()
	}
	sort.Strings(got)
	c.Assert(got, DeepEquals, []string{
		"81ea3ffffffffff", "81eabffffffffff", "81eafffffffffff",
		"81eb3ffffffffff", "81eb7ffffffffff", "81ebbffffffffff",
	})
	for _, ch := range children {
		parent, err := ch.Parent(0)
		c.Assert(err, IsNil)
		c.Assert(parent, Equals, p)
	}
}
