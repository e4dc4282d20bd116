package hexgrid

import (
	"errors"

	. "gopkg.in/check.v1"
)

type CompactSuite struct{}

var _ = Suite(&CompactSuite{})

func (s *CompactSuite) TestCompactFullDisk(c *C) {
	parent := mustCell(c, "85283473fffffff")
	children, err := parent.Children(7)
	c.Assert(err, IsNil)
	c.Assert(children, HasLen, 49)

	compacted, err := CompactCells(children)
	c.Assert(err, IsNil)
	c.Assert(compacted, DeepEquals, []Cell{parent})
}

func (s *CompactSuite) TestCompactPartial(c *C) {
	parent := mustCell(c, "85283473fffffff")
	children, err := parent.Children(6)
	c.Assert(err, IsNil)
	grand, err := children[0].Children(7)
	c.Assert(err, IsNil)

	// one complete group of seven plus a stray grandchild of another child
	stray, err := children[1].CenterChild(7)
	c.Assert(err, IsNil)
	input := append(append([]Cell{}, grand...), stray)

	compacted, err := CompactCells(input)
	c.Assert(err, IsNil)
	c.Assert(compacted, DeepEquals, []Cell{stray, children[0]})

	back, err := UncompactCells(compacted, 7)
	c.Assert(err, IsNil)
	c.Assert(NewCellSet(back...).Len(), Equals, len(input))
	for _, cell := range input {
		c.Assert(NewCellSet(back...).Contains(cell), Equals, true)
	}
}

func (s *CompactSuite) TestCompactPentagon(c *C) {
	pent := mustCell(c, "821c07fffffffff")
	children, err := pent.Children(4)
	c.Assert(err, IsNil)

	compacted, err := CompactCells(children)
	c.Assert(err, IsNil)
	c.Assert(compacted, DeepEquals, []Cell{pent})
}

func (s *CompactSuite) TestCompactAllRes1(c *C) {
	var all []Cell
	for _, base := range Res0Cells() {
		children, err := base.Children(1)
		c.Assert(err, IsNil)
		all = append(all, children...)
	}
	compacted, err := CompactCells(all)
	c.Assert(err, IsNil)
	c.Assert(compacted, DeepEquals, Res0Cells())
}

func (s *CompactSuite) TestCompactErrors(c *C) {
	cell := mustCell(c, "8928308280fffff")
	_, err := CompactCells([]Cell{cell, cell})
	c.Assert(errors.Is(err, ErrDuplicateInput), Equals, true)

	parent, _ := cell.Parent(8)
	_, err = CompactCells([]Cell{cell, parent})
	c.Assert(errors.Is(err, ErrMixedResolution), Equals, true)

	_, err = CompactCells([]Cell{Cell(0)})
	c.Assert(errors.Is(err, ErrInvalidCell), Equals, true)

	out, err := CompactCells(nil)
	c.Assert(err, IsNil)
	c.Assert(out, HasLen, 0)
}

func (s *CompactSuite) TestUncompact(c *C) {
	cell := mustCell(c, "85283473fffffff")
	pents, err := Pentagons(5)
	c.Assert(err, IsNil)
	pent := pents[0]

	n, err := MaxUncompactSize([]Cell{cell, pent}, 7)
	c.Assert(err, IsNil)
	c.Assert(n, Equals, int64(49+41))

	out, err := UncompactCells([]Cell{cell, pent}, 7)
	c.Assert(err, IsNil)
	c.Assert(int64(len(out)), Equals, n)

	same, err := UncompactCells([]Cell{cell}, 5)
	c.Assert(err, IsNil)
	c.Assert(same, DeepEquals, []Cell{cell})

	_, err = UncompactCells([]Cell{cell}, 4)
	c.Assert(errors.Is(err, ErrInvalidResolution), Equals, true)
	_, err = UncompactCells([]Cell{cell}, 16)
	c.Assert(errors.Is(err, ErrInvalidResolution), Equals, true)
	_, err = MaxUncompactSize([]Cell{Cell(0)}, 5)
	c.Assert(errors.Is(err, ErrInvalidCell), Equals, true)
}
