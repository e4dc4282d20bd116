// Package hexgrid implements a hierarchical hexagonal grid over the sphere.
//
// The sphere is projected onto the twenty faces of an icosahedron and each
// face is tiled with hexagons. Resolution 0 has 122 base cells, twelve of
// which are pentagons sitting on the icosahedron vertices; every finer
// resolution subdivides a cell into seven children (aperture 7), alternating
// between two orientations (Class II on even resolutions, Class III on odd
// ones). A cell is identified by a packed 64-bit Cell value.
//
// All functions are pure and safe for concurrent use. Coordinates are
// radians; LatLngFromDegrees and LatLng.Degrees convert at the boundary.
//
// Basic usage:
//
//	c, err := hexgrid.LatLngToCell(hexgrid.LatLngFromDegrees(37.775, -122.418), 9)
//	disk, err := hexgrid.GridDisk(c, 2, hexgrid.DiskUnchecked)
package hexgrid

import (
	"strconv"
)

// Cell is a packed cell index.
//
// Layout, from the most significant bit: one reserved zero bit, a 4-bit mode,
// 3 reserved bits (the direction of a directed edge), a 4-bit resolution, a
// 7-bit base cell and fifteen 3-bit digits. Digits finer than the resolution
// hold 7.
type Cell uint64

// MaxResolution is the finest supported resolution.
const MaxResolution = 15

// NumBaseCells is the number of resolution 0 cells.
const NumBaseCells = 122

const (
	modeCell = 1
	modeEdge = 2

	numPentagons = 12

	highBitOffset  = 63
	modeOffset     = 59
	reservedOffset = 56
	resOffset      = 52
	baseCellOffset = 45
	digitBits      = 3

	highBitMask  = uint64(1) << highBitOffset
	modeMask     = uint64(15) << modeOffset
	reservedMask = uint64(7) << reservedOffset
	resMask      = uint64(15) << resOffset
	baseCellMask = uint64(127) << baseCellOffset
	digitMask    = uint64(7)

	// cellInit has every digit set to 7 and all other fields zero.
	cellInit Cell = 35184372088831

	// InvalidCell is the zero value returned alongside errors.
	InvalidCell Cell = 0
)

func (c Cell) mode() int { return int((uint64(c) & modeMask) >> modeOffset) }

func (c Cell) withMode(m int) Cell {
	return Cell((uint64(c) &^ modeMask) | uint64(m)<<modeOffset)
}

func (c Cell) reserved() int { return int((uint64(c) & reservedMask) >> reservedOffset) }

func (c Cell) withReserved(v int) Cell {
	return Cell((uint64(c) &^ reservedMask) | uint64(v)<<reservedOffset)
}

// Resolution returns the resolution of the cell, 0..15.
func (c Cell) Resolution() int { return int((uint64(c) & resMask) >> resOffset) }

func (c Cell) withResolution(res int) Cell {
	return Cell((uint64(c) &^ resMask) | uint64(res)<<resOffset)
}

// BaseCell returns the resolution 0 ancestor number, 0..121.
func (c Cell) BaseCell() int { return int((uint64(c) & baseCellMask) >> baseCellOffset) }

func (c Cell) withBaseCell(bc int) Cell {
	return Cell((uint64(c) &^ baseCellMask) | uint64(bc)<<baseCellOffset)
}

func digitShift(res int) uint { return uint((MaxResolution - res) * digitBits) }

func (c Cell) digit(res int) Direction {
	return Direction((uint64(c) >> digitShift(res)) & digitMask)
}

func (c Cell) withDigit(res int, d Direction) Cell {
	s := digitShift(res)
	return Cell((uint64(c) &^ (digitMask << s)) | uint64(d)<<s)
}

// newCell returns a cell at res on the given base cell with every used digit
// set to d.
func newCell(res, baseCell int, d Direction) Cell {
	c := cellInit.withMode(modeCell).withResolution(res).withBaseCell(baseCell)
	for r := 1; r <= res; r++ {
		c = c.withDigit(r, d)
	}
	return c
}

// IsValid reports whether c is a structurally valid cell index.
func (c Cell) IsValid() bool {
	if uint64(c)&highBitMask != 0 || c.mode() != modeCell || c.reserved() != 0 {
		return false
	}
	bc := c.BaseCell()
	if bc >= NumBaseCells {
		return false
	}
	res := c.Resolution()
	pent := isBaseCellPentagon(bc)
	leading := true
	for r := 1; r <= res; r++ {
		d := c.digit(r)
		if d == InvalidDigit {
			return false
		}
		if leading && d != Center {
			if pent && d == KAxes {
				return false
			}
			leading = false
		}
	}
	for r := res + 1; r <= MaxResolution; r++ {
		if c.digit(r) != InvalidDigit {
			return false
		}
	}
	return true
}

// IsPentagon reports whether the cell is one of the twelve pentagons of its
// resolution.
func (c Cell) IsPentagon() bool {
	return isBaseCellPentagon(c.BaseCell()) && c.leadingNonZeroDigit() == Center
}

// IsResClassIII reports whether the cell's resolution uses the Class III
// (rotated) orientation.
func (c Cell) IsResClassIII() bool { return isResClassIII(c.Resolution()) }

func isResClassIII(res int) bool { return res%2 == 1 }

// String returns the canonical lowercase hexadecimal form.
func (c Cell) String() string { return strconv.FormatUint(uint64(c), 16) }

// ParseCell reads the hexadecimal form of a cell index. An optional "0x"
// prefix is accepted; the value must be a valid cell.
func ParseCell(s string) (Cell, error) {
	v, err := parseIndex(s)
	if err != nil {
		return InvalidCell, err
	}
	c := Cell(v)
	if !c.IsValid() {
		return InvalidCell, &ParseError{Input: s, cause: ErrInvalidCell}
	}
	return c, nil
}

func parseIndex(s string) (uint64, error) {
	if s == "" || len(s) > 16 {
		return 0, &ParseError{Input: s}
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, &ParseError{Input: s, cause: err}
	}
	return v, nil
}

func (c Cell) leadingNonZeroDigit() Direction {
	for r := 1; r <= c.Resolution(); r++ {
		if d := c.digit(r); d != Center {
			return d
		}
	}
	return Center
}

// rotate60ccw rotates every digit of c 60 degrees counter-clockwise.
func (c Cell) rotate60ccw() Cell {
	for r := 1; r <= c.Resolution(); r++ {
		c = c.withDigit(r, c.digit(r).rotate60ccw())
	}
	return c
}

// rotate60cw rotates every digit of c 60 degrees clockwise.
func (c Cell) rotate60cw() Cell {
	for r := 1; r <= c.Resolution(); r++ {
		c = c.withDigit(r, c.digit(r).rotate60cw())
	}
	return c
}

// rotatePent60ccw rotates a pentagon-lineage cell counter-clockwise, stepping
// over the deleted K subsequence.
func (c Cell) rotatePent60ccw() Cell {
	found := false
	for r := 1; r <= c.Resolution(); r++ {
		c = c.withDigit(r, c.digit(r).rotate60ccw())
		if !found && c.digit(r) != Center {
			found = true
			if c.leadingNonZeroDigit() == KAxes {
				c = c.rotate60ccw()
			}
		}
	}
	return c
}

// rotatePent60cw is the clockwise counterpart of rotatePent60ccw.
func (c Cell) rotatePent60cw() Cell {
	found := false
	for r := 1; r <= c.Resolution(); r++ {
		c = c.withDigit(r, c.digit(r).rotate60cw())
		if !found && c.digit(r) != Center {
			found = true
			if c.leadingNonZeroDigit() == KAxes {
				c = c.rotate60cw()
			}
		}
	}
	return c
}

// NumCells returns the number of cells at res: 2 + 120 * 7^res.
func NumCells(res int) (int64, error) {
	if res < 0 || res > MaxResolution {
		return 0, resolutionErr("NumCells", res)
	}
	return 2 + 120*ipow7(res), nil
}

func ipow7(n int) int64 {
	p := int64(1)
	for ; n > 0; n-- {
		p *= 7
	}
	return p
}

// Res0Cells returns all 122 base cells in base cell order.
func Res0Cells() []Cell {
	out := make([]Cell, NumBaseCells)
	for bc := range out {
		out[bc] = newCell(0, bc, Center)
	}
	return out
}

// PentagonCount returns the number of pentagons per resolution.
func PentagonCount() int { return numPentagons }

// Pentagons returns the twelve pentagon cells at res, ordered by base cell.
func Pentagons(res int) ([]Cell, error) {
	if res < 0 || res > MaxResolution {
		return nil, resolutionErr("Pentagons", res)
	}
	out := make([]Cell, 0, numPentagons)
	for bc := 0; bc < NumBaseCells; bc++ {
		if isBaseCellPentagon(bc) {
			out = append(out, newCell(res, bc, Center))
		}
	}
	return out, nil
}
