package hexgrid

import (
	"errors"
	"math"
)

// Rotations applied when crossing into or out of a pentagon base cell,
// indexed by leading digit and direction. -1 marks the deleted K direction.
var pentagonRotations = [7][7]int{
	{0, -1, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, -1, 0, 0, 0, 1, 0},
	{0, -1, 0, 0, 1, 1, 0},
	{0, -1, 0, 5, 0, 0, 0},
	{0, -1, 5, 5, 0, 0, 0},
	{0, -1, 0, 0, 0, 0, 0},
}

var pentagonRotationsReverse = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, 1, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 1, 0},
	{0, 5, 0, 0, 0, 0, 0},
	{0, 5, 0, 5, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
}

var pentagonRotationsReverseNonPolar = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, 1, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 1, 0},
	{0, 5, 0, 0, 0, 0, 0},
	{0, 1, 0, 5, 1, 1, 0},
	{0, 0, 0, 0, 0, 0, 0},
}

var pentagonRotationsReversePolar = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, 1, 1, 1, 1, 1, 1},
	{0, 1, 0, 0, 0, 1, 0},
	{0, 1, 0, 0, 1, 1, 1},
	{0, 1, 0, 5, 1, 1, 0},
	{0, 1, 1, 0, 1, 1, 1},
}

// failedDirections marks leading digit and direction pairs whose local
// coordinates cannot be unfolded across a pentagon.
var failedDirections = [7][7]bool{
	{},
	{},
	{4: true, 5: true},
	{4: true, 6: true},
	{2: true, 3: true},
	{2: true, 6: true},
	{5: true},
}

// offsetInBaseCell returns the position of c relative to its own base cell
// center, in the base cell's frame.
func offsetInBaseCell(c Cell) coordIJK {
	var ijk coordIJK
	for r := 1; r <= c.Resolution(); r++ {
		if isResClassIII(r) {
			ijk = ijk.down7()
		} else {
			ijk = ijk.down7r()
		}
		ijk = ijk.neighbor(c.digit(r))
	}
	return ijk
}

// cellToLocalIJK returns the position of c in a coordinate frame anchored on
// origin's base cell. The frame is only defined for cells on the same or an
// adjacent base cell.
func cellToLocalIJK(origin, c Cell) (coordIJK, error) {
	res := origin.Resolution()
	if res != c.Resolution() {
		return coordIJK{}, ErrIncomparableCells
	}
	originBC := origin.BaseCell()
	bc := c.BaseCell()

	dir, revDir := Center, Center
	if originBC != bc {
		dir = baseCellDirection(originBC, bc)
		if dir == InvalidDigit {
			return coordIJK{}, ErrIncomparableCells
		}
		revDir = baseCellDirection(bc, originBC)
	}
	originOnPent := isBaseCellPentagon(originBC)
	indexOnPent := isBaseCellPentagon(bc)

	if dir != Center {
		// bring c into the orientation of the origin base cell
		rots := baseCellNeighbor60CCWRots[originBC][dir]
		for range rots {
			if indexOnPent {
				c = c.rotatePent60cw()
				revDir = revDir.rotate60cw()
				if revDir == KAxes {
					revDir = revDir.rotate60cw()
				}
			} else {
				c = c.rotate60cw()
				revDir = revDir.rotate60cw()
			}
		}
	}

	ijk := offsetInBaseCell(c)

	switch {
	case dir != Center:
		pentRots, dirRots := 0, 0
		if originOnPent {
			lead := origin.leadingNonZeroDigit()
			if failedDirections[lead][dir] {
				return coordIJK{}, ErrPentagonDistortion
			}
			dirRots = pentagonRotations[lead][dir]
			pentRots = dirRots
		} else if indexOnPent {
			lead := c.leadingNonZeroDigit()
			if failedDirections[lead][revDir] {
				return coordIJK{}, ErrPentagonDistortion
			}
			pentRots = pentagonRotations[revDir][lead]
		}
		if pentRots < 0 || dirRots < 0 {
			return coordIJK{}, ErrPentagonDistortion
		}
		for range pentRots {
			ijk = ijk.rotate60cw()
		}

		// offset of the neighboring base cell, scaled down to res
		offset := coordIJK{}.neighbor(dir)
		for r := res - 1; r >= 0; r-- {
			if isResClassIII(r + 1) {
				offset = offset.down7()
			} else {
				offset = offset.down7r()
			}
		}
		for range dirRots {
			offset = offset.rotate60cw()
		}
		ijk = ijk.add(offset).normalize()

	case originOnPent && indexOnPent:
		originLead := origin.leadingNonZeroDigit()
		lead := c.leadingNonZeroDigit()
		if failedDirections[originLead][lead] {
			return coordIJK{}, ErrPentagonDistortion
		}
		rots := pentagonRotations[originLead][lead]
		if rots < 0 {
			return coordIJK{}, ErrPentagonDistortion
		}
		for range rots {
			ijk = ijk.rotate60cw()
		}
	}
	return ijk, nil
}

// localIJKToCell is the inverse of cellToLocalIJK.
func localIJKToCell(origin Cell, ijk coordIJK) (Cell, error) {
	res := origin.Resolution()
	originBC := origin.BaseCell()
	originOnPent := isBaseCellPentagon(originBC)

	out := cellInit.withMode(modeCell).withResolution(res)

	if res == 0 {
		dir := ijk.unitDigit()
		if dir == InvalidDigit {
			return InvalidCell, ErrIncomparableCells
		}
		bc := baseCellNeighbors[originBC][dir]
		if bc == invalidBaseCell {
			return InvalidCell, ErrPentagonDistortion
		}
		return out.withBaseCell(bc), nil
	}

	// digits from the finest resolution up
	cur := ijk
	for r := res - 1; r >= 0; r-- {
		last := cur
		var lastCenter coordIJK
		if isResClassIII(r + 1) {
			cur = cur.up7()
			lastCenter = cur.down7()
		} else {
			cur = cur.up7r()
			lastCenter = cur.down7r()
		}
		out = out.withDigit(r+1, last.sub(lastCenter).unitDigit())
	}

	if cur.i > 1 || cur.j > 1 || cur.k > 1 {
		return InvalidCell, ErrIncomparableCells
	}

	dir := cur.unitDigit()
	bc := baseCellNeighbors[originBC][dir]
	indexOnPent := bc != invalidBaseCell && isBaseCellPentagon(bc)

	switch {
	case dir != Center:
		pentRots := 0
		if originOnPent {
			lead := origin.leadingNonZeroDigit()
			pentRots = pentagonRotationsReverse[lead][dir]
			if pentRots < 0 {
				return InvalidCell, ErrPentagonDistortion
			}
			for range pentRots {
				dir = dir.rotate60ccw()
			}
			if dir == KAxes {
				// the deleted subsequence has no cells
				return InvalidCell, ErrPentagonDistortion
			}
			bc = baseCellNeighbors[originBC][dir]
		}

		rots := baseCellNeighbor60CCWRots[originBC][dir]
		if indexOnPent {
			revDir := baseCellDirection(bc, originBC)
			for range rots {
				out = out.rotate60ccw()
			}
			lead := out.leadingNonZeroDigit()
			var table *[7][7]int
			if isBaseCellPolarPentagon(bc) {
				table = &pentagonRotationsReversePolar
			} else {
				table = &pentagonRotationsReverseNonPolar
			}
			pr := table[revDir][lead]
			if pr < 0 {
				return InvalidCell, ErrPentagonDistortion
			}
			for range pr {
				out = out.rotatePent60ccw()
			}
		} else {
			for range pentRots {
				out = out.rotate60ccw()
			}
			for range rots {
				out = out.rotate60ccw()
			}
		}

	case originOnPent && indexOnPent:
		originLead := origin.leadingNonZeroDigit()
		lead := out.leadingNonZeroDigit()
		rots := pentagonRotationsReverse[originLead][lead]
		if rots < 0 {
			return InvalidCell, ErrPentagonDistortion
		}
		for range rots {
			out = out.rotate60ccw()
		}
	}

	if indexOnPent && out.leadingNonZeroDigit() == KAxes {
		return InvalidCell, ErrPentagonDistortion
	}
	out = out.withBaseCell(bc)
	if !out.IsValid() {
		return InvalidCell, ErrPentagonDistortion
	}
	return out, nil
}

// CellToLocalIJ returns the coordinates of c in a local IJ frame anchored
// near origin. Coordinates are only comparable between calls that share an
// origin.
func CellToLocalIJ(origin, c Cell) (CoordIJ, error) {
	if !origin.IsValid() {
		return CoordIJ{}, cellErr("CellToLocalIJ", origin, ErrInvalidCell)
	}
	if !c.IsValid() {
		return CoordIJ{}, cellErr("CellToLocalIJ", c, ErrInvalidCell)
	}
	ijk, err := cellToLocalIJK(origin, c)
	if err != nil {
		return CoordIJ{}, err
	}
	return ijk.toIJ(), nil
}

// LocalIJToCell returns the cell at ij in origin's local frame.
func LocalIJToCell(origin Cell, ij CoordIJ) (Cell, error) {
	if !origin.IsValid() {
		return InvalidCell, cellErr("LocalIJToCell", origin, ErrInvalidCell)
	}
	return localIJKToCell(origin, ij.toIJK())
}

// GridDistance returns the number of steps between two cells of the same
// resolution. Cells too far apart to share a local frame, or separated by
// pentagon distortion, return an error.
func GridDistance(a, b Cell) (int64, error) {
	if !a.IsValid() {
		return 0, cellErr("GridDistance", a, ErrInvalidCell)
	}
	if !b.IsValid() {
		return 0, cellErr("GridDistance", b, ErrInvalidCell)
	}
	origin, err := cellToLocalIJK(a, a)
	if err != nil {
		return 0, err
	}
	dest, err := cellToLocalIJK(a, b)
	if err != nil {
		return 0, err
	}
	return int64(origin.distance(dest)), nil
}

// GridPathSize returns the number of cells in GridPath(a, b).
func GridPathSize(a, b Cell) (int64, error) {
	d, err := GridDistance(a, b)
	if err != nil {
		return 0, err
	}
	return d + 1, nil
}

// GridPath returns a minimal sequence of adjacent cells from start to end,
// inclusive. The line is drawn in start's local frame; where that frame
// cannot be unfolded the result is ErrLineNotComputable.
func GridPath(start, end Cell) ([]Cell, error) {
	distance, err := GridDistance(start, end)
	if err != nil {
		return nil, errors.Join(ErrLineNotComputable, err)
	}

	startIJK, err := cellToLocalIJK(start, start)
	if err != nil {
		return nil, errors.Join(ErrLineNotComputable, err)
	}
	endIJK, err := cellToLocalIJK(start, end)
	if err != nil {
		return nil, errors.Join(ErrLineNotComputable, err)
	}

	si, sj, sk := startIJK.toCube()
	ei, ej, ek := endIJK.toCube()
	var iStep, jStep, kStep float64
	if distance > 0 {
		d := float64(distance)
		iStep = float64(ei-si) / d
		jStep = float64(ej-sj) / d
		kStep = float64(ek-sk) / d
	}

	out := make([]Cell, 0, distance+1)
	for n := int64(0); n <= distance; n++ {
		ci, cj := cubeRound(
			float64(si)+iStep*float64(n),
			float64(sj)+jStep*float64(n),
			float64(sk)+kStep*float64(n),
		)
		c, err := localIJKToCell(start, cubeToIJK(ci, cj))
		if err != nil {
			return nil, errors.Join(ErrLineNotComputable, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// cubeRound rounds a fractional cube coordinate to the nearest hex, fixing
// the component with the largest rounding error so the three still sum to
// zero. Only i and j are returned.
func cubeRound(i, j, k float64) (int, int) {
	ri := math.Round(i)
	rj := math.Round(j)
	rk := math.Round(k)

	iDiff := math.Abs(ri - i)
	jDiff := math.Abs(rj - j)
	kDiff := math.Abs(rk - k)

	switch {
	case iDiff > jDiff && iDiff > kDiff:
		ri = -rj - rk
	case jDiff > kDiff:
		rj = -ri - rk
	}
	return int(ri), int(rj)
}
