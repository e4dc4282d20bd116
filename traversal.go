package hexgrid

import (
	"errors"
	"fmt"
)

// DiskMode selects how GridDisk treats pentagon distortion.
type DiskMode int

const (
	// DiskChecked fails with ErrPentagonDistortion when the walk meets a
	// pentagon or stops producing a closed ring of distinct cells.
	DiskChecked DiskMode = iota
	// DiskUnchecked falls back to a breadth-first expansion that is correct
	// around pentagons.
	DiskUnchecked
)

func (m DiskMode) String() string {
	switch m {
	case DiskChecked:
		return "checked"
	case DiskUnchecked:
		return "unchecked"
	default:
		return fmt.Sprintf("DiskMode(%d)", int(m))
	}
}

// ParseDiskMode reads "checked" or "unchecked".
func ParseDiskMode(s string) (DiskMode, error) {
	switch s {
	case "checked":
		return DiskChecked, nil
	case "unchecked":
		return DiskUnchecked, nil
	}
	return DiskChecked, fmt.Errorf("%w: unknown disk mode %q", ErrParse, s)
}

// ringDirections is the order in which the sides of a ring are walked.
var ringDirections = [6]Direction{JAxes, JKAxes, KAxes, IKAxes, IAxes, IJAxes}

// nextRingDirection steps from the last cell of a ring onto the next ring.
const nextRingDirection = IAxes

// Digit and carry tables for moving one step from a digit. The II tables
// apply at Class III resolutions, the III tables at Class II resolutions.
var (
	newDigitII = [7][7]Direction{
		{Center, KAxes, JAxes, JKAxes, IAxes, IKAxes, IJAxes},
		{KAxes, IAxes, JKAxes, IJAxes, IKAxes, JAxes, Center},
		{JAxes, JKAxes, KAxes, IAxes, IJAxes, Center, IKAxes},
		{JKAxes, IJAxes, IAxes, IKAxes, Center, KAxes, JAxes},
		{IAxes, IKAxes, IJAxes, Center, JAxes, JKAxes, KAxes},
		{IKAxes, JAxes, Center, KAxes, JKAxes, IJAxes, IAxes},
		{IJAxes, Center, IKAxes, JAxes, KAxes, IAxes, JKAxes},
	}
	newAdjustmentII = [7][7]Direction{
		{Center, Center, Center, Center, Center, Center, Center},
		{Center, KAxes, Center, KAxes, Center, IKAxes, Center},
		{Center, Center, JAxes, JKAxes, Center, Center, JAxes},
		{Center, KAxes, JKAxes, JKAxes, Center, Center, Center},
		{Center, Center, Center, Center, IAxes, IAxes, IJAxes},
		{Center, IKAxes, Center, Center, IAxes, IKAxes, Center},
		{Center, Center, JAxes, Center, IJAxes, Center, IJAxes},
	}
	newDigitIII = [7][7]Direction{
		{Center, KAxes, JAxes, JKAxes, IAxes, IKAxes, IJAxes},
		{KAxes, JAxes, JKAxes, IAxes, IKAxes, IJAxes, Center},
		{JAxes, JKAxes, IAxes, IKAxes, IJAxes, Center, KAxes},
		{JKAxes, IAxes, IKAxes, IJAxes, Center, KAxes, JAxes},
		{IAxes, IKAxes, IJAxes, Center, KAxes, JAxes, JKAxes},
		{IKAxes, IJAxes, Center, KAxes, JAxes, JKAxes, IAxes},
		{IJAxes, Center, KAxes, JAxes, JKAxes, IAxes, IKAxes},
	}
	newAdjustmentIII = [7][7]Direction{
		{Center, Center, Center, Center, Center, Center, Center},
		{Center, KAxes, Center, JKAxes, Center, KAxes, Center},
		{Center, Center, JAxes, JAxes, Center, Center, IJAxes},
		{Center, JKAxes, JAxes, JKAxes, Center, Center, Center},
		{Center, Center, Center, Center, IAxes, IKAxes, IAxes},
		{Center, KAxes, Center, Center, IKAxes, IKAxes, Center},
		{Center, Center, IJAxes, Center, IAxes, Center, IJAxes},
	}
)

// neighborRotations returns the neighbor of origin in direction dir. The
// rotations argument carries the frame rotation accumulated by a walk and is
// returned updated.
func neighborRotations(origin Cell, dir Direction, rotations int) (Cell, int, error) {
	if dir < Center || dir >= InvalidDigit {
		return InvalidCell, rotations, ErrInvalidDirection
	}
	rotations %= 6
	for range rotations {
		dir = dir.rotate60ccw()
	}

	out := origin
	newRotations := 0
	oldBaseCell := out.BaseCell()
	if oldBaseCell >= NumBaseCells {
		return InvalidCell, rotations, ErrInvalidCell
	}
	oldLeading := out.leadingNonZeroDigit()

	// carry the step up through the digits until it is absorbed
	for r := out.Resolution() - 1; ; {
		if r == -1 {
			out = out.withBaseCell(baseCellNeighbors[oldBaseCell][dir])
			newRotations = baseCellNeighbor60CCWRots[oldBaseCell][dir]
			if out.BaseCell() == invalidBaseCell {
				// the deleted K direction borders the IK neighbor instead
				out = out.withBaseCell(baseCellNeighbors[oldBaseCell][IKAxes])
				newRotations = baseCellNeighbor60CCWRots[oldBaseCell][IKAxes]
				out = out.rotate60ccw()
				rotations++
			}
			break
		}
		oldDigit := out.digit(r + 1)
		if oldDigit == InvalidDigit {
			return InvalidCell, rotations, ErrInvalidCell
		}
		var next Direction
		if isResClassIII(r + 1) {
			out = out.withDigit(r+1, newDigitII[oldDigit][dir])
			next = newAdjustmentII[oldDigit][dir]
		} else {
			out = out.withDigit(r+1, newDigitIII[oldDigit][dir])
			next = newAdjustmentIII[oldDigit][dir]
		}
		if next == Center {
			break
		}
		dir = next
		r--
	}

	newBaseCell := out.BaseCell()
	if isBaseCellPentagon(newBaseCell) {
		adjustedKSubsequence := false
		if out.leadingNonZeroDigit() == KAxes {
			if oldBaseCell != newBaseCell {
				// entered the pentagon through the deleted subsequence
				if baseCellIsCWOffset(newBaseCell, baseCellData[oldBaseCell].home.face) {
					out = out.rotate60cw()
				} else {
					out = out.rotate60ccw()
				}
				adjustedKSubsequence = true
			} else {
				switch oldLeading {
				case Center:
					return InvalidCell, rotations, ErrPentagonDistortion
				case JKAxes:
					out = out.rotate60ccw()
					rotations++
				case IKAxes:
					out = out.rotate60cw()
					rotations += 5
				default:
					return InvalidCell, rotations, ErrPentagonDistortion
				}
			}
		}
		for range newRotations {
			out = out.rotatePent60ccw()
		}
		if oldBaseCell != newBaseCell {
			if isBaseCellPolarPentagon(newBaseCell) {
				if oldBaseCell != 118 && oldBaseCell != 8 && out.leadingNonZeroDigit() != JKAxes {
					rotations++
				}
			} else if out.leadingNonZeroDigit() == IKAxes && !adjustedKSubsequence {
				rotations++
			}
		}
	} else {
		for range newRotations {
			out = out.rotate60ccw()
		}
	}

	rotations = (rotations + newRotations) % 6
	return out, rotations, nil
}

// Neighbor returns the cell adjacent to origin in direction dir. Center
// returns origin itself; the K direction of a pentagon does not exist and
// returns ErrPentagonDistortion.
func Neighbor(origin Cell, dir Direction) (Cell, error) {
	if !origin.IsValid() {
		return InvalidCell, cellErr("Neighbor", origin, ErrInvalidCell)
	}
	if origin.IsPentagon() && dir == KAxes {
		return InvalidCell, cellErr("Neighbor", origin, ErrPentagonDistortion)
	}
	n, _, err := neighborRotations(origin, dir, 0)
	if err != nil {
		return InvalidCell, cellErr("Neighbor", origin, err)
	}
	return n, nil
}

// MaxGridDiskSize returns the number of cells within distance k of a
// hexagon: 3k(k+1)+1.
func MaxGridDiskSize(k int) (int64, error) {
	if k < 0 {
		return 0, ErrInvalidK
	}
	kk := int64(k)
	return 3*kk*(kk+1) + 1, nil
}

// MaxGridRingSize returns the number of cells at exactly distance k.
func MaxGridRingSize(k int) (int64, error) {
	if k < 0 {
		return 0, ErrInvalidK
	}
	if k == 0 {
		return 1, nil
	}
	return 6 * int64(k), nil
}

// GridDisk returns every cell within distance k of origin, grouped by
// increasing distance with origin first.
func GridDisk(origin Cell, k int, mode DiskMode) ([]Cell, error) {
	rings, err := GridDiskDistances(origin, k, mode)
	if err != nil {
		return nil, err
	}
	return Flatten(rings), nil
}

// GridDiskDistances returns the cells within distance k of origin grouped by
// distance: element d holds the cells at distance d.
func GridDiskDistances(origin Cell, k int, mode DiskMode) ([][]Cell, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}
	if !origin.IsValid() {
		return nil, cellErr("GridDisk", origin, ErrInvalidCell)
	}
	rings, err := diskSpiral(origin, k)
	if err == nil {
		return rings, nil
	}
	if mode == DiskChecked || !errors.Is(err, ErrPentagonDistortion) {
		return nil, cellErr("GridDisk", origin, err)
	}
	return diskBreadthFirst(origin, k)
}

// diskSpiral walks the disk ring by ring. It fails as soon as it meets a
// pentagon, when a ring does not close on its first cell, or when a cell
// repeats.
func diskSpiral(origin Cell, k int) ([][]Cell, error) {
	rings := make([][]Cell, k+1)
	rings[0] = []Cell{origin}
	if origin.IsPentagon() {
		return nil, ErrPentagonDistortion
	}
	seen := make(map[Cell]struct{}, 3*k*(k+1)+1)
	seen[origin] = struct{}{}

	cur := origin
	rotations := 0
	var err error
	for ring := 1; ring <= k; ring++ {
		cur, rotations, err = neighborRotations(cur, nextRingDirection, rotations)
		if err != nil {
			return nil, err
		}
		if cur.IsPentagon() {
			return nil, ErrPentagonDistortion
		}
		first := cur
		cells := make([]Cell, 0, 6*ring)
		for _, dir := range ringDirections {
			for range ring {
				cur, rotations, err = neighborRotations(cur, dir, rotations)
				if err != nil {
					return nil, err
				}
				if cur.IsPentagon() {
					return nil, ErrPentagonDistortion
				}
				if _, dup := seen[cur]; dup {
					return nil, ErrPentagonDistortion
				}
				seen[cur] = struct{}{}
				cells = append(cells, cur)
			}
		}
		// the walk ends on the cell it entered the ring at
		if cur != first {
			return nil, ErrPentagonDistortion
		}
		rings[ring] = cells
	}
	return rings, nil
}

// diskBreadthFirst expands the disk one ring at a time through the neighbor
// graph. It is slower than the spiral but correct around pentagons.
func diskBreadthFirst(origin Cell, k int) ([][]Cell, error) {
	seen := map[Cell]struct{}{origin: {}}
	rings := make([][]Cell, 1, k+1)
	rings[0] = []Cell{origin}
	for d := 1; d <= k; d++ {
		var next []Cell
		for _, c := range rings[d-1] {
			for _, dir := range ringDirections {
				if dir == KAxes && c.IsPentagon() {
					continue
				}
				n, _, err := neighborRotations(c, dir, 0)
				if err != nil {
					if errors.Is(err, ErrPentagonDistortion) {
						continue
					}
					return nil, cellErr("GridDisk", c, err)
				}
				if _, ok := seen[n]; ok {
					continue
				}
				seen[n] = struct{}{}
				next = append(next, n)
			}
		}
		rings = append(rings, next)
	}
	return rings, nil
}

// GridRing returns the cells at exactly distance k from origin by walking the
// ring's perimeter. It fails with ErrPentagonDistortion near pentagons.
func GridRing(origin Cell, k int) ([]Cell, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}
	if !origin.IsValid() {
		return nil, cellErr("GridRing", origin, ErrInvalidCell)
	}
	ring, err := ringPerimeter(origin, k)
	if err != nil {
		return nil, cellErr("GridRing", origin, err)
	}
	return ring, nil
}

// GridRingUnchecked is GridRing with a breadth-first fallback near pentagons.
func GridRingUnchecked(origin Cell, k int) ([]Cell, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}
	if !origin.IsValid() {
		return nil, cellErr("GridRing", origin, ErrInvalidCell)
	}
	ring, err := ringPerimeter(origin, k)
	if err == nil {
		return ring, nil
	}
	if !errors.Is(err, ErrPentagonDistortion) {
		return nil, cellErr("GridRing", origin, err)
	}
	rings, err := diskBreadthFirst(origin, k)
	if err != nil {
		return nil, err
	}
	return rings[k], nil
}

func ringPerimeter(origin Cell, k int) ([]Cell, error) {
	if k == 0 {
		return []Cell{origin}, nil
	}
	if origin.IsPentagon() {
		return nil, ErrPentagonDistortion
	}

	cur := origin
	rotations := 0
	var err error
	for range k {
		cur, rotations, err = neighborRotations(cur, nextRingDirection, rotations)
		if err != nil {
			return nil, err
		}
		if cur.IsPentagon() {
			return nil, ErrPentagonDistortion
		}
	}

	first := cur
	out := make([]Cell, 0, 6*k)
	out = append(out, cur)
	for side, dir := range ringDirections {
		for pos := range k {
			cur, rotations, err = neighborRotations(cur, dir, rotations)
			if err != nil {
				return nil, err
			}
			// the final step returns to the first cell, which is walked but
			// not emitted twice
			if pos != k-1 || side != 5 {
				out = append(out, cur)
				if cur.IsPentagon() {
					return nil, ErrPentagonDistortion
				}
			}
		}
	}
	if cur != first {
		return nil, ErrPentagonDistortion
	}
	return out, nil
}

// AreNeighborCells reports whether a and b share an edge.
func AreNeighborCells(a, b Cell) (bool, error) {
	if !a.IsValid() {
		return false, cellErr("AreNeighborCells", a, ErrInvalidCell)
	}
	if !b.IsValid() {
		return false, cellErr("AreNeighborCells", b, ErrInvalidCell)
	}
	if a.Resolution() != b.Resolution() {
		return false, ErrIncomparableCells
	}
	_, ok := neighborDirection(a, b)
	return ok, nil
}

// neighborDirection returns the direction from origin to an adjacent cell.
func neighborDirection(origin, dest Cell) (Direction, bool) {
	if origin == dest {
		return InvalidDigit, false
	}
	start := KAxes
	if origin.IsPentagon() {
		start = JAxes
	}
	for d := start; d <= IJAxes; d++ {
		n, _, err := neighborRotations(origin, d, 0)
		if err != nil {
			continue
		}
		if n == dest {
			return d, true
		}
	}
	return InvalidDigit, false
}

// Flatten concatenates grouped results in order.
func Flatten(groups [][]Cell) []Cell {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]Cell, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
