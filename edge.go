package hexgrid

import "strconv"

// DirectedEdge identifies the edge from one cell to an adjacent cell. It
// shares the cell layout, with mode 2 and the direction toward the
// destination held in the reserved bits.
type DirectedEdge uint64

func (e DirectedEdge) cell() Cell { return Cell(e) }

// Direction returns the direction from the origin to the destination.
func (e DirectedEdge) Direction() Direction { return Direction(e.cell().reserved()) }

// String returns the lowercase hexadecimal form.
func (e DirectedEdge) String() string { return strconv.FormatUint(uint64(e), 16) }

// ParseDirectedEdge reads the hexadecimal form of a directed edge.
func ParseDirectedEdge(s string) (DirectedEdge, error) {
	v, err := parseIndex(s)
	if err != nil {
		return 0, err
	}
	e := DirectedEdge(v)
	if !e.IsValid() {
		return 0, &ParseError{Input: s, cause: ErrInvalidEdge}
	}
	return e, nil
}

// IsValid reports whether e is a structurally valid directed edge.
func (e DirectedEdge) IsValid() bool {
	dir := e.Direction()
	if dir <= Center || dir >= InvalidDigit {
		return false
	}
	if e.cell().mode() != modeEdge {
		return false
	}
	origin := e.origin()
	if origin.IsPentagon() && dir == KAxes {
		return false
	}
	return origin.IsValid()
}

func (e DirectedEdge) origin() Cell {
	return e.cell().withMode(modeCell).withReserved(0)
}

// Origin returns the cell the edge leaves from.
func (e DirectedEdge) Origin() (Cell, error) {
	if !e.IsValid() {
		return InvalidCell, ErrInvalidEdge
	}
	return e.origin(), nil
}

// Destination returns the cell the edge points to.
func (e DirectedEdge) Destination() (Cell, error) {
	if !e.IsValid() {
		return InvalidCell, ErrInvalidEdge
	}
	n, _, err := neighborRotations(e.origin(), e.Direction(), 0)
	if err != nil {
		return InvalidCell, ErrInvalidEdge
	}
	return n, nil
}

// Cells returns the origin and destination.
func (e DirectedEdge) Cells() (Cell, Cell, error) {
	o, err := e.Origin()
	if err != nil {
		return InvalidCell, InvalidCell, err
	}
	d, err := e.Destination()
	if err != nil {
		return InvalidCell, InvalidCell, err
	}
	return o, d, nil
}

// CellsToDirectedEdge returns the edge from origin to destination, which
// must be adjacent.
func CellsToDirectedEdge(origin, destination Cell) (DirectedEdge, error) {
	if !origin.IsValid() {
		return 0, cellErr("CellsToDirectedEdge", origin, ErrInvalidCell)
	}
	if !destination.IsValid() {
		return 0, cellErr("CellsToDirectedEdge", destination, ErrInvalidCell)
	}
	dir, ok := neighborDirection(origin, destination)
	if !ok {
		return 0, ErrNotNeighbors
	}
	return newDirectedEdge(origin, dir), nil
}

func newDirectedEdge(origin Cell, dir Direction) DirectedEdge {
	return DirectedEdge(origin.withMode(modeEdge).withReserved(int(dir)))
}

// DirectedEdges returns the edges leaving c: six for a hexagon, five for a
// pentagon.
func (c Cell) DirectedEdges() ([]DirectedEdge, error) {
	if !c.IsValid() {
		return nil, cellErr("DirectedEdges", c, ErrInvalidCell)
	}
	out := make([]DirectedEdge, 0, 6)
	pent := c.IsPentagon()
	for d := KAxes; d <= IJAxes; d++ {
		if pent && d == KAxes {
			continue
		}
		out = append(out, newDirectedEdge(c, d))
	}
	return out, nil
}

// Boundary returns the segment shared by the two cells, in the origin's
// winding order. Edges crossing an icosahedron edge carry a third vertex.
func (e DirectedEdge) Boundary() (Boundary, error) {
	if !e.IsValid() {
		return nil, ErrInvalidEdge
	}
	origin := e.origin()
	start := origin.vertexForDirection(e.Direction())
	if start < 0 {
		return nil, ErrInvalidEdge
	}
	f := cellToFaceIJK(origin)
	if origin.IsPentagon() {
		return pentBoundary(f, origin.Resolution(), start, 2), nil
	}
	return hexBoundary(f, origin.Resolution(), start, 2), nil
}

// LengthRads returns the exact length of the edge in radians.
func (e DirectedEdge) LengthRads() (float64, error) {
	b, err := e.Boundary()
	if err != nil {
		return 0, err
	}
	return b.lengthRads(), nil
}

func (e DirectedEdge) LengthKm() (float64, error) {
	l, err := e.LengthRads()
	return l * EarthRadiusKm, err
}

func (e DirectedEdge) LengthM() (float64, error) {
	l, err := e.LengthKm()
	return l * 1000, err
}
