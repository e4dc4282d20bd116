package hexgrid

const (
	numHexVerts  = 6
	numPentVerts = 5

	// maxCellBoundaryVerts allows one distortion vertex per edge of a
	// Class III cell.
	maxCellBoundaryVerts = 10
)

// Boundary is the closed outline of a cell or edge as an open list of
// vertices in counter-clockwise order.
type Boundary []LatLng

// Substrate offsets of a cell's vertices from its center on the aperture-3
// vertex grid.
var (
	hexVertsClassII   = [numHexVerts]coordIJK{{2, 1, 0}, {1, 2, 0}, {0, 2, 1}, {0, 1, 2}, {1, 0, 2}, {2, 0, 1}}
	hexVertsClassIII  = [numHexVerts]coordIJK{{5, 4, 0}, {1, 5, 0}, {0, 5, 4}, {0, 1, 5}, {4, 0, 5}, {5, 0, 1}}
	pentVertsClassII  = [numPentVerts]coordIJK{{2, 1, 0}, {1, 2, 0}, {0, 2, 1}, {0, 1, 2}, {1, 0, 2}}
	pentVertsClassIII = [numPentVerts]coordIJK{{5, 4, 0}, {1, 5, 0}, {0, 5, 4}, {0, 1, 5}, {4, 0, 5}}
)

// toSubstrate moves a cell center onto the vertex grid. Class III cells are
// expressed in the Class II grid one resolution finer, so the adjusted
// resolution is returned.
func (f faceIJK) toSubstrate(res int) (faceIJK, int) {
	f.coord = f.coord.down3().down3r()
	if isResClassIII(res) {
		f.coord = f.coord.down7r()
		res++
	}
	return f, res
}

func (f faceIJK) vertices(res int, offsets []coordIJK) ([]faceIJK, int) {
	center, adjRes := f.toSubstrate(res)
	verts := make([]faceIJK, len(offsets))
	for i, o := range offsets {
		verts[i] = faceIJK{face: center.face, coord: center.coord.add(o).normalize()}
	}
	return verts, adjRes
}

func (f faceIJK) hexVertices(res int) ([]faceIJK, int) {
	if isResClassIII(res) {
		return f.vertices(res, hexVertsClassIII[:])
	}
	return f.vertices(res, hexVertsClassII[:])
}

func (f faceIJK) pentVertices(res int) ([]faceIJK, int) {
	if isResClassIII(res) {
		return f.vertices(res, pentVertsClassIII[:])
	}
	return f.vertices(res, pentVertsClassII[:])
}

// faceEdge returns the end points, in the substrate plane, of the icosahedron
// face edge toward the given quadrant.
func faceEdge(quadrant, adjRes int) (vec2, vec2) {
	m := float64(maxDimByCIIRes[adjRes])
	v0 := vec2{3.0 * m, 0.0}
	v1 := vec2{-1.5 * m, 3.0 * sqrt3_2 * m}
	v2 := vec2{-1.5 * m, -3.0 * sqrt3_2 * m}
	switch quadrant {
	case quadIJ:
		return v0, v1
	case quadJK:
		return v1, v2
	default:
		return v2, v0
	}
}

// hexBoundary traces length vertices of a hexagon starting at vertex start.
// Class III edges that cross an icosahedron edge get an extra vertex at the
// crossing so each half projects on its own face.
func hexBoundary(center faceIJK, res, start, length int) Boundary {
	verts, adjRes := center.hexVertices(res)
	extra := 0
	if length == numHexVerts {
		extra = 1
	}

	out := make(Boundary, 0, maxCellBoundaryVerts)
	lastFace := -1
	lastOverage := noOverage
	for vert := start; vert < start+length+extra; vert++ {
		v := vert % numHexVerts
		f := verts[v]
		ov := f.adjustOverageClassII(adjRes, false, true)

		if isResClassIII(res) && vert > start && f.face != lastFace && lastOverage != faceEdgeOverage {
			lastV := (v + 5) % numHexVerts
			p0 := verts[lastV].coord.toHex2d()
			p1 := verts[v].coord.toHex2d()

			face2 := lastFace
			if lastFace == center.face {
				face2 = f.face
			}
			e0, e1 := faceEdge(adjacentFaceDir[center.face][face2], adjRes)
			inter := segmentIntersection(p0, p1, e0, e1)
			// a crossing at a vertex needs no extra point
			if !p0.almostEqual(inter) && !p1.almostEqual(inter) {
				out = append(out, hex2dToGeo(inter, center.face, adjRes, true))
			}
		}

		if vert < start+numHexVerts {
			out = append(out, hex2dToGeo(f.coord.toHex2d(), f.face, adjRes, true))
		}
		lastFace = f.face
		lastOverage = ov
	}
	return out
}

// pentBoundary traces length vertices of a pentagon starting at vertex
// start. Every Class III pentagon edge crosses an icosahedron edge.
func pentBoundary(center faceIJK, res, start, length int) Boundary {
	verts, adjRes := center.pentVertices(res)
	extra := 0
	if length == numPentVerts {
		extra = 1
	}

	out := make(Boundary, 0, maxCellBoundaryVerts)
	var last faceIJK
	for vert := start; vert < start+length+extra; vert++ {
		v := vert % numPentVerts
		f := verts[v]
		f.adjustPentVertOverage(adjRes)

		if isResClassIII(res) && vert > start {
			// move the previous vertex onto the current face's neighbor
			tmp := f
			p0 := last.coord.toHex2d()
			orient := faceNeighbors[tmp.face][adjacentFaceDir[tmp.face][last.face]]
			tmp.face = orient.face
			for range orient.ccwRot60 {
				tmp.coord = tmp.coord.rotate60ccw()
			}
			tmp.coord = tmp.coord.add(orient.translate.scale(unitScaleByCIIRes[adjRes] * 3)).normalize()
			p1 := tmp.coord.toHex2d()

			e0, e1 := faceEdge(adjacentFaceDir[tmp.face][f.face], adjRes)
			inter := segmentIntersection(p0, p1, e0, e1)
			out = append(out, hex2dToGeo(inter, tmp.face, adjRes, true))
		}

		if vert < start+numPentVerts {
			out = append(out, hex2dToGeo(f.coord.toHex2d(), f.face, adjRes, true))
		}
		last = f
	}
	return out
}

// Boundary returns the vertices of the cell, counter-clockwise. Cells that
// straddle icosahedron edges carry extra vertices where their edges cross.
func (c Cell) Boundary() Boundary {
	f := cellToFaceIJK(c)
	res := c.Resolution()
	if c.IsPentagon() {
		return pentBoundary(f, res, 0, numPentVerts)
	}
	return hexBoundary(f, res, 0, numHexVerts)
}

// CellToBoundary is the validating form of Cell.Boundary.
func CellToBoundary(c Cell) (Boundary, error) {
	if !c.IsValid() {
		return nil, cellErr("CellToBoundary", c, ErrInvalidCell)
	}
	return c.Boundary(), nil
}

// MaxFaceCount returns the largest number of icosahedron faces c can touch.
func (c Cell) MaxFaceCount() int {
	if c.IsPentagon() {
		return 5
	}
	return 2
}

// Faces returns the icosahedron faces the cell intersects, in vertex order.
func (c Cell) Faces() ([]int, error) {
	if !c.IsValid() {
		return nil, cellErr("Faces", c, ErrInvalidCell)
	}
	res := c.Resolution()
	pent := c.IsPentagon()

	// Class II pentagon vertices all sit on face edges; their center child
	// crosses the same faces.
	if pent && !isResClassIII(res) {
		child, err := c.CenterChild(res + 1)
		if err != nil {
			return nil, err
		}
		return child.Faces()
	}

	f := cellToFaceIJK(c)
	var verts []faceIJK
	var adjRes int
	if pent {
		verts, adjRes = f.pentVertices(res)
	} else {
		verts, adjRes = f.hexVertices(res)
	}

	faces := make([]int, 0, c.MaxFaceCount())
	for _, v := range verts {
		if pent {
			v.adjustPentVertOverage(adjRes)
		} else {
			v.adjustOverageClassII(adjRes, false, true)
		}
		found := false
		for _, existing := range faces {
			if existing == v.face {
				found = true
				break
			}
		}
		if !found {
			faces = append(faces, v.face)
		}
	}
	return faces, nil
}

// Vertex numbering of the edge shared with the neighbor in each direction.
var (
	directionToVertexHex  = [numDigits]int{-1, 3, 1, 2, 5, 4, 0}
	directionToVertexPent = [numDigits]int{-1, -1, 1, 2, 4, 3, 0}
)

// vertexRotations returns how far the vertex numbering of c is rotated
// relative to its base cell's home face.
func (c Cell) vertexRotations() int {
	f := cellToFaceIJK(c)
	bc := c.BaseCell()
	lead := c.leadingNonZeroDigit()
	home := baseCellData[bc].home

	rot := baseCellToCCWRot60(bc, f.face)
	if !isBaseCellPentagon(bc) {
		return rot
	}
	dirFaces := pentagonDirectionFaces[bc]
	ikFace := dirFaces[IKAxes-2]
	jkFace := dirFaces[JKAxes-2]
	if f.face != home.face && (isBaseCellPolarPentagon(bc) || f.face == ikFace) {
		rot = (rot + 1) % 6
	}
	switch {
	case lead == JKAxes && f.face == ikFace:
		rot = (rot + 5) % 6
	case lead == IKAxes && f.face == jkFace:
		rot = (rot + 1) % 6
	}
	return rot
}

// vertexForDirection returns the index of the first boundary vertex of the
// edge toward the neighbor in dir, or -1.
func (c Cell) vertexForDirection(dir Direction) int {
	pent := c.IsPentagon()
	if dir <= Center || dir >= InvalidDigit || (pent && dir == KAxes) {
		return -1
	}
	rot := c.vertexRotations()
	if pent {
		return (directionToVertexPent[dir] + numPentVerts - rot) % numPentVerts
	}
	return (directionToVertexHex[dir] + numHexVerts - rot) % numHexVerts
}
