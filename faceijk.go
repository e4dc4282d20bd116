package hexgrid

import (
	"math"

	"github.com/golang/geo/r3"
)

const (
	numIcosaFaces = 20

	sqrt3_2          = 0.8660254037844386467637231707529361834714
	sin60            = sqrt3_2
	sqrt7            = 2.6457513110645905905016157536392604257102
	rsqrt7           = 0.37796447300922722721451653623418006081576
	ap7RotRads       = 0.333473172251832115336090755351601070065900389
	res0UGnomonic    = 0.38196601125010500003
	invRes0UGnomonic = 2.61803398874989588417
	epsilon          = 0.0000000000000001
)

// Quadrants of a face, used to pick the neighboring face on overage.
const (
	quadCenter = 0
	quadIJ     = 1
	quadKI     = 2
	quadJK     = 3
)

// faceIJK is a hex position on a specific icosahedron face.
type faceIJK struct {
	face  int
	coord coordIJK
}

// faceOrient describes how to move a position into a neighboring face.
type faceOrient struct {
	face      int
	translate coordIJK
	ccwRot60  int
}

// maxDimByCIIRes is the largest i+j+k sum still on the face at each Class
// II resolution; odd entries are unused.
var maxDimByCIIRes = [...]int{2, -1, 14, -1, 98, -1, 686, -1, 4802, -1, 33614, -1, 235298, -1, 1647086, -1, 11529602}

// unitScaleByCIIRes is the face translation scale at each Class II resolution.
var unitScaleByCIIRes = [...]int{1, -1, 7, -1, 49, -1, 343, -1, 2401, -1, 16807, -1, 117649, -1, 823543, -1, 5764801}

type overage int

const (
	noOverage overage = iota
	faceEdgeOverage
	newFaceOverage
)

// closestFace returns the face whose center is nearest to ll and the squared
// euclidean distance to it.
func closestFace(ll LatLng) (int, float64) {
	v := ll.vec3()
	face, best := 0, 5.0
	for f := range numIcosaFaces {
		if d := faceCenterPoint[f].Sub(v).Norm2(); d < best {
			face, best = f, d
		}
	}
	return face, best
}

// geoToHex2d projects ll onto the plane of its closest face at res.
func geoToHex2d(ll LatLng, res int) (int, vec2) {
	face, sqd := closestFace(ll)
	r := math.Acos(clamp(1-sqd/2, -1, 1))
	if r < epsilon {
		return face, vec2{}
	}
	theta := posAngle(faceAxisAzimuth[face] - posAngle(azimuth(faceCenterGeo[face], ll)))
	if isResClassIII(res) {
		theta = posAngle(theta - ap7RotRads)
	}
	r = math.Tan(r) * invRes0UGnomonic
	for range res {
		r *= sqrt7
	}
	return face, vec2{r * math.Cos(theta), r * math.Sin(theta)}
}

// hex2dToGeo is the inverse gnomonic projection of a face-plane position.
// Substrate positions live on the aperture-3 vertex grid.
func hex2dToGeo(v vec2, face, res int, substrate bool) LatLng {
	r := v.mag()
	if r < epsilon {
		return faceCenterGeo[face]
	}
	theta := math.Atan2(v.y, v.x)
	for range res {
		r *= rsqrt7
	}
	if substrate {
		r /= 3.0
		if isResClassIII(res) {
			r *= rsqrt7
		}
	}
	r = math.Atan(r * res0UGnomonic)
	if !substrate && isResClassIII(res) {
		theta = posAngle(theta + ap7RotRads)
	}
	theta = posAngle(faceAxisAzimuth[face] - theta)
	return azDistance(faceCenterGeo[face], theta, r)
}

func geoToFaceIJK(ll LatLng, res int) faceIJK {
	face, v := geoToHex2d(ll, res)
	return faceIJK{face: face, coord: hex2dToIJK(v)}
}

func (f faceIJK) toGeo(res int) LatLng {
	return hex2dToGeo(f.coord.toHex2d(), f.face, res, false)
}

// adjustOverageClassII moves a Class II position that fell off its face onto
// the adjacent face. pentLeading4 applies the extra rotation for pentagon
// cells with a leading I digit; substrate positions are scaled by three.
func (f *faceIJK) adjustOverageClassII(res int, pentLeading4, substrate bool) overage {
	maxDim := maxDimByCIIRes[res]
	if substrate {
		maxDim *= 3
	}
	sum := f.coord.i + f.coord.j + f.coord.k
	if substrate && sum == maxDim {
		return faceEdgeOverage
	}
	if sum <= maxDim {
		return noOverage
	}

	var orient faceOrient
	if f.coord.k > 0 {
		if f.coord.j > 0 {
			orient = faceNeighbors[f.face][quadJK]
		} else {
			orient = faceNeighbors[f.face][quadKI]
			if pentLeading4 {
				// rotate out of the deleted K subsequence
				origin := coordIJK{maxDim, 0, 0}
				f.coord = f.coord.sub(origin).rotate60cw().add(origin)
			}
		}
	} else {
		orient = faceNeighbors[f.face][quadIJ]
	}

	f.face = orient.face
	for range orient.ccwRot60 {
		f.coord = f.coord.rotate60ccw()
	}
	unitScale := unitScaleByCIIRes[res]
	if substrate {
		unitScale *= 3
	}
	f.coord = f.coord.add(orient.translate.scale(unitScale)).normalize()

	if substrate && f.coord.i+f.coord.j+f.coord.k == maxDim {
		return faceEdgeOverage
	}
	return newFaceOverage
}

// adjustPentVertOverage repeats the overage adjustment for pentagon vertices,
// which may cross more than one face.
func (f *faceIJK) adjustPentVertOverage(res int) overage {
	for {
		ov := f.adjustOverageClassII(res, false, true)
		if ov != newFaceOverage {
			return ov
		}
	}
}

// faceIJKToCell encodes a face position at res. It returns InvalidCell for
// positions outside the base cell grid.
func faceIJKToCell(f faceIJK, res int) Cell {
	c := cellInit.withMode(modeCell).withResolution(res)

	if res == 0 {
		if f.coord.maxComponent() > 2 {
			return InvalidCell
		}
		return c.withBaseCell(faceIJKToBaseCell(f))
	}

	// walk up to resolution 0, recording a digit at each step
	ijk := f.coord
	for r := res - 1; r >= 0; r-- {
		last := ijk
		var lastCenter coordIJK
		if isResClassIII(r + 1) {
			ijk = ijk.up7()
			lastCenter = ijk.down7()
		} else {
			ijk = ijk.up7r()
			lastCenter = ijk.down7r()
		}
		c = c.withDigit(r+1, last.sub(lastCenter).unitDigit())
	}

	if ijk.maxComponent() > 2 {
		return InvalidCell
	}

	fbc := faceIJK{face: f.face, coord: ijk}
	bc := faceIJKToBaseCell(fbc)
	c = c.withBaseCell(bc)

	numRots := faceIJKToBaseCellCCWRot60(fbc)
	if isBaseCellPentagon(bc) {
		if c.leadingNonZeroDigit() == KAxes {
			if baseCellIsCWOffset(bc, fbc.face) {
				c = c.rotate60cw()
			} else {
				c = c.rotate60ccw()
			}
		}
		for range numRots {
			c = c.rotatePent60ccw()
		}
	} else {
		for range numRots {
			c = c.rotate60ccw()
		}
	}
	return c
}

// cellToFaceIJK decodes a cell into a position on one of the faces it
// touches, normalized onto the face that holds its center.
func cellToFaceIJK(c Cell) faceIJK {
	bc := c.BaseCell()
	if bc < 0 || bc >= NumBaseCells {
		return faceIJK{}
	}
	// a pentagon cell with a leading IK digit needs to be rotated out of the
	// deleted K subsequence
	if isBaseCellPentagon(bc) && c.leadingNonZeroDigit() == IKAxes {
		c = c.rotate60cw()
	}

	f := baseCellData[bc].home
	res := c.Resolution()
	possibleOverage := isBaseCellPentagon(bc) || (res != 0 && f.coord != (coordIJK{}))

	for r := 1; r <= res; r++ {
		if isResClassIII(r) {
			f.coord = f.coord.down7()
		} else {
			f.coord = f.coord.down7r()
		}
		f.coord = f.coord.neighbor(c.digit(r))
	}
	if !possibleOverage {
		return f
	}

	orig := f.coord
	adjRes := res
	if isResClassIII(res) {
		// work in the Class II grid one resolution finer
		f.coord = f.coord.down7r()
		adjRes++
	}

	pentLeading4 := isBaseCellPentagon(bc) && c.leadingNonZeroDigit() == IAxes
	if f.adjustOverageClassII(adjRes, pentLeading4, false) != noOverage {
		if isBaseCellPentagon(bc) {
			for f.adjustOverageClassII(adjRes, false, false) != noOverage {
			}
		}
		if adjRes != res {
			f.coord = f.coord.up7r()
		}
	} else if adjRes != res {
		f.coord = orig
	}
	return f
}

// LatLngToCell returns the cell containing ll at res.
func LatLngToCell(ll LatLng, res int) (Cell, error) {
	if res < 0 || res > MaxResolution {
		return InvalidCell, resolutionErr("LatLngToCell", res)
	}
	if !ll.IsFinite() {
		return InvalidCell, ErrInvalidLatLng
	}
	c := faceIJKToCell(geoToFaceIJK(ll, res), res)
	if c == InvalidCell {
		return InvalidCell, ErrInvalidLatLng
	}
	return c, nil
}

// LatLng returns the center of the cell. The result for an invalid cell is
// unspecified; use CellToLatLng to validate.
func (c Cell) LatLng() LatLng {
	return cellToFaceIJK(c).toGeo(c.Resolution())
}

// CellToLatLng returns the center of a valid cell.
func CellToLatLng(c Cell) (LatLng, error) {
	if !c.IsValid() {
		return LatLng{}, cellErr("CellToLatLng", c, ErrInvalidCell)
	}
	return c.LatLng(), nil
}

// faceCenterGeo holds the icosahedron face centers.
var faceCenterGeo = [numIcosaFaces]LatLng{
	{0.803582649718989942, 1.248397419617396099},   // face 0
	{1.307747883455638156, 2.536945009877921159},   // face 1
	{1.054751253523952054, -1.347517358900396623},  // face 2
	{0.600191595538186799, -0.450603909469755746},  // face 3
	{0.491715428198773866, 0.401988202911306943},   // face 4
	{0.172745327415618701, 1.678146885280433686},   // face 5
	{0.605929321571350690, 2.953923329812411617},   // face 6
	{0.427370518328979641, -1.888876200336285401},  // face 7
	{-0.079066118549212831, -0.733429513380867741}, // face 8
	{-0.230961644455383637, 0.506495587332349035},  // face 9
	{0.079066118549212831, 2.408163140208925497},   // face 10
	{0.230961644455383637, -2.635097066257444203},  // face 11
	{-0.172745327415618701, -1.463445768309359553}, // face 12
	{-0.605929321571350690, -0.187669323777381622}, // face 13
	{-0.427370518328979641, 1.252716453253507838},  // face 14
	{-0.600191595538186799, 2.690988744120037492},  // face 15
	{-0.491715428198773866, -2.739604450678486295}, // face 16
	{-0.803582649718989942, -1.893195233972397139}, // face 17
	{-1.307747883455638156, -0.604647643711872080}, // face 18
	{-1.054751253523952054, 1.794075294689396615},  // face 19
}

// faceCenterPoint holds the face centers as unit vectors.
var faceCenterPoint = [numIcosaFaces]r3.Vector{
	{X: 0.21993077914046064, Y: 0.6583691780274996, Z: 0.7198475378926182},    // face 0
	{X: -0.21392348345014206, Y: 0.14781718295507032, Z: 0.9656017935214205},  // face 1
	{X: 0.10926252787847968, Y: -0.48119515728732093, Z: 0.8697775121287253},  // face 2
	{X: 0.7428567301586791, Y: -0.35939416782780276, Z: 0.5648005936517033},   // face 3
	{X: 0.8112534709140969, Y: 0.3448953237639384, Z: 0.472138773641393},      // face 4
	{X: -0.10554981496139205, Y: 0.9794457296411413, Z: 0.17188746100093655},  // face 5
	{X: -0.8075407579970092, Y: 0.15335524858988187, Z: 0.5695261994882688},   // face 6
	{X: -0.28461480697879066, Y: -0.8644080972654206, Z: 0.41447925524735385}, // face 7
	{X: 0.7405621473854481, Y: -0.6673299564565524, Z: -0.0789837646326737},   // face 8
	{X: 0.8512303986474293, Y: 0.4722343788582681, Z: -0.22891373886878078},   // face 9
	{X: -0.7405621473854481, Y: 0.6673299564565525, Z: 0.0789837646326737},    // face 10
	{X: -0.8512303986474292, Y: -0.47223437885826824, Z: 0.22891373886878078}, // face 11
	{X: 0.10554981496139196, Y: -0.9794457296411413, Z: -0.17188746100093655}, // face 12
	{X: 0.8075407579970092, Y: -0.15335524858988192, Z: -0.5695261994882688},  // face 13
	{X: 0.28461480697879077, Y: 0.8644080972654204, Z: -0.41447925524735385},  // face 14
	{X: -0.7428567301586791, Y: 0.3593941678278027, Z: -0.5648005936517033},   // face 15
	{X: -0.811253470914097, Y: -0.3448953237639383, Z: -0.472138773641393},    // face 16
	{X: -0.2199307791404607, Y: -0.6583691780274996, Z: -0.7198475378926182},  // face 17
	{X: 0.21392348345014203, Y: -0.14781718295507038, Z: -0.9656017935214205}, // face 18
	{X: -0.10926252787847962, Y: 0.48119515728732093, Z: -0.8697775121287253}, // face 19
}

// faceAxisAzimuth holds, per face, the azimuth of the Class II i-axis.
var faceAxisAzimuth = [numIcosaFaces]float64{
	5.619958268523939882, 5.760339081714187279, 0.780213654393430055, 0.430469363979999913,
	6.130269123335111400, 2.692877706530642877, 2.982963003477243874, 3.532912002790141181,
	3.494305004259568154, 3.003214169499538391, 5.930472956509811562, 0.138378484090254847,
	0.448714947059150361, 0.158629650112549365, 5.891865957979238535, 2.711123289609793325,
	3.294508837434268316, 3.804819692245439833, 3.664438879055192436, 2.361378999196363184,
}

// faceNeighbors gives, per face and quadrant, the face across the edge
// with the translation and rotation into its frame.
var faceNeighbors = [numIcosaFaces][4]faceOrient{
	{{0, coordIJK{0, 0, 0}, 0}, {4, coordIJK{2, 0, 2}, 1}, {1, coordIJK{2, 2, 0}, 5}, {5, coordIJK{0, 2, 2}, 3}},     // face 0
	{{1, coordIJK{0, 0, 0}, 0}, {0, coordIJK{2, 0, 2}, 1}, {2, coordIJK{2, 2, 0}, 5}, {6, coordIJK{0, 2, 2}, 3}},     // face 1
	{{2, coordIJK{0, 0, 0}, 0}, {1, coordIJK{2, 0, 2}, 1}, {3, coordIJK{2, 2, 0}, 5}, {7, coordIJK{0, 2, 2}, 3}},     // face 2
	{{3, coordIJK{0, 0, 0}, 0}, {2, coordIJK{2, 0, 2}, 1}, {4, coordIJK{2, 2, 0}, 5}, {8, coordIJK{0, 2, 2}, 3}},     // face 3
	{{4, coordIJK{0, 0, 0}, 0}, {3, coordIJK{2, 0, 2}, 1}, {0, coordIJK{2, 2, 0}, 5}, {9, coordIJK{0, 2, 2}, 3}},     // face 4
	{{5, coordIJK{0, 0, 0}, 0}, {10, coordIJK{2, 2, 0}, 3}, {14, coordIJK{2, 0, 2}, 3}, {0, coordIJK{0, 2, 2}, 3}},   // face 5
	{{6, coordIJK{0, 0, 0}, 0}, {11, coordIJK{2, 2, 0}, 3}, {10, coordIJK{2, 0, 2}, 3}, {1, coordIJK{0, 2, 2}, 3}},   // face 6
	{{7, coordIJK{0, 0, 0}, 0}, {12, coordIJK{2, 2, 0}, 3}, {11, coordIJK{2, 0, 2}, 3}, {2, coordIJK{0, 2, 2}, 3}},   // face 7
	{{8, coordIJK{0, 0, 0}, 0}, {13, coordIJK{2, 2, 0}, 3}, {12, coordIJK{2, 0, 2}, 3}, {3, coordIJK{0, 2, 2}, 3}},   // face 8
	{{9, coordIJK{0, 0, 0}, 0}, {14, coordIJK{2, 2, 0}, 3}, {13, coordIJK{2, 0, 2}, 3}, {4, coordIJK{0, 2, 2}, 3}},   // face 9
	{{10, coordIJK{0, 0, 0}, 0}, {5, coordIJK{2, 2, 0}, 3}, {6, coordIJK{2, 0, 2}, 3}, {15, coordIJK{0, 2, 2}, 3}},   // face 10
	{{11, coordIJK{0, 0, 0}, 0}, {6, coordIJK{2, 2, 0}, 3}, {7, coordIJK{2, 0, 2}, 3}, {16, coordIJK{0, 2, 2}, 3}},   // face 11
	{{12, coordIJK{0, 0, 0}, 0}, {7, coordIJK{2, 2, 0}, 3}, {8, coordIJK{2, 0, 2}, 3}, {17, coordIJK{0, 2, 2}, 3}},   // face 12
	{{13, coordIJK{0, 0, 0}, 0}, {8, coordIJK{2, 2, 0}, 3}, {9, coordIJK{2, 0, 2}, 3}, {18, coordIJK{0, 2, 2}, 3}},   // face 13
	{{14, coordIJK{0, 0, 0}, 0}, {9, coordIJK{2, 2, 0}, 3}, {5, coordIJK{2, 0, 2}, 3}, {19, coordIJK{0, 2, 2}, 3}},   // face 14
	{{15, coordIJK{0, 0, 0}, 0}, {16, coordIJK{2, 0, 2}, 1}, {19, coordIJK{2, 2, 0}, 5}, {10, coordIJK{0, 2, 2}, 3}}, // face 15
	{{16, coordIJK{0, 0, 0}, 0}, {17, coordIJK{2, 0, 2}, 1}, {15, coordIJK{2, 2, 0}, 5}, {11, coordIJK{0, 2, 2}, 3}}, // face 16
	{{17, coordIJK{0, 0, 0}, 0}, {18, coordIJK{2, 0, 2}, 1}, {16, coordIJK{2, 2, 0}, 5}, {12, coordIJK{0, 2, 2}, 3}}, // face 17
	{{18, coordIJK{0, 0, 0}, 0}, {19, coordIJK{2, 0, 2}, 1}, {17, coordIJK{2, 2, 0}, 5}, {13, coordIJK{0, 2, 2}, 3}}, // face 18
	{{19, coordIJK{0, 0, 0}, 0}, {15, coordIJK{2, 0, 2}, 1}, {18, coordIJK{2, 2, 0}, 5}, {14, coordIJK{0, 2, 2}, 3}}, // face 19
}

// adjacentFaceDir gives the quadrant of face a that borders face b, or -1.
var adjacentFaceDir = [numIcosaFaces][numIcosaFaces]int{
	{0, 2, -1, -1, 1, 3, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}, // face 0
	{1, 0, 2, -1, -1, -1, 3, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}, // face 1
	{-1, 1, 0, 2, -1, -1, -1, 3, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}, // face 2
	{-1, -1, 1, 0, 2, -1, -1, -1, 3, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}, // face 3
	{2, -1, -1, 1, 0, -1, -1, -1, -1, 3, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}, // face 4
	{3, -1, -1, -1, -1, 0, -1, -1, -1, -1, 1, -1, -1, -1, 2, -1, -1, -1, -1, -1}, // face 5
	{-1, 3, -1, -1, -1, -1, 0, -1, -1, -1, 2, 1, -1, -1, -1, -1, -1, -1, -1, -1}, // face 6
	{-1, -1, 3, -1, -1, -1, -1, 0, -1, -1, -1, 2, 1, -1, -1, -1, -1, -1, -1, -1}, // face 7
	{-1, -1, -1, 3, -1, -1, -1, -1, 0, -1, -1, -1, 2, 1, -1, -1, -1, -1, -1, -1}, // face 8
	{-1, -1, -1, -1, 3, -1, -1, -1, -1, 0, -1, -1, -1, 2, 1, -1, -1, -1, -1, -1}, // face 9
	{-1, -1, -1, -1, -1, 1, 2, -1, -1, -1, 0, -1, -1, -1, -1, 3, -1, -1, -1, -1}, // face 10
	{-1, -1, -1, -1, -1, -1, 1, 2, -1, -1, -1, 0, -1, -1, -1, -1, 3, -1, -1, -1}, // face 11
	{-1, -1, -1, -1, -1, -1, -1, 1, 2, -1, -1, -1, 0, -1, -1, -1, -1, 3, -1, -1}, // face 12
	{-1, -1, -1, -1, -1, -1, -1, -1, 1, 2, -1, -1, -1, 0, -1, -1, -1, -1, 3, -1}, // face 13
	{-1, -1, -1, -1, -1, 2, -1, -1, -1, 1, -1, -1, -1, -1, 0, -1, -1, -1, -1, 3}, // face 14
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 3, -1, -1, -1, -1, 0, 1, -1, -1, 2}, // face 15
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 3, -1, -1, -1, 2, 0, 1, -1, -1}, // face 16
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 3, -1, -1, -1, 2, 0, 1, -1}, // face 17
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 3, -1, -1, -1, 2, 0, 1}, // face 18
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 3, 1, -1, -1, 2, 0}, // face 19
}
