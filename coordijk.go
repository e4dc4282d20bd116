package hexgrid

import "math"

// Direction is a digit of a cell index, naming one of the seven cells of an
// aperture-7 group by its unit vector in IJK coordinates.
type Direction int

// Digit values. KAxes is the direction deleted around pentagons.
const (
	Center       Direction = 0
	KAxes        Direction = 1
	JAxes        Direction = 2
	JKAxes       Direction = 3
	IAxes        Direction = 4
	IKAxes       Direction = 5
	IJAxes       Direction = 6
	InvalidDigit Direction = 7

	numDigits = 7
)

var direction60ccw = [8]Direction{Center, IKAxes, JKAxes, KAxes, IJAxes, IAxes, JAxes, InvalidDigit}

var direction60cw = [8]Direction{Center, JKAxes, IJAxes, JAxes, IKAxes, KAxes, IAxes, InvalidDigit}

func (d Direction) rotate60ccw() Direction { return direction60ccw[d&7] }

func (d Direction) rotate60cw() Direction { return direction60cw[d&7] }

// coordIJK is a hex position on a face in three non-negative coordinates,
// normalized so at least one component is zero.
type coordIJK struct {
	i, j, k int
}

// unitVecs holds the IJK unit vector for each digit.
var unitVecs = [numDigits]coordIJK{
	{0, 0, 0},
	{0, 0, 1},
	{0, 1, 0},
	{0, 1, 1},
	{1, 0, 0},
	{1, 0, 1},
	{1, 1, 0},
}

func (c coordIJK) add(o coordIJK) coordIJK { return coordIJK{c.i + o.i, c.j + o.j, c.k + o.k} }

func (c coordIJK) sub(o coordIJK) coordIJK { return coordIJK{c.i - o.i, c.j - o.j, c.k - o.k} }

func (c coordIJK) scale(f int) coordIJK { return coordIJK{c.i * f, c.j * f, c.k * f} }

func (c coordIJK) normalize() coordIJK {
	if c.i < 0 {
		c.j -= c.i
		c.k -= c.i
		c.i = 0
	}
	if c.j < 0 {
		c.i -= c.j
		c.k -= c.j
		c.j = 0
	}
	if c.k < 0 {
		c.i -= c.k
		c.j -= c.k
		c.k = 0
	}
	m := min(c.i, c.j, c.k)
	if m > 0 {
		c.i -= m
		c.j -= m
		c.k -= m
	}
	return c
}

func (c coordIJK) maxComponent() int { return max(c.i, c.j, c.k) }

// unitDigit returns the digit whose unit vector equals c, or InvalidDigit.
func (c coordIJK) unitDigit() Direction {
	n := c.normalize()
	for d, u := range unitVecs {
		if n == u {
			return Direction(d)
		}
	}
	return InvalidDigit
}

func (c coordIJK) neighbor(d Direction) coordIJK {
	if d > Center && d < InvalidDigit {
		return c.add(unitVecs[d]).normalize()
	}
	return c
}

// linear maps c through the basis images of the unit i, j and k vectors.
func (c coordIJK) linear(iv, jv, kv coordIJK) coordIJK {
	return iv.scale(c.i).add(jv.scale(c.j)).add(kv.scale(c.k)).normalize()
}

// down7 moves to the center child of the next finer Class III resolution.
func (c coordIJK) down7() coordIJK {
	return c.linear(coordIJK{3, 0, 1}, coordIJK{1, 3, 0}, coordIJK{0, 1, 3})
}

// down7r moves to the center child of the next finer Class II resolution.
func (c coordIJK) down7r() coordIJK {
	return c.linear(coordIJK{3, 1, 0}, coordIJK{0, 3, 1}, coordIJK{1, 0, 3})
}

// down3 and down3r move to the aperture-3 substrate used for vertices.
func (c coordIJK) down3() coordIJK {
	return c.linear(coordIJK{2, 0, 1}, coordIJK{1, 2, 0}, coordIJK{0, 1, 2})
}

func (c coordIJK) down3r() coordIJK {
	return c.linear(coordIJK{2, 1, 0}, coordIJK{0, 2, 1}, coordIJK{1, 0, 2})
}

func (c coordIJK) rotate60ccw() coordIJK {
	return c.linear(coordIJK{1, 1, 0}, coordIJK{0, 1, 1}, coordIJK{1, 0, 1})
}

func (c coordIJK) rotate60cw() coordIJK {
	return c.linear(coordIJK{1, 0, 1}, coordIJK{1, 1, 0}, coordIJK{0, 1, 1})
}

// up7 moves to the parent in a Class III grid.
func (c coordIJK) up7() coordIJK {
	i := c.i - c.k
	j := c.j - c.k
	return coordIJK{
		roundHalfAway(float64(3*i-j) / 7.0),
		roundHalfAway(float64(i+2*j) / 7.0),
		0,
	}.normalize()
}

// up7r moves to the parent in a Class II grid.
func (c coordIJK) up7r() coordIJK {
	i := c.i - c.k
	j := c.j - c.k
	return coordIJK{
		roundHalfAway(float64(2*i+j) / 7.0),
		roundHalfAway(float64(3*j-i) / 7.0),
		0,
	}.normalize()
}

func roundHalfAway(x float64) int { return int(math.Round(x)) }

// distance returns the hex distance between two positions.
func (c coordIJK) distance(o coordIJK) int {
	d := c.sub(o).normalize()
	return max(abs(d.i), abs(d.j), abs(d.k))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// CoordIJ is the two-axis form of a local hex coordinate.
type CoordIJ struct {
	I, J int
}

func (c coordIJK) toIJ() CoordIJ { return CoordIJ{I: c.i - c.k, J: c.j - c.k} }

func (c CoordIJ) toIJK() coordIJK { return coordIJK{c.I, c.J, 0}.normalize() }

// cube coordinates, used for line drawing.
func (c coordIJK) toCube() (int, int, int) {
	i := -c.i + c.k
	j := c.j - c.k
	return i, j, -i - j
}

func cubeToIJK(i, j int) coordIJK { return coordIJK{-i, j, 0}.normalize() }

// vec2 is a position in the continuous plane of a face.
type vec2 struct {
	x, y float64
}

func (v vec2) mag() float64 { return math.Hypot(v.x, v.y) }

func (c coordIJK) toHex2d() vec2 {
	i := c.i - c.k
	j := c.j - c.k
	return vec2{float64(i) - 0.5*float64(j), float64(j) * sqrt3_2}
}

// hex2dToIJK finds the hex containing a planar position.
func hex2dToIJK(v vec2) coordIJK {
	a1 := math.Abs(v.x)
	a2 := math.Abs(v.y)

	x2 := a2 / sin60
	x1 := a1 + x2/2.0

	m1 := int(x1)
	m2 := int(x2)
	r1 := x1 - float64(m1)
	r2 := x2 - float64(m2)

	var i, j int
	if r1 < 0.5 {
		if r1 < 1.0/3.0 {
			i = m1
			if r2 < (1.0+r1)/2.0 {
				j = m2
			} else {
				j = m2 + 1
			}
		} else {
			if r2 < (1.0 - r1) {
				j = m2
			} else {
				j = m2 + 1
			}
			if (1.0-r1) <= r2 && r2 < (2.0*r1) {
				i = m1 + 1
			} else {
				i = m1
			}
		}
	} else {
		if r1 < 2.0/3.0 {
			if r2 < (1.0 - r1) {
				j = m2
			} else {
				j = m2 + 1
			}
			if (2.0*r1-1.0) < r2 && r2 < (1.0-r1) {
				i = m1
			} else {
				i = m1 + 1
			}
		} else {
			i = m1 + 1
			if r2 < r1/2.0 {
				j = m2
			} else {
				j = m2 + 1
			}
		}
	}

	// fold across the axes if necessary
	if v.x < 0.0 {
		if j%2 == 0 {
			axis := j / 2
			i -= 2 * (i - axis)
		} else {
			axis := (j + 1) / 2
			i -= 2*(i-axis) + 1
		}
	}
	if v.y < 0.0 {
		i -= (2*j + 1) / 2
		j = -j
	}
	return coordIJK{i, j, 0}.normalize()
}

// segmentIntersection returns where the lines p0-p1 and p2-p3 meet. The
// parameter is computed in single precision so that vertices shared by two
// faces agree.
func segmentIntersection(p0, p1, p2, p3 vec2) vec2 {
	s1 := vec2{p1.x - p0.x, p1.y - p0.y}
	s2 := vec2{p3.x - p2.x, p3.y - p2.y}
	t := float32((s2.x*(p0.y-p2.y) - s2.y*(p0.x-p2.x)) / (-s2.x*s1.y + s1.x*s2.y))
	return vec2{p0.x + float64(t)*s1.x, p0.y + float64(t)*s1.y}
}

const float32Epsilon = 1.1920929e-07

func (v vec2) almostEqual(o vec2) bool {
	return math.Abs(v.x-o.x) < float32Epsilon && math.Abs(v.y-o.y) < float32Epsilon
}
