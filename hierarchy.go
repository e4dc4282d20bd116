package hexgrid

// Parent returns the ancestor of c at res.
func (c Cell) Parent(res int) (Cell, error) {
	own := c.Resolution()
	if res < 0 || res > own {
		return InvalidCell, resolutionErr("Parent", res)
	}
	if res == own {
		return c, nil
	}
	p := c.withResolution(res)
	for r := res + 1; r <= own; r++ {
		p = p.withDigit(r, InvalidDigit)
	}
	return p, nil
}

// Children returns every descendant of c at res in digit order. Pentagon
// lineages skip the deleted K digit, so a pentagon has six children.
func (c Cell) Children(res int) ([]Cell, error) {
	own := c.Resolution()
	if res < own || res > MaxResolution {
		return nil, resolutionErr("Children", res)
	}
	if !c.IsValid() {
		return nil, cellErr("Children", c, ErrInvalidCell)
	}

	out := []Cell{c}
	for r := own + 1; r <= res; r++ {
		next := make([]Cell, 0, len(out)*numDigits)
		for _, p := range out {
			pent := p.IsPentagon()
			base := p.withResolution(r)
			for d := Center; d < InvalidDigit; d++ {
				if pent && d == KAxes {
					continue
				}
				next = append(next, base.withDigit(r, d))
			}
		}
		out = next
	}
	return out, nil
}

// CenterChild returns the child of c at res sharing its center.
func (c Cell) CenterChild(res int) (Cell, error) {
	own := c.Resolution()
	if res < own || res > MaxResolution {
		return InvalidCell, resolutionErr("CenterChild", res)
	}
	child := c.withResolution(res)
	for r := own + 1; r <= res; r++ {
		child = child.withDigit(r, Center)
	}
	return child, nil
}

// MaxChildrenCount returns an upper bound on len(c.Children(res)).
func (c Cell) MaxChildrenCount(res int) (int64, error) {
	own := c.Resolution()
	if res < own || res > MaxResolution {
		return 0, resolutionErr("MaxChildrenCount", res)
	}
	return ipow7(res - own), nil
}

// childrenCount returns the exact number of descendants of c at res.
func (c Cell) childrenCount(res int) int64 {
	n := ipow7(res - c.Resolution())
	if c.IsPentagon() {
		// one center pentagon plus five hexagon lineages per level
		return 1 + 5*(n-1)/6
	}
	return n
}
