package hexgrid

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// CompactCells replaces every complete group of siblings with their parent,
// repeating up the hierarchy until no complete group remains. A pentagon
// parent is complete with its six existing children.
//
// The input must be duplicate free and of one resolution. The output order
// follows the first appearance of each surviving cell.
func CompactCells(cells []Cell) ([]Cell, error) {
	if len(cells) == 0 {
		return nil, nil
	}
	res := cells[0].Resolution()
	seen := roaring64.New()
	for _, c := range cells {
		if !c.IsValid() {
			return nil, cellErr("CompactCells", c, ErrInvalidCell)
		}
		if c.Resolution() != res {
			return nil, ErrMixedResolution
		}
		if !seen.CheckedAdd(uint64(c)) {
			return nil, cellErr("CompactCells", c, ErrDuplicateInput)
		}
	}

	out := make([]Cell, 0, len(cells))
	cur := cells
	for r := res; r > 0; r-- {
		counts := make(map[Cell]int, len(cur)/numDigits+1)
		parents := make([]Cell, 0, len(cur)/numDigits+1)
		for _, c := range cur {
			p, _ := c.Parent(r - 1)
			if counts[p] == 0 {
				parents = append(parents, p)
			}
			counts[p]++
		}

		var next []Cell
		complete := make(map[Cell]bool, len(parents))
		for _, p := range parents {
			want := numDigits
			if p.IsPentagon() {
				want--
			}
			if counts[p] == want {
				complete[p] = true
				next = append(next, p)
			}
		}
		for _, c := range cur {
			p, _ := c.Parent(r - 1)
			if !complete[p] {
				out = append(out, c)
			}
		}
		if len(next) == 0 {
			return out, nil
		}
		cur = next
	}
	return append(out, cur...), nil
}

// UncompactCells expands every cell to its descendants at res. Cells already
// at res pass through.
func UncompactCells(cells []Cell, res int) ([]Cell, error) {
	n, err := MaxUncompactSize(cells, res)
	if err != nil {
		return nil, err
	}
	out := make([]Cell, 0, n)
	for _, c := range cells {
		children, err := c.Children(res)
		if err != nil {
			return nil, err
		}
		out = append(out, children...)
	}
	return out, nil
}

// MaxUncompactSize returns the number of cells UncompactCells(cells, res)
// would produce.
func MaxUncompactSize(cells []Cell, res int) (int64, error) {
	if res < 0 || res > MaxResolution {
		return 0, resolutionErr("MaxUncompactSize", res)
	}
	var n int64
	for _, c := range cells {
		if !c.IsValid() {
			return 0, cellErr("MaxUncompactSize", c, ErrInvalidCell)
		}
		if c.Resolution() > res {
			return 0, resolutionErr("UncompactCells", res)
		}
		n += c.childrenCount(res)
	}
	return n, nil
}
