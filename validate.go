package hexgrid

import (
	"errors"
	"fmt"
	"io"
)

// knownCell pins the encoding of a coordinate given in degrees.
type knownCell struct {
	lat, lng float64
	res      int
	want     string
}

var knownCells = []knownCell{
	{37.3615593, -122.0553238, 5, "85283473fffffff"},
	{37.775938728915946, -122.41795063018799, 9, "8928308280fffff"},
	{-64.248, -158.284, 4, "84eb0c3ffffffff"},
}

// knownDisk pins traversal sizes around a hexagon origin.
type knownDisk struct {
	origin   string
	k        int
	diskSize int
	ringSize int
}

var knownDisks = []knownDisk{
	{"8928308280fffff", 1, 7, 6},
	{"8928308280fffff", 2, 19, 12},
	{"8928308280fffff", 10, 331, 60},
	{"82ed77fffffffff", 2, 19, 12},
}

// knownPath pins a distance and line between two cells.
type knownPath struct {
	from, to string
	distance int64
}

var knownPaths = []knownPath{
	{"89283082993ffff", "89283082827ffff", 5},
}

// ValidateGrid runs the grid against known values and structural checks and
// writes a progress line per check to w. Every failing check is reported in
// the returned error.
func ValidateGrid(w io.Writer, opts ...Option) error {
	cfg := newConfig(opts)
	log := cfg.Logger.WithOp("ValidateGrid")
	var errs []error
	check := func(name string, err error) {
		if err != nil {
			fmt.Fprintf(w, "      %s: FAILED\n", name)
			log.Warn("check failed", "check", name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			return
		}
		fmt.Fprintf(w, "      %s: OK\n", name)
	}

	check("Cell counts", validateCellCounts())
	check("Encoding", validateEncoding())
	check("Round trips", validateRoundTrips(2))
	check("Traversal", validateTraversal())
	check("Pentagons", validatePentagons())
	check("Paths", validatePaths())
	check("Edges", validateEdges())
	check("Compaction", validateCompaction())
	return errors.Join(errs...)
}

func validateCellCounts() error {
	if n := len(Res0Cells()); n != NumBaseCells {
		return fmt.Errorf("base cells = %d, want %d", n, NumBaseCells)
	}
	for res := 0; res <= 2; res++ {
		want, _ := NumCells(res)
		var got int64
		for _, bc := range Res0Cells() {
			children, err := bc.Children(res)
			if err != nil {
				return err
			}
			got += int64(len(children))
		}
		if got != want {
			return fmt.Errorf("res %d: enumerated %d cells, want %d", res, got, want)
		}
	}
	return nil
}

func validateEncoding() error {
	for _, kc := range knownCells {
		c, err := LatLngToCell(LatLngFromDegrees(kc.lat, kc.lng), kc.res)
		if err != nil {
			return err
		}
		if c.String() != kc.want {
			return fmt.Errorf("encode(%v, %v, %d) = %s, want %s", kc.lat, kc.lng, kc.res, c, kc.want)
		}
	}
	return nil
}

// validateRoundTrips checks that every cell up to maxRes encodes back from
// its own center.
func validateRoundTrips(maxRes int) error {
	for _, bc := range Res0Cells() {
		for res := 0; res <= maxRes; res++ {
			children, err := bc.Children(res)
			if err != nil {
				return err
			}
			for _, c := range children {
				got, err := LatLngToCell(c.LatLng(), res)
				if err != nil {
					return err
				}
				if got != c {
					return fmt.Errorf("center of %s encodes to %s", c, got)
				}
			}
		}
	}
	return nil
}

func validateTraversal() error {
	for _, kd := range knownDisks {
		origin, err := ParseCell(kd.origin)
		if err != nil {
			return err
		}
		disk, err := GridDisk(origin, kd.k, DiskChecked)
		if err != nil {
			return err
		}
		if len(disk) != kd.diskSize {
			return fmt.Errorf("disk(%s, %d) has %d cells, want %d", origin, kd.k, len(disk), kd.diskSize)
		}
		ring, err := GridRing(origin, kd.k)
		if err != nil {
			return err
		}
		if len(ring) != kd.ringSize {
			return fmt.Errorf("ring(%s, %d) has %d cells, want %d", origin, kd.k, len(ring), kd.ringSize)
		}
	}
	return nil
}

func validatePentagons() error {
	for res := 0; res <= 2; res++ {
		pents, err := Pentagons(res)
		if err != nil {
			return err
		}
		for _, p := range pents {
			if !p.IsPentagon() {
				return fmt.Errorf("%s is not a pentagon", p)
			}
			if _, err := GridDisk(p, 1, DiskChecked); !errors.Is(err, ErrPentagonDistortion) {
				return fmt.Errorf("checked disk around %s: got %v, want pentagon distortion", p, err)
			}
			disk, err := GridDisk(p, 1, DiskUnchecked)
			if err != nil {
				return err
			}
			if len(disk) != 6 {
				return fmt.Errorf("unchecked disk around %s has %d cells, want 6", p, len(disk))
			}
		}
	}
	return nil
}

func validatePaths() error {
	for _, kp := range knownPaths {
		from, err := ParseCell(kp.from)
		if err != nil {
			return err
		}
		to, err := ParseCell(kp.to)
		if err != nil {
			return err
		}
		d, err := GridDistance(from, to)
		if err != nil {
			return err
		}
		if d != kp.distance {
			return fmt.Errorf("distance(%s, %s) = %d, want %d", from, to, d, kp.distance)
		}
		path, err := GridPath(from, to)
		if err != nil {
			return err
		}
		if int64(len(path)) != kp.distance+1 {
			return fmt.Errorf("path(%s, %s) has %d cells, want %d", from, to, len(path), kp.distance+1)
		}
		for i := 1; i < len(path); i++ {
			ok, err := AreNeighborCells(path[i-1], path[i])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("path step %d: %s and %s are not neighbors", i, path[i-1], path[i])
			}
		}
	}
	return nil
}

func validateEdges() error {
	for _, bc := range Res0Cells() {
		edges, err := bc.DirectedEdges()
		if err != nil {
			return err
		}
		for _, e := range edges {
			o, d, err := e.Cells()
			if err != nil {
				return fmt.Errorf("edge %s: %w", e, err)
			}
			back, err := CellsToDirectedEdge(o, d)
			if err != nil {
				return err
			}
			if back != e {
				return fmt.Errorf("edge %s round trips to %s", e, back)
			}
		}
	}
	return nil
}

func validateCompaction() error {
	for _, bc := range Res0Cells() {
		children, err := bc.Children(2)
		if err != nil {
			return err
		}
		compacted, err := CompactCells(children)
		if err != nil {
			return err
		}
		if len(compacted) != 1 || compacted[0] != bc {
			return fmt.Errorf("children of %s compact to %v", bc, compacted)
		}
	}
	return nil
}
