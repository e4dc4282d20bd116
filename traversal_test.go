package hexgrid

import (
	"errors"
	"slices"
	"testing"
)

func parseCells(t *testing.T, ss ...string) []Cell {
	t.Helper()
	out := make([]Cell, len(ss))
	for i, s := range ss {
		c, err := ParseCell(s)
		if err != nil {
			t.Fatalf("ParseCell(%q): %v", s, err)
		}
		out[i] = c
	}
	return out
}

func TestTraversal(t *testing.T) {
	origin := parseCells(t, "8928308280fffff")[0]
	pentagon := parseCells(t, "821c07fffffffff")[0]

	// ──────────────────────────────────────────────
	// Disks around a hexagon
	// ──────────────────────────────────────────────

	t.Run("DiskOrder", func(t *testing.T) {
		want := parseCells(t,
			"8928308280fffff", "8928308280bffff", "89283082873ffff", "89283082877ffff",
			"8928308283bffff", "89283082807ffff", "89283082803ffff")
		got, err := GridDisk(origin, 1, DiskChecked)
		if err != nil {
			t.Fatalf("GridDisk: %v", err)
		}
		if !slices.Equal(got, want) {
			t.Errorf("GridDisk(k=1) = %v, want %v", got, want)
		}
	})

	t.Run("DiskSizes", func(t *testing.T) {
		for _, tt := range knownDisks {
			c := parseCells(t, tt.origin)[0]
			for _, mode := range []DiskMode{DiskChecked, DiskUnchecked} {
				got, err := GridDisk(c, tt.k, mode)
				if err != nil {
					t.Fatalf("GridDisk(%s, %d, %s): %v", tt.origin, tt.k, mode, err)
				}
				if len(got) != tt.diskSize {
					t.Errorf("GridDisk(%s, %d, %s) has %d cells, want %d", tt.origin, tt.k, mode, len(got), tt.diskSize)
				}
				if NewCellSet(got...).Len() != len(got) {
					t.Errorf("GridDisk(%s, %d, %s) contains duplicates", tt.origin, tt.k, mode)
				}
			}
			maxSize, _ := MaxGridDiskSize(tt.k)
			if int64(tt.diskSize) != maxSize {
				t.Errorf("MaxGridDiskSize(%d) = %d, want %d", tt.k, maxSize, tt.diskSize)
			}
		}
	})

	t.Run("DiskDistances", func(t *testing.T) {
		rings, err := GridDiskDistances(origin, 3, DiskChecked)
		if err != nil {
			t.Fatalf("GridDiskDistances: %v", err)
		}
		if len(rings) != 4 {
			t.Fatalf("got %d rings, want 4", len(rings))
		}
		for d, ring := range rings {
			for _, c := range ring {
				dist, err := GridDistance(origin, c)
				if err != nil {
					t.Fatalf("GridDistance(%s, %s): %v", origin, c, err)
				}
				if dist != int64(d) {
					t.Errorf("cell %s in ring %d has distance %d", c, d, dist)
				}
			}
		}
	})

	t.Run("DiskZero", func(t *testing.T) {
		got, err := GridDisk(origin, 0, DiskChecked)
		if err != nil || !slices.Equal(got, []Cell{origin}) {
			t.Errorf("GridDisk(k=0) = %v, %v", got, err)
		}
	})

	t.Run("NegativeK", func(t *testing.T) {
		if _, err := GridDisk(origin, -1, DiskChecked); !errors.Is(err, ErrInvalidK) {
			t.Errorf("GridDisk(k=-1) error = %v, want ErrInvalidK", err)
		}
		if _, err := GridRing(origin, -1); !errors.Is(err, ErrInvalidK) {
			t.Errorf("GridRing(k=-1) error = %v, want ErrInvalidK", err)
		}
		if _, err := MaxGridDiskSize(-1); !errors.Is(err, ErrInvalidK) {
			t.Errorf("MaxGridDiskSize(-1) error = %v, want ErrInvalidK", err)
		}
	})

	// ──────────────────────────────────────────────
	// Rings
	// ──────────────────────────────────────────────

	t.Run("RingOrder", func(t *testing.T) {
		want := parseCells(t,
			"89283082803ffff", "8928308280bffff", "89283082873ffff",
			"89283082877ffff", "8928308283bffff", "89283082807ffff")
		got, err := GridRing(origin, 1)
		if err != nil {
			t.Fatalf("GridRing: %v", err)
		}
		if !slices.Equal(got, want) {
			t.Errorf("GridRing(k=1) = %v, want %v", got, want)
		}
	})

	t.Run("RingSizes", func(t *testing.T) {
		for _, tt := range knownDisks {
			c := parseCells(t, tt.origin)[0]
			got, err := GridRing(c, tt.k)
			if err != nil {
				t.Fatalf("GridRing(%s, %d): %v", tt.origin, tt.k, err)
			}
			if len(got) != tt.ringSize {
				t.Errorf("GridRing(%s, %d) has %d cells, want %d", tt.origin, tt.k, len(got), tt.ringSize)
			}
			unchecked, err := GridRingUnchecked(c, tt.k)
			if err != nil {
				t.Fatalf("GridRingUnchecked(%s, %d): %v", tt.origin, tt.k, err)
			}
			if NewCellSet(unchecked...).Len() != tt.ringSize {
				t.Errorf("GridRingUnchecked(%s, %d) has %d cells, want %d", tt.origin, tt.k, len(unchecked), tt.ringSize)
			}
		}
	})

	// ──────────────────────────────────────────────
	// Pentagons
	// ──────────────────────────────────────────────

	t.Run("PentagonChecked", func(t *testing.T) {
		if _, err := GridDisk(pentagon, 1, DiskChecked); !errors.Is(err, ErrPentagonDistortion) {
			t.Errorf("GridDisk(pentagon) error = %v, want ErrPentagonDistortion", err)
		}
		if _, err := GridRing(pentagon, 1); !errors.Is(err, ErrPentagonDistortion) {
			t.Errorf("GridRing(pentagon) error = %v, want ErrPentagonDistortion", err)
		}
	})

	t.Run("PentagonUnchecked", func(t *testing.T) {
		disk, err := GridDisk(pentagon, 1, DiskUnchecked)
		if err != nil {
			t.Fatalf("GridDisk(pentagon, unchecked): %v", err)
		}
		if len(disk) != 6 || disk[0] != pentagon {
			t.Errorf("GridDisk(pentagon, unchecked) = %v, want pentagon plus five neighbors", disk)
		}
		ring, err := GridRingUnchecked(pentagon, 1)
		if err != nil {
			t.Fatalf("GridRingUnchecked(pentagon): %v", err)
		}
		if len(ring) != 5 {
			t.Errorf("GridRingUnchecked(pentagon) has %d cells, want 5", len(ring))
		}

		disk2, err := GridDisk(pentagon, 2, DiskUnchecked)
		if err != nil {
			t.Fatalf("GridDisk(pentagon, k=2): %v", err)
		}
		if len(disk2) != 16 {
			t.Errorf("GridDisk(pentagon, k=2) has %d cells, want 16", len(disk2))
		}
	})

	t.Run("PentagonNeighbors", func(t *testing.T) {
		if _, err := Neighbor(pentagon, KAxes); !errors.Is(err, ErrPentagonDistortion) {
			t.Errorf("Neighbor(pentagon, K) error = %v, want ErrPentagonDistortion", err)
		}
		for d := JAxes; d < InvalidDigit; d++ {
			n, err := Neighbor(pentagon, d)
			if err != nil {
				t.Fatalf("Neighbor(pentagon, %d): %v", d, err)
			}
			ok, err := AreNeighborCells(pentagon, n)
			if err != nil || !ok {
				t.Errorf("AreNeighborCells(pentagon, %s) = %v, %v", n, ok, err)
			}
		}
	})

	t.Run("BasePentagonKStep", func(t *testing.T) {
		pents, err := Pentagons(0)
		if err != nil {
			t.Fatalf("Pentagons(0): %v", err)
		}
		for _, p := range pents {
			if n, err := Neighbor(p, KAxes); !errors.Is(err, ErrPentagonDistortion) {
				t.Errorf("Neighbor(%s, K) = %s, %v, want ErrPentagonDistortion", p, n, err)
			}
			seen := map[Cell]bool{}
			for d := JAxes; d < InvalidDigit; d++ {
				n, err := Neighbor(p, d)
				if err != nil {
					t.Fatalf("Neighbor(%s, %d): %v", p, d, err)
				}
				if seen[n] {
					t.Errorf("Neighbor(%s, %d) = %s repeats another direction", p, d, n)
				}
				seen[n] = true
				e, err := CellsToDirectedEdge(p, n)
				if err != nil {
					t.Fatalf("CellsToDirectedEdge(%s, %s): %v", p, n, err)
				}
				if e.Direction() != d {
					t.Errorf("CellsToDirectedEdge(%s, %s) direction = %d, want %d", p, n, e.Direction(), d)
				}
			}
		}
	})

	t.Run("SouthPolarPentagonDisk", func(t *testing.T) {
		p := parseCells(t, "80ebfffffffffff")[0]
		got, err := GridDisk(p, 1, DiskUnchecked)
		if err != nil {
			t.Fatalf("GridDisk(%s, unchecked): %v", p, err)
		}
		want := parseCells(t, "80ebfffffffffff", "80d5fffffffffff", "80dbfffffffffff",
			"80edfffffffffff", "80e3fffffffffff", "80f3fffffffffff")
		if got[0] != p {
			t.Errorf("GridDisk(%s) starts with %s", p, got[0])
		}
		slices.Sort(got)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			t.Errorf("GridDisk(%s, unchecked) = %v, want %v", p, got, want)
		}
		disk2, err := GridDisk(p, 2, DiskUnchecked)
		if err != nil || len(disk2) != 16 {
			t.Errorf("GridDisk(%s, 2, unchecked) has %d cells (%v), want 16", p, len(disk2), err)
		}
	})

	// ──────────────────────────────────────────────
	// Checked walks never return a broken disk
	// ──────────────────────────────────────────────

	t.Run("SouthPolarDiskOrder", func(t *testing.T) {
		c := parseCells(t, "82ed77fffffffff")[0]
		want := parseCells(t,
			"82ed77fffffffff", "82ed2ffffffffff", "82ed0ffffffffff", "82ed57fffffffff",
			"82ed47fffffffff", "82ed67fffffffff", "82eadffffffffff",
			"82ead7fffffffff", "82ed27fffffffff", "82ed07fffffffff", "82ed1ffffffffff",
			"82ec27fffffffff", "82ec2ffffffffff", "82ed5ffffffffff", "82ed4ffffffffff",
			"82ed6ffffffffff", "82f337fffffffff", "82eacffffffffff", "82eac7fffffffff")
		got, err := GridDisk(c, 2, DiskChecked)
		if err != nil {
			t.Fatalf("GridDisk(%s, 2): %v", c, err)
		}
		if !slices.Equal(got, want) {
			t.Errorf("GridDisk(%s, 2) = %v, want %v", c, got, want)
		}
	})

	t.Run("CheckedDiskUnique", func(t *testing.T) {
		var cells []Cell
		for _, base := range Res0Cells() {
			children, err := base.Children(2)
			if err != nil {
				t.Fatalf("Children(%s): %v", base, err)
			}
			cells = append(cells, children...)
		}
		for _, c := range cells {
			for k := 1; k <= 3; k++ {
				disk, err := GridDisk(c, k, DiskChecked)
				if err != nil {
					if !errors.Is(err, ErrPentagonDistortion) {
						t.Fatalf("GridDisk(%s, %d): %v", c, k, err)
					}
					continue
				}
				want, _ := MaxGridDiskSize(k)
				if int64(len(disk)) != want || NewCellSet(disk...).Len() != len(disk) {
					t.Fatalf("GridDisk(%s, %d) returned %d cells with %d distinct, want %d",
						c, k, len(disk), NewCellSet(disk...).Len(), want)
				}
			}
		}
	})

	// ──────────────────────────────────────────────
	// Neighbors
	// ──────────────────────────────────────────────

	t.Run("AreNeighborCells", func(t *testing.T) {
		tests := []struct {
			a, b string
			want bool
		}{
			{"8928308280fffff", "8928308280bffff", true},
			{"8928308280fffff", "89283082993ffff", false},
			{"8928308280fffff", "8928308280fffff", false},
		}
		for _, tt := range tests {
			cells := parseCells(t, tt.a, tt.b)
			got, err := AreNeighborCells(cells[0], cells[1])
			if err != nil {
				t.Fatalf("AreNeighborCells(%s, %s): %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("AreNeighborCells(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		}

		coarse, _ := origin.Parent(8)
		if _, err := AreNeighborCells(origin, coarse); !errors.Is(err, ErrIncomparableCells) {
			t.Errorf("AreNeighborCells across resolutions error = %v, want ErrIncomparableCells", err)
		}
	})

	t.Run("NeighborCenter", func(t *testing.T) {
		n, err := Neighbor(origin, Center)
		if err != nil || n != origin {
			t.Errorf("Neighbor(origin, Center) = %s, %v", n, err)
		}
	})

	t.Run("EveryBaseCellNeighbor", func(t *testing.T) {
		for _, base := range Res0Cells() {
			disk, err := GridDisk(base, 1, DiskUnchecked)
			if err != nil {
				t.Fatalf("GridDisk(%s): %v", base, err)
			}
			want := 7
			if base.IsPentagon() {
				want = 6
			}
			if len(disk) != want {
				t.Errorf("GridDisk(%s) has %d cells, want %d", base, len(disk), want)
			}
		}
	})
}

func TestDiskMode(t *testing.T) {
	for _, mode := range []DiskMode{DiskChecked, DiskUnchecked} {
		got, err := ParseDiskMode(mode.String())
		if err != nil || got != mode {
			t.Errorf("ParseDiskMode(%q) = %v, %v", mode.String(), got, err)
		}
	}
	if _, err := ParseDiskMode("spiral"); !errors.Is(err, ErrParse) {
		t.Errorf("ParseDiskMode(spiral) error = %v, want ErrParse", err)
	}
}

func TestFlatten(t *testing.T) {
	cells := parseCells(t, "8928308280fffff", "8928308280bffff", "89283082873ffff")
	got := Flatten([][]Cell{{cells[0]}, nil, cells[1:]})
	if !slices.Equal(got, cells) {
		t.Errorf("Flatten = %v, want %v", got, cells)
	}
}
