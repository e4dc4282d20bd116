package hexgrid

import (
	"errors"
	"slices"
	"testing"
)

func TestGridDistance(t *testing.T) {
	origin := parseCells(t, "85283473fffffff")[0]

	t.Run("Self", func(t *testing.T) {
		d, err := GridDistance(origin, origin)
		if err != nil || d != 0 {
			t.Errorf("GridDistance(origin, origin) = %d, %v", d, err)
		}
	})

	t.Run("FirstRing", func(t *testing.T) {
		ring := parseCells(t,
			"85283447fffffff", "8528347bfffffff", "85283463fffffff",
			"85283477fffffff", "8528340ffffffff", "8528340bfffffff")
		for _, c := range ring {
			d, err := GridDistance(origin, c)
			if err != nil {
				t.Fatalf("GridDistance(%s, %s): %v", origin, c, err)
			}
			if d != 1 {
				t.Errorf("GridDistance(%s, %s) = %d, want 1", origin, c, d)
			}
		}
	})

	t.Run("MatchesDisk", func(t *testing.T) {
		rings, err := GridDiskDistances(origin, 4, DiskChecked)
		if err != nil {
			t.Fatalf("GridDiskDistances: %v", err)
		}
		for k, ring := range rings {
			for _, c := range ring {
				d, err := GridDistance(origin, c)
				if err != nil {
					t.Fatalf("GridDistance(%s, %s): %v", origin, c, err)
				}
				if d != int64(k) {
					t.Errorf("GridDistance(%s, %s) = %d, want %d", origin, c, d, k)
				}
			}
		}
	})

	t.Run("MixedResolution", func(t *testing.T) {
		parent, _ := origin.Parent(4)
		if _, err := GridDistance(origin, parent); !errors.Is(err, ErrIncomparableCells) {
			t.Errorf("GridDistance across resolutions error = %v, want ErrIncomparableCells", err)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		if _, err := GridDistance(origin, Cell(0)); !errors.Is(err, ErrInvalidCell) {
			t.Errorf("GridDistance(invalid) error = %v, want ErrInvalidCell", err)
		}
	})
}

func TestLocalIJ(t *testing.T) {
	origin := parseCells(t, "8928308280fffff")[0]

	ij, err := CellToLocalIJ(origin, origin)
	if err != nil {
		t.Fatalf("CellToLocalIJ(origin, origin): %v", err)
	}
	back, err := LocalIJToCell(origin, ij)
	if err != nil || back != origin {
		t.Errorf("LocalIJToCell(origin, %v) = %s, %v", ij, back, err)
	}

	disk, err := GridDisk(origin, 5, DiskChecked)
	if err != nil {
		t.Fatalf("GridDisk: %v", err)
	}
	for _, c := range disk {
		ij, err := CellToLocalIJ(origin, c)
		if err != nil {
			t.Fatalf("CellToLocalIJ(%s): %v", c, err)
		}
		got, err := LocalIJToCell(origin, ij)
		if err != nil {
			t.Fatalf("LocalIJToCell(%v): %v", ij, err)
		}
		if got != c {
			t.Errorf("LocalIJ round trip of %s gave %s", c, got)
		}
	}
}

func TestGridPath(t *testing.T) {
	for _, tt := range knownPaths {
		t.Run(tt.from+"-"+tt.to, func(t *testing.T) {
			cells := parseCells(t, tt.from, tt.to)
			d, err := GridDistance(cells[0], cells[1])
			if err != nil || d != tt.distance {
				t.Fatalf("GridDistance = %d, %v, want %d", d, err, tt.distance)
			}
			size, err := GridPathSize(cells[0], cells[1])
			if err != nil || size != tt.distance+1 {
				t.Errorf("GridPathSize = %d, %v, want %d", size, err, tt.distance+1)
			}
		})
	}

	t.Run("KnownLine", func(t *testing.T) {
		want := parseCells(t,
			"89283082993ffff", "8928308299bffff", "892830829d7ffff",
			"892830829c3ffff", "892830829cbffff", "89283082827ffff")
		got, err := GridPath(want[0], want[len(want)-1])
		if err != nil {
			t.Fatalf("GridPath: %v", err)
		}
		if !slices.Equal(got, want) {
			t.Errorf("GridPath = %v, want %v", got, want)
		}
		for i := 1; i < len(got); i++ {
			ok, err := AreNeighborCells(got[i-1], got[i])
			if err != nil || !ok {
				t.Errorf("path cells %s and %s are not adjacent", got[i-1], got[i])
			}
		}
	})

	t.Run("SameCell", func(t *testing.T) {
		c := parseCells(t, "8928308280fffff")[0]
		got, err := GridPath(c, c)
		if err != nil || !slices.Equal(got, []Cell{c}) {
			t.Errorf("GridPath(c, c) = %v, %v", got, err)
		}
	})

	t.Run("NotComputable", func(t *testing.T) {
		a := parseCells(t, "8928308280fffff")[0]
		b, err := LatLngToCell(LatLngFromDegrees(-33.8688, 151.2093), 9)
		if err != nil {
			t.Fatalf("LatLngToCell: %v", err)
		}
		if _, err := GridPath(a, b); !errors.Is(err, ErrLineNotComputable) {
			t.Errorf("GridPath across the globe error = %v, want ErrLineNotComputable", err)
		}
	})
}
