package maze

import (
	"testing"
)

func TestCoordEqual(t *testing.T) {
	a := C4(1, 2, 3, 4)

	if !a.Equal(C4(1, 2, 3, 4)) {
		t.Error("identical coordinates should be equal")
	}

	// A mismatch on any single axis breaks equality
	others := []Coord{
		C4(0, 2, 3, 4),
		C4(1, 0, 3, 4),
		C4(1, 2, 0, 4),
		C4(1, 2, 3, 0),
	}
	for _, o := range others {
		if a.Equal(o) {
			t.Errorf("%s should not equal %s", a, o)
		}
	}
}

func TestCoordInside(t *testing.T) {
	tests := []struct {
		c    Coord
		size int
		want bool
	}{
		{C4(0, 0, 0, 0), 5, true},
		{C4(4, 4, 4, 4), 5, true},
		{C4(5, 0, 0, 0), 5, false},
		{C4(0, 5, 0, 0), 5, false},
		{C4(0, 0, 5, 0), 5, false},
		{C4(0, 0, 0, 5), 5, false},
		{C4(-1, 0, 0, 0), 5, false},
		{C4(0, -1, 0, 0), 5, false},
		{C4(0, 0, -1, 0), 5, false},
		{C4(0, 0, 0, -1), 5, false},
		{C4(3, 3, 3, 3), 4, true},
		{C4(4, 3, 3, 3), 4, false},
	}

	for _, tt := range tests {
		if got := tt.c.Inside(tt.size); got != tt.want {
			t.Errorf("%s.Inside(%d) = %v, want %v", tt.c, tt.size, got, tt.want)
		}
	}
}

func TestCoordStep(t *testing.T) {
	start := C4(2, 2, 2, 2)

	tests := []struct {
		dir  Direction
		want Coord
	}{
		{DirXPos, C4(3, 2, 2, 2)},
		{DirXNeg, C4(1, 2, 2, 2)},
		{DirYPos, C4(2, 3, 2, 2)},
		{DirYNeg, C4(2, 1, 2, 2)},
		{DirZPos, C4(2, 2, 3, 2)},
		{DirZNeg, C4(2, 2, 1, 2)},
		{DirWPos, C4(2, 2, 2, 3)},
		{DirWNeg, C4(2, 2, 2, 1)},
	}

	for _, tt := range tests {
		got := start.Step(tt.dir)
		if !got.Equal(tt.want) {
			t.Errorf("Step(%s) = %s, want %s", tt.dir, got, tt.want)
		}
	}

	// Step must not mutate the receiver
	if !start.Equal(C4(2, 2, 2, 2)) {
		t.Error("Step mutated the receiver")
	}
}

func TestCoordKeyInjective(t *testing.T) {
	// Every cell of a size-5 grid must map to a distinct key.
	const size = 5
	seen := make(map[uint64]Coord)

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				for w := 0; w < size; w++ {
					c := C4(x, y, z, w)
					k := c.Key()
					if prev, dup := seen[k]; dup {
						t.Fatalf("key collision: %s and %s both map to %d", prev, c, k)
					}
					seen[k] = c
				}
			}
		}
	}

	if len(seen) != size*size*size*size {
		t.Errorf("expected %d distinct keys, got %d", size*size*size*size, len(seen))
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		size int
		want Coord
	}{
		{4, C4(2, 2, 2, 2)},
		{5, C4(2, 2, 2, 2)},
		{6, C4(3, 3, 3, 3)},
		{7, C4(3, 3, 3, 3)},
	}

	for _, tt := range tests {
		got := Center(tt.size)
		if !got.Equal(tt.want) {
			t.Errorf("Center(%d) = %s, want %s", tt.size, got, tt.want)
		}
	}
}

func TestCoordString(t *testing.T) {
	if got := C4(1, 2, 3, 4).String(); got != "(1,2,3,4)" {
		t.Errorf("String() = %q, want (1,2,3,4)", got)
	}
}
