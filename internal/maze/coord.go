// Package maze implements the 4-dimensional maze: the coordinate model,
// the movement engine with its trap and exit rules, and the slice renderer
// that projects the hypercube into a viewable 3D cross-section.
package maze

import "fmt"

// Coord represents a cell in the 4-dimensional grid.
// All four axes are discrete; valid cells lie in [0, size) on each axis.
type Coord struct {
	X int
	Y int
	Z int
	W int
}

// C4 is a convenience constructor for Coord.
func C4(x, y, z, w int) Coord {
	return Coord{X: x, Y: y, Z: z, W: w}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", c.X, c.Y, c.Z, c.W)
}

// Equal returns true if two coordinates match on all four axes.
func (c Coord) Equal(other Coord) bool {
	return c.X == other.X && c.Y == other.Y && c.Z == other.Z && c.W == other.W
}

// Inside returns true if every component lies in [0, size).
func (c Coord) Inside(size int) bool {
	return c.X >= 0 && c.X < size &&
		c.Y >= 0 && c.Y < size &&
		c.Z >= 0 && c.Z < size &&
		c.W >= 0 && c.W < size
}

// Step returns a new Coord one step in the given direction.
// The receiver is unchanged; coordinates are immutable values.
func (c Coord) Step(d Direction) Coord {
	dx, dy, dz, dw := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz, W: c.W + dw}
}

// Key packs the four components into a single map key, 16 bits per axis.
// Injective for any grid that fits in 16 bits per component, which is far
// beyond any playable size.
func (c Coord) Key() uint64 {
	return uint64(uint16(c.X))<<48 |
		uint64(uint16(c.Y))<<32 |
		uint64(uint16(c.Z))<<16 |
		uint64(uint16(c.W))
}

// Center returns the fixed center cell of a grid with the given size.
// This is the exit of every maze.
func Center(size int) Coord {
	h := size / 2
	return Coord{X: h, Y: h, Z: h, W: h}
}
