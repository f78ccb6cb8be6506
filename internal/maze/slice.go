package maze

import (
	"fmt"

	"github.com/vovakirdan/hypermaze/internal/core"
)

// Markers are the runes used to draw slice cells.
type Markers struct {
	Player  rune
	Exit    rune
	Trap    rune
	Safe    rune
	Unknown rune
}

// DefaultMarkers returns the standard marker set.
func DefaultMarkers() Markers {
	return Markers{
		Player:  '@',
		Exit:    'E',
		Trap:    'x',
		Safe:    '.',
		Unknown: '·',
	}
}

// CellKind classifies a slice cell for display.
type CellKind int

const (
	CellUnknown CellKind = iota
	CellSafe
	CellTrap
	CellExit
	CellPlayer
)

// Classify determines how a cell should be displayed. Priority, highest
// first: the player's own cell, the exit (always shown, visited or not —
// it is the one fixed landmark), remembered cells by their recorded trap
// status, then unknown.
func (e *Engine) Classify(c Coord) CellKind {
	switch {
	case c.Equal(e.pos):
		return CellPlayer
	case c.Equal(e.exit):
		return CellExit
	default:
		if v, ok := e.visited[c.Key()]; ok {
			if v.Trap {
				return CellTrap
			}
			return CellSafe
		}
		return CellUnknown
	}
}

// markerFor maps a cell kind to its rune and color.
func (m Markers) markerFor(kind CellKind) (rune, core.Color) {
	switch kind {
	case CellPlayer:
		return m.Player, core.ColorBrightYellow
	case CellExit:
		return m.Exit, core.ColorBrightGreen
	case CellTrap:
		return m.Trap, core.ColorBrightRed
	case CellSafe:
		return m.Safe, core.ColorCyan
	default:
		return m.Unknown, core.ColorGray
	}
}

// SliceWidth returns the screen width needed by RenderSlice.
func (e *Engine) SliceWidth() int {
	// y-label column plus a boxed x-row per layer, or the header line
	return core.Max(sliceLabelWidth+2*e.size+3, sliceHeaderWidth)
}

// SliceHeight returns the screen height needed by RenderSlice.
func (e *Engine) SliceHeight() int {
	// header plus one boxed z-block per y-layer
	return 1 + e.size*(e.size+2)
}

const (
	sliceLabelWidth  = 5
	sliceHeaderWidth = 32
)

// RenderSlice draws the 3D cross-section of the grid at the player's
// current w-coordinate into dst. Layers are grouped by y, top to bottom;
// within a layer, rows run along z and columns along x. Pure read of
// engine state: rendering never mutates anything and can be repeated at
// any time.
func (e *Engine) RenderSlice(dst *core.Screen, m Markers) {
	w := e.pos.W
	dst.DrawText(0, 0, fmt.Sprintf("w=%d slice  x→ z↓ per y-layer", w))

	for y := 0; y < e.size; y++ {
		boxTop := 1 + y*(e.size+2)
		box := core.NewRect(sliceLabelWidth, boxTop, 2*e.size+3, e.size+2)
		dst.DrawBox(box)
		dst.DrawText(0, boxTop+1, fmt.Sprintf("y=%d", y))

		for z := 0; z < e.size; z++ {
			for x := 0; x < e.size; x++ {
				kind := e.Classify(C4(x, y, z, w))
				r, color := m.markerFor(kind)
				dst.SetCell(box.X+2+2*x, boxTop+1+z, r, color)
			}
		}
	}
}
