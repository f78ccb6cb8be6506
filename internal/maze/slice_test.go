package maze

import (
	"testing"

	"github.com/vovakirdan/hypermaze/internal/core"
)

func TestClassifyPriority(t *testing.T) {
	e := newEngine(t, "flux", 4, 1, 1, 1, 1)

	// Walk out and back so both a visited cell and the start cell have
	// memory records.
	for _, token := range []string{"xp", "xn"} {
		if _, err := e.Move(token); err != nil {
			t.Fatalf("Move(%s) failed: %v", token, err)
		}
	}

	// Player outranks everything, including the cell's visited record
	if got := e.Classify(e.Position()); got != CellPlayer {
		t.Errorf("Classify(player cell) = %v, want CellPlayer", got)
	}

	// Exit is visible even though it has never been visited
	if got := e.Classify(e.Exit()); got != CellExit {
		t.Errorf("Classify(exit) = %v, want CellExit", got)
	}

	// Visited safe cell
	if got := e.Classify(C4(2, 1, 1, 1)); got != CellSafe {
		t.Errorf("Classify(visited safe cell) = %v, want CellSafe", got)
	}

	// Never-entered cell
	if got := e.Classify(C4(3, 3, 3, 3)); got != CellUnknown {
		t.Errorf("Classify(unknown cell) = %v, want CellUnknown", got)
	}
}

func TestClassifyPlayerOutranksExit(t *testing.T) {
	// Start one step from the center and step onto it: the cell is both
	// the player's position and the exit, and the player marker wins.
	e := newEngine(t, "flux", 4, 2, 2, 2, 1)

	if _, err := e.Move("wp"); err != nil {
		t.Fatalf("Move(wp) failed: %v", err)
	}

	if got := e.Classify(e.Exit()); got != CellPlayer {
		t.Errorf("Classify(player on exit) = %v, want CellPlayer", got)
	}
}

func TestClassifyTrapCell(t *testing.T) {
	// Entering the origin on turn 1 traps (flux value 19). The engine does
	// not end the game itself, so the record is inspectable afterwards.
	e := newEngine(t, "flux", 4, 1, 0, 0, 0)

	result, err := e.Move("xn")
	if err != nil {
		t.Fatalf("Move(xn) failed: %v", err)
	}
	if !result.Trap {
		t.Fatal("expected a trap on turn 1 at the origin")
	}

	// Step off the trap cell so the player marker does not mask it.
	if _, err := e.Move("yp"); err != nil {
		t.Fatalf("Move(yp) failed: %v", err)
	}

	if got := e.Classify(C4(0, 0, 0, 0)); got != CellTrap {
		t.Errorf("Classify(trap cell) = %v, want CellTrap", got)
	}
}

func TestRenderSliceMarkers(t *testing.T) {
	e := newEngine(t, "flux", 4, 1, 1, 1, 2)
	m := DefaultMarkers()

	dst := core.NewScreen(e.SliceWidth(), e.SliceHeight())
	e.RenderSlice(dst, m)

	// Player at (1,1,1) within the w=2 slice: layer y=1, row z=1, col x=1.
	boxTop := 1 + 1*(e.Size()+2)
	px := sliceLabelWidth + 2 + 2*1
	py := boxTop + 1 + 1
	if got := dst.Get(px, py); got != m.Player {
		t.Errorf("player marker at (%d,%d) = %q, want %q", px, py, got, m.Player)
	}

	// Exit (2,2,2,2) shares the slice w: layer y=2, row z=2, col x=2.
	boxTop = 1 + 2*(e.Size()+2)
	ex := sliceLabelWidth + 2 + 2*2
	ey := boxTop + 1 + 2
	if got := dst.Get(ex, ey); got != m.Exit {
		t.Errorf("exit marker at (%d,%d) = %q, want %q", ex, ey, got, m.Exit)
	}
}

func TestRenderSliceIsPure(t *testing.T) {
	e := newEngine(t, "flux", 4, 0, 1, 2, 3)

	if _, err := e.Move("xp"); err != nil {
		t.Fatalf("Move(xp) failed: %v", err)
	}
	before := e.Snapshot()

	first := core.NewScreen(e.SliceWidth(), e.SliceHeight())
	e.RenderSlice(first, DefaultMarkers())

	second := core.NewScreen(e.SliceWidth(), e.SliceHeight())
	e.RenderSlice(second, DefaultMarkers())

	if first.String() != second.String() {
		t.Error("two renders of the same state differ")
	}
	if e.Snapshot() != before {
		t.Error("rendering mutated engine state")
	}
}
