package maze

// Snapshot captures the complete engine state for tests and determinism
// checks.
type Snapshot struct {
	Variant  string
	Size     int
	Turn     int
	Position Coord
	Exit     Coord
	Visited  int
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Variant:  e.variant.ID,
		Size:     e.size,
		Turn:     e.turn,
		Position: e.pos,
		Exit:     e.exit,
		Visited:  len(e.visited),
	}
}
