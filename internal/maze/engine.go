package maze

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/hypermaze/internal/core"
)

// ErrOutOfBounds is returned when a move would leave the grid.
var ErrOutOfBounds = errors.New("maze: out of bounds")

// Visit records the player's memory of a cell it has entered: the trap
// status observed there and the turn it was entered. A revisit overwrites
// the record with the latest observation, so in temporal variants the
// remembered trap status tracks the most recent pass through the cell.
type Visit struct {
	Cell Coord
	Trap bool
	Turn int
}

// MoveResult describes the outcome of one successful move.
type MoveResult struct {
	Position Coord
	Trap     bool
	Exit     bool
	Turn     int
}

// Engine owns the state of one maze run: the player's position, the fixed
// exit, the turn counter, and the visited-cell memory. All mutation goes
// through Move; everything else is read-only.
type Engine struct {
	variant Variant
	size    int
	pos     Coord
	exit    Coord
	turn    int
	visited map[uint64]Visit
}

// New creates an engine for the given variant. If size is 0 the variant's
// default grid size is used. The starting position is drawn uniformly at
// random, one axis at a time, from the sampler.
func New(variant Variant, size int, rng *core.Sampler) (*Engine, error) {
	if size == 0 {
		size = variant.DefaultSize
	}
	if size < 2 {
		return nil, fmt.Errorf("maze: grid size %d too small", size)
	}

	start := Coord{
		X: rng.IntN(size),
		Y: rng.IntN(size),
		Z: rng.IntN(size),
		W: rng.IntN(size),
	}

	return &Engine{
		variant: variant,
		size:    size,
		pos:     start,
		exit:    Center(size),
		visited: make(map[uint64]Visit),
	}, nil
}

// Move executes one movement command token. On failure (unknown token or a
// move into a wall) the engine state is untouched: no position change, no
// turn increment, no visited entry. On success exactly one axis shifts by
// ±1, the turn counter increments, and the new cell's trap and exit status
// are evaluated and remembered.
func (e *Engine) Move(token string) (MoveResult, error) {
	dir, err := ParseDirection(token)
	if err != nil {
		return MoveResult{}, err
	}

	candidate := e.pos.Step(dir)
	if !candidate.Inside(e.size) {
		return MoveResult{}, fmt.Errorf("%w: %s from %s", ErrOutOfBounds, dir, e.pos)
	}

	e.pos = candidate
	e.turn++

	// Trap evaluation uses the turn value of the move being made, so the
	// increment must happen first. In temporal variants this is what makes
	// the trap field shift under the player.
	trap := e.variant.trap(candidate, e.turn)
	exit := candidate.Equal(e.exit)

	e.visited[candidate.Key()] = Visit{Cell: candidate, Trap: trap, Turn: e.turn}

	return MoveResult{
		Position: candidate,
		Trap:     trap,
		Exit:     exit,
		Turn:     e.turn,
	}, nil
}

// Variant returns the rule set this engine runs.
func (e *Engine) Variant() Variant {
	return e.variant
}

// Size returns the grid side length.
func (e *Engine) Size() int {
	return e.size
}

// Position returns the player's current cell.
func (e *Engine) Position() Coord {
	return e.pos
}

// Exit returns the fixed exit cell (the grid center).
func (e *Engine) Exit() Coord {
	return e.exit
}

// Turn returns the number of successful moves made so far.
func (e *Engine) Turn() int {
	return e.turn
}

// IsExit reports whether the given cell is the exit.
func (e *Engine) IsExit(c Coord) bool {
	return c.Equal(e.exit)
}

// VisitAt returns the remembered record for a cell, if the player has
// entered it. The starting cell has no record unless stepped on later.
func (e *Engine) VisitAt(c Coord) (Visit, bool) {
	v, ok := e.visited[c.Key()]
	return v, ok
}

// VisitedCount returns the number of distinct cells entered so far.
func (e *Engine) VisitedCount() int {
	return len(e.visited)
}

// Visits returns all visited-cell records ordered by the turn recorded.
func (e *Engine) Visits() []Visit {
	result := make([]Visit, 0, len(e.visited))
	for _, v := range e.visited {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Turn < result[j].Turn
	})

	return result
}
