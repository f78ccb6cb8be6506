package maze

import (
	"errors"
	"fmt"
)

// Direction represents a single-step move along one axis.
type Direction int

const (
	DirXPos Direction = iota
	DirXNeg
	DirYPos
	DirYNeg
	DirZPos
	DirZNeg
	DirWPos
	DirWNeg
)

// ErrInvalidDirection is returned for tokens outside the movement vocabulary.
var ErrInvalidDirection = errors.New("maze: invalid direction")

// directionTokens maps command tokens to directions.
// Tokens are case-sensitive, exact-match.
var directionTokens = map[string]Direction{
	"xp": DirXPos,
	"xn": DirXNeg,
	"yp": DirYPos,
	"yn": DirYNeg,
	"zp": DirZPos,
	"zn": DirZNeg,
	"wp": DirWPos,
	"wn": DirWNeg,
}

// ParseDirection converts a command token to a Direction.
// Returns ErrInvalidDirection for anything outside the 8-token vocabulary.
func ParseDirection(token string) (Direction, error) {
	d, ok := directionTokens[token]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, token)
	}
	return d, nil
}

// Delta returns the per-axis offsets for the direction.
func (d Direction) Delta() (dx, dy, dz, dw int) {
	switch d {
	case DirXPos:
		return 1, 0, 0, 0
	case DirXNeg:
		return -1, 0, 0, 0
	case DirYPos:
		return 0, 1, 0, 0
	case DirYNeg:
		return 0, -1, 0, 0
	case DirZPos:
		return 0, 0, 1, 0
	case DirZNeg:
		return 0, 0, -1, 0
	case DirWPos:
		return 0, 0, 0, 1
	case DirWNeg:
		return 0, 0, 0, -1
	}
	return 0, 0, 0, 0
}

// Token returns the command token for the direction.
func (d Direction) Token() string {
	switch d {
	case DirXPos:
		return "xp"
	case DirXNeg:
		return "xn"
	case DirYPos:
		return "yp"
	case DirYNeg:
		return "yn"
	case DirZPos:
		return "zp"
	case DirZNeg:
		return "zn"
	case DirWPos:
		return "wp"
	case DirWNeg:
		return "wn"
	}
	return "?"
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirXPos:
		return "+x"
	case DirXNeg:
		return "-x"
	case DirYPos:
		return "+y"
	case DirYNeg:
		return "-y"
	case DirZPos:
		return "+z"
	case DirZNeg:
		return "-z"
	case DirWPos:
		return "+w"
	case DirWNeg:
		return "-w"
	}
	return "unknown"
}

// Directions lists all 8 movement directions in token order.
func Directions() []Direction {
	return []Direction{
		DirXPos, DirXNeg,
		DirYPos, DirYNeg,
		DirZPos, DirZNeg,
		DirWPos, DirWNeg,
	}
}
