package tui

import (
	"strings"

	"github.com/vovakirdan/hypermaze/internal/maze"
)

// helpText builds the command reference for a variant.
func helpText(v maze.Variant) string {
	var sb strings.Builder
	sb.WriteString("Commands:\n")
	sb.WriteString("  xp xn yp yn zp zn wp wn   step one cell along the named axis (+/-)\n")
	if v.Temporal {
		sb.WriteString("  view                      toggle the 3D slice at your current w\n")
		sb.WriteString("  map                       toggle the visited-cell report\n")
	}
	sb.WriteString("  help                      toggle this reference\n")
	sb.WriteString("  exit                      give up and leave the maze\n")
	sb.WriteString("\nReach the center cell to escape. Cells whose coordinates fail the\n")
	if v.Temporal {
		sb.WriteString("maze's arithmetic are traps, and the trap field shifts every turn.")
	} else {
		sb.WriteString("maze's arithmetic are traps. A trap cell is always a trap cell.")
	}
	return sb.String()
}
