package maze

// Trap predicate coefficients for the flux variant. The weighted coordinate
// sum is folded mod 97 so the turn term cycles the trap field over time.
const (
	fluxCoefX    = 7
	fluxCoefY    = 11
	fluxCoefZ    = 13
	fluxCoefW    = 17
	fluxCoefTurn = 19
	fluxModulus  = 97
)

// classicTrap reports whether a cell is lethal in the classic variant:
// the plain component sum is prime. Turn-independent, so a cell's status
// never changes within a game.
func classicTrap(c Coord, _ int) bool {
	return isPrime(c.X + c.Y + c.Z + c.W)
}

// fluxTrap reports whether a cell is lethal in the flux variant on the
// given turn. The same cell can be safe on one visit and lethal on another.
func fluxTrap(c Coord, turn int) bool {
	val := fluxCoefX*c.X + fluxCoefY*c.Y + fluxCoefZ*c.Z + fluxCoefW*c.W + fluxCoefTurn*turn
	return isPrime(val % fluxModulus)
}

// isPrime tests primality by trial division up to the square root.
// Values below 2 are never prime.
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}
