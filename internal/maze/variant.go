package maze

import (
	"fmt"
	"sort"
)

// trapFunc classifies a cell as lethal for a given turn count.
type trapFunc func(c Coord, turn int) bool

// Variant describes one rule set of the maze.
type Variant struct {
	ID          string
	Title       string
	DefaultSize int

	// Temporal variants have turn-dependent traps and expose the slice
	// view and visited-memory report to the player.
	Temporal bool

	trap trapFunc
}

var variants = make(map[string]Variant)

// registerVariant adds a variant to the catalog.
// Panics if a variant with the same ID is already registered.
func registerVariant(v Variant) {
	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("maze: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

func init() {
	registerVariant(Variant{
		ID:          "classic",
		Title:       "Hypercube Classic",
		DefaultSize: 5,
		Temporal:    false,
		trap:        classicTrap,
	})
	registerVariant(Variant{
		ID:          "flux",
		Title:       "Hypercube Flux",
		DefaultSize: 4,
		Temporal:    true,
		trap:        fluxTrap,
	})
}

// Variants returns all registered variants, sorted by ID.
func Variants() []Variant {
	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// VariantByID looks up a variant by its ID.
// Returns an error if the variant is not registered.
func VariantByID(id string) (Variant, error) {
	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("maze: unknown variant %q", id)
	}
	return v, nil
}

// VariantExists checks if a variant with the given ID is registered.
func VariantExists(id string) bool {
	_, ok := variants[id]
	return ok
}
