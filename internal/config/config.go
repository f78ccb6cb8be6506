// Package config provides YAML-based configuration loading for the
// hypermaze platform.
package config

// Config contains all user-tunable settings.
type Config struct {
	Grid    GridConfig   `yaml:"grid"`
	Markers MarkerConfig `yaml:"markers"`
}

// GridConfig defines the grid side length per variant. Sizes are fixed at
// engine construction; there is deliberately no runtime resizing.
type GridConfig struct {
	ClassicSize int `yaml:"classic_size"`
	FluxSize    int `yaml:"flux_size"`
}

// MarkerConfig defines the display runes for slice cells.
// Each value should be a single character; longer strings use the first rune.
type MarkerConfig struct {
	Player  string `yaml:"player"`
	Exit    string `yaml:"exit"`
	Trap    string `yaml:"trap"`
	Safe    string `yaml:"safe"`
	Unknown string `yaml:"unknown"`
}

// SizeFor returns the configured grid size for a variant ID.
// Returns 0 for unknown variants, which lets the engine fall back to the
// variant's default size.
func (c Config) SizeFor(variantID string) int {
	switch variantID {
	case "classic":
		return c.Grid.ClassicSize
	case "flux":
		return c.Grid.FluxSize
	default:
		return 0
	}
}

// FirstRune returns the first rune of s, or fallback if s is empty.
func FirstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
