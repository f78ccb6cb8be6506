package config

import (
	_ "embed"
)

//go:embed defaults/hypermaze.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration, used if the
// embedded YAML somehow fails to parse.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			ClassicSize: 5,
			FluxSize:    4,
		},
		Markers: MarkerConfig{
			Player:  "@",
			Exit:    "E",
			Trap:    "x",
			Safe:    ".",
			Unknown: "·",
		},
	}
}
