package engine

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the engine's tunable parameters. It is deliberately small:
// the evaluator and search are fixed to the spec's formulas, so the only
// things worth tuning from the outside are how deep to search and whether
// quiescence is allowed to run at all (useful for fast, deterministic
// tests that don't want to chase captures indefinitely).
type Config struct {
	SearchDepth  int  `toml:"search_depth"`
	QuiescenceOn bool `toml:"quiescence_on"`
}

// DefaultConfig returns the engine's built-in defaults, used whenever no
// chessrc.toml is present. A file that fails to parse is reported as an
// error by LoadConfig instead.
func DefaultConfig() Config {
	return Config{
		SearchDepth:  4,
		QuiescenceOn: true,
	}
}

// LoadConfig reads path as TOML into a Config, starting from
// DefaultConfig so an incomplete file only overrides the fields it sets.
// A missing file is not an error: it returns DefaultConfig() unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
