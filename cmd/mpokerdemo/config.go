package main

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the demo's session configuration: deck dimensions, log
// level, and curve backend, loaded from a TOML file the way drand's
// util.LoadGroup loads a group file and overridden by command-line
// flags.
type Config struct {
	Rows       int      `toml:"rows"`
	Cols       int      `toml:"cols"`
	LogLevel   string   `toml:"log_level"`
	CurveName  string   `toml:"curve"`
	PlayerTeam []string `toml:"players"`
}

// DefaultConfig matches a standard 52-card deck shuffled as 4 rows of
// 13 columns, with two demo players.
func DefaultConfig() Config {
	return Config{
		Rows:       4,
		Cols:       13,
		LogLevel:   "info",
		CurveName:  "ristretto255",
		PlayerTeam: []string{"alice", "bob"},
	}
}

// LoadConfig reads a TOML config file from path, falling back to
// DefaultConfig if path is empty.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
