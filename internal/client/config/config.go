// Package config holds the terminal client's settings: defaults, an optional
// JSON file (-c/-config) and command-line flags, applied in that order.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the catalog CLI.
//
// Fields:
//   - ServerURL: base URL of the REST API, e.g. "http://localhost:3000".
//   - RequestTimeout: upper bound for a single API call.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
