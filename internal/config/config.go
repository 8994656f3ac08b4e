// Package config loads runtime settings for the banking CLI.
//
// Sources and precedence: built-in defaults, then an optional JSON file
// (-c/-config), then command-line flags. Later sources win.
package config

import "time"

// Config holds the runtime settings.
//
//   - SeedFile: optional JSON file with an alternate account dataset; the
//     built-in sample accounts are used when empty.
//   - SessionTimeout: idle time before the session is auto-closed.
//   - LogLevel: minimum level for the structured log ("debug".."error").
type Config struct {
	SeedFile       string
	SessionTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with the stock settings. The 100 s timeout is the
// session length of the original product.
func (c *Config) LoadDefaults() {
	c.SeedFile = ""
	c.SessionTimeout = 100 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config by applying defaults, then overlaying the
// JSON file (if given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
