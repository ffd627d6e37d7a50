// Package config loads runtime settings for the Campusfind client.
//
// Sources are layered, later ones winning:
//
//	defaults -> JSON config file (-c/--config) -> .env + environment
//
// Command-line flag overrides sit on top of these but are owned by the
// cobra command tree, which applies them onto the loaded Config.
package config

import "time"

// Config holds runtime settings for the Campusfind client.
//
// Fields:
//   - ServerURL: base URL of the portal API, e.g. "http://127.0.0.1:5000".
//   - RequestTimeout: per-request HTTP timeout.
//   - LogFile: optional debug log destination; empty disables logging so
//     the terminal UI keeps stdout to itself.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	LogFile        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.RequestTimeout = 10 * time.Second
	c.LogFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was named) and the environment (including a
// .env file in the working directory, if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	return cfg
}
