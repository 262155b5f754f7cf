// Package config handles configuration for the portal client, layering
// defaults, an optional JSON file, environment variables, and command-line
// flags. Later sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the portal CLI.
//
// Fields:
//   - APIBaseURL: base URL of the billing backend's REST surface.
//   - HTTPTimeout: end-to-end bound on every outbound request.
//   - SessionDB: path of the local sqlite file holding the credential.
type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration
	SessionDB   string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.HTTPTimeout = 15 * time.Second
	c.SessionDB = "portal.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), the environment, and
// command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
