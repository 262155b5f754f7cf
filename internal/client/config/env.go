package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variable names.
const (
	EnvAPIBase     = "PORTAL_API_BASE"
	EnvHTTPTimeout = "PORTAL_HTTP_TIMEOUT"
	EnvSessionDB   = "PORTAL_SESSION_DB"
)

// parseEnv overlays cfg with values from the environment. The timeout is
// given in whole seconds; unparseable values are ignored.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBase); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvHTTPTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv(EnvSessionDB); v != "" {
		cfg.SessionDB = v
	}
}
