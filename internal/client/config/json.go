package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/cmdcable/portal/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is given in whole seconds.
type jsonConfig struct {
	APIBaseURL         string `json:"api_base_url"`
	HTTPTimeoutSeconds int    `json:"http_timeout_seconds"`
	SessionDB          string `json:"session_db"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. No flag, no overlay. Read or unmarshal errors panic;
// a config file that was explicitly requested must be usable.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.HTTPTimeoutSeconds > 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeoutSeconds) * time.Second
	}
	if jc.SessionDB != "" {
		cfg.SessionDB = jc.SessionDB
	}
}
