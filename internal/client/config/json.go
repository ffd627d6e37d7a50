package config

import (
	"encoding/json"
	"os"
	"time"

	"campusfind/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are specified in whole seconds. Zero values mean "not set" and leave the
// corresponding Config field untouched.
type JsonConfig struct {
	ServerURL             string `json:"server_url"`
	RequestTimeoutSeconds int    `json:"request_timeout"`
	LogFile               string `json:"log_file"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/--config flag. When no flag is given, nothing is loaded. Read or
// unmarshal errors panic; startup has nothing sensible to fall back to.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
}
