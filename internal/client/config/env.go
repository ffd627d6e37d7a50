package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by the client.
const (
	EnvServerURL = "CAMPUSFIND_SERVER_URL"
	EnvTimeout   = "CAMPUSFIND_TIMEOUT"
	EnvLogFile   = "CAMPUSFIND_LOG"
)

// parseEnv overlays cfg with values from the environment. A .env file in
// the working directory is merged in first (existing variables win, per
// godotenv semantics); a missing .env is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
}
