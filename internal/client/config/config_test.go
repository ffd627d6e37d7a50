package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:5000", cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.LogFile)
}

func TestParseJson_OverlaysOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_url":"http://portal:8080","request_timeout":30}`), 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"campusfind", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.LogFile = "client.log"
	parseJson(cfg)

	assert.Equal(t, "http://portal:8080", cfg.ServerURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	// Not present in the file, so left alone.
	assert.Equal(t, "client.log", cfg.LogFile)
}

func TestParseJson_NoFlagLeavesConfigUntouched(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"campusfind"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://127.0.0.1:5000", cfg.ServerURL)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv(EnvServerURL, "http://env-portal:9000")
	t.Setenv(EnvTimeout, "5")
	t.Setenv(EnvLogFile, "/tmp/cf.log")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://env-portal:9000", cfg.ServerURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/cf.log", cfg.LogFile)
}

func TestParseEnv_IgnoresInvalidTimeout(t *testing.T) {
	t.Setenv(EnvTimeout, "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
