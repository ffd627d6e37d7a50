package cli

import (
	"bytes"
	"testing"

	"campusfind/internal/client/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Flags(t *testing.T) {
	cfg := config.LoadConfig()
	cmd := NewRootCmd(cfg)

	for _, name := range []string{"server", "timeout", "config", "log"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, cfg.ServerURL, cmd.PersistentFlags().Lookup("server").DefValue)
}

func TestVersionCommand(t *testing.T) {
	cfg := config.LoadConfig()
	cmd := NewRootCmd(cfg)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Build version")
}
