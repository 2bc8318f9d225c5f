package config

import (
	"errors"
	"testing"
	"time"

	"github.com/osinfra/openstack-mcp/internal/openstack/oserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OS_HOST", "10.0.0.5")
	t.Setenv("OS_USERNAME", "admin")
	t.Setenv("OS_PASSWORD", "secret")
	t.Setenv("OS_PROJECT_ID", "proj-1")
	t.Setenv("OS_USER_DOMAIN_NAME", "")
	t.Setenv("OS_VERIFY_SSL", "")
	t.Setenv("OS_REQUEST_TIMEOUT", "")
	t.Setenv("OS_CLOUD", "")
	t.Setenv("MCP_HOST", "")
	t.Setenv("MCP_PORT", "")
	t.Setenv("LOG_LEVEL", "")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5", cfg.Host)
	assert.Equal(t, "admin", cfg.Username)
	assert.False(t, cfg.VerifyTLS)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, "0.0.0.0", cfg.MCPHost)
	assert.Equal(t, 8083, cfg.MCPPort)
	assert.Equal(t, "INFO", cfg.LogLevel)

	creds := cfg.Credentials().WithDefaults()
	assert.Equal(t, "Default", creds.UserDomain)
	require.NoError(t, creds.Validate())
}

func TestLoadTimeoutSeconds(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("OS_REQUEST_TIMEOUT", "2.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2500*time.Millisecond, cfg.Timeout)
}

func TestLoadInvalidNumbers(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("OS_REQUEST_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	var clientErr *oserr.Error
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, oserr.KindConfiguration, clientErr.Kind)

	setBaseEnv(t)
	t.Setenv("MCP_PORT", "http")
	_, err = Load()
	require.Error(t, err)
}

func TestParseBool(t *testing.T) {
	for raw, want := range map[string]bool{
		"1": true, "true": true, "TRUE": true, "Yes": true, "y": true, "on": true,
		"0": false, "false": false, "no": false, "off": false, "banana": false,
	} {
		assert.Equal(t, want, ParseBool(raw, true), "raw=%q", raw)
	}
	assert.True(t, ParseBool("", true))
	assert.False(t, ParseBool("", false))
}
