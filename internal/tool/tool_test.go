package tool

import (
	"context"
	"testing"
	"time"

	"github.com/osinfra/openstack-mcp/internal/config"
	"github.com/osinfra/openstack-mcp/internal/openstack/oserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Host:      "host.invalid",
		Username:  "admin",
		Password:  "secret",
		ProjectID: "proj-1",
		Timeout:   time.Second,
		LogLevel:  "ERROR",
	}
}

func TestGetServerByIDEmptyInstanceID(t *testing.T) {
	cfg := testConfig()
	log := config.NewLogger(cfg.LogLevel)

	out := GetServerByID(context.Background(), cfg, log, GetServerInput{InstanceID: "   "})
	env, ok := out.(oserr.Envelope)
	require.True(t, ok)
	assert.Equal(t, "ClientError", env.Error.Type)
	assert.Contains(t, env.Error.Message, "instance_id")
}

func TestGetServerByIDMissingCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.Password = ""
	log := config.NewLogger(cfg.LogLevel)

	out := GetServerByID(context.Background(), cfg, log, GetServerInput{InstanceID: "abc-123"})
	env, ok := out.(oserr.Envelope)
	require.True(t, ok)
	assert.Equal(t, "ClientError", env.Error.Type)
	assert.Nil(t, env.Error.HTTPStatus)
}

func TestGetServerByIDUnreachableCloud(t *testing.T) {
	cfg := testConfig()
	log := config.NewLogger(cfg.LogLevel)

	// host.invalid never resolves, so authentication fails without a status.
	out := GetServerByID(context.Background(), cfg, log, GetServerInput{InstanceID: "abc-123"})
	env, ok := out.(oserr.Envelope)
	require.True(t, ok, "failures surface as envelopes, never as panics or errors")
	assert.Equal(t, "ClientError", env.Error.Type)
	assert.Nil(t, env.Error.HTTPStatus)
}
