// Package config collects the environment-driven settings shared by the MCP
// server and the CLI. Environment variables win over clouds.yaml entries,
// mirroring the usual OpenStack client convention.
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gophercloud/utils/v2/openstack/clientconfig"
	"github.com/joho/godotenv"
	"github.com/osinfra/openstack-mcp/internal/openstack/auth"
	"github.com/osinfra/openstack-mcp/internal/openstack/oserr"
)

type Config struct {
	Host       string
	Username   string
	Password   string
	ProjectID  string
	UserDomain string
	VerifyTLS  bool
	Timeout    time.Duration

	MCPHost  string
	MCPPort  int
	LogLevel string
}

// Load reads the environment, after best-effort loading of a .env file in
// the working directory. If OS_CLOUD is set, missing credentials are filled
// from the named clouds.yaml entry. Required-field validation happens at
// client construction, not here.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Host:       os.Getenv("OS_HOST"),
		Username:   os.Getenv("OS_USERNAME"),
		Password:   os.Getenv("OS_PASSWORD"),
		ProjectID:  os.Getenv("OS_PROJECT_ID"),
		UserDomain: os.Getenv("OS_USER_DOMAIN_NAME"),
		VerifyTLS:  ParseBool(os.Getenv("OS_VERIFY_SSL"), false),
		Timeout:    auth.DefaultTimeout,
		MCPHost:    envDefault("MCP_HOST", "0.0.0.0"),
		MCPPort:    8083,
		LogLevel:   envDefault("LOG_LEVEL", "INFO"),
	}

	if raw := os.Getenv("OS_REQUEST_TIMEOUT"); raw != "" {
		seconds, err := strconv.ParseFloat(raw, 64)
		if err != nil || seconds <= 0 {
			return nil, oserr.Configuration("invalid OS_REQUEST_TIMEOUT %q", raw)
		}
		cfg.Timeout = time.Duration(seconds * float64(time.Second))
	}
	if raw := os.Getenv("MCP_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port < 0 {
			return nil, oserr.Configuration("invalid MCP_PORT %q", raw)
		}
		cfg.MCPPort = port
	}

	if cloud := os.Getenv("OS_CLOUD"); cloud != "" {
		if err := cfg.fillFromCloud(cloud); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Credentials maps the configuration onto the client's credential set.
func (c *Config) Credentials() auth.Credentials {
	return auth.Credentials{
		Host:       c.Host,
		Username:   c.Username,
		Password:   c.Password,
		ProjectID:  c.ProjectID,
		UserDomain: c.UserDomain,
		VerifyTLS:  c.VerifyTLS,
		Timeout:    c.Timeout,
	}
}

// fillFromCloud merges the named clouds.yaml entry into any field the
// environment left empty.
func (c *Config) fillFromCloud(name string) error {
	cloud, err := clientconfig.GetCloudFromYAML(&clientconfig.ClientOpts{Cloud: name})
	if err != nil {
		return oserr.Configuration("loading clouds.yaml entry %q: %s", name, err)
	}
	if info := cloud.AuthInfo; info != nil {
		if c.Username == "" {
			c.Username = info.Username
		}
		if c.Password == "" {
			c.Password = info.Password
		}
		if c.ProjectID == "" {
			c.ProjectID = info.ProjectID
		}
		if c.UserDomain == "" {
			c.UserDomain = info.UserDomainName
		}
		if c.Host == "" && info.AuthURL != "" {
			c.Host = hostFromAuthURL(info.AuthURL)
		}
	}
	if cloud.Verify != nil && os.Getenv("OS_VERIFY_SSL") == "" {
		c.VerifyTLS = *cloud.Verify
	}
	return nil
}

func hostFromAuthURL(authURL string) string {
	u, err := url.Parse(authURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	if u.Scheme == "https" {
		return "https://" + u.Hostname()
	}
	return u.Hostname()
}

// ParseBool is the one boolean semantics used everywhere: true iff the
// value is one of 1/true/yes/y/on, case-insensitive. Empty means default;
// any other non-empty value means false.
func ParseBool(raw string, def bool) bool {
	if raw == "" {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
