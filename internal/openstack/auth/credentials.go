package auth

import (
	"time"

	"github.com/osinfra/openstack-mcp/internal/openstack/oserr"
)

// Credentials hold everything needed to reach one cloud. Immutable once a
// client has been constructed from them.
type Credentials struct {
	// Host of the cloud's API services, with an optional http:// or
	// https:// prefix. Service ports are fixed per service.
	Host       string
	Username   string
	Password   string
	ProjectID  string
	UserDomain string
	VerifyTLS  bool
	Timeout    time.Duration
}

const (
	DefaultHost       = "127.0.0.1"
	DefaultUserDomain = "Default"
	DefaultTimeout    = 15 * time.Second
)

// Validate reports the required fields that are missing.
func (c Credentials) Validate() error {
	missing := make([]string, 0, 3)
	if c.Username == "" {
		missing = append(missing, "username")
	}
	if c.Password == "" {
		missing = append(missing, "password")
	}
	if c.ProjectID == "" {
		missing = append(missing, "project id")
	}
	if len(missing) > 0 {
		return oserr.Configuration("username, password, and project id are required (missing: %v)", missing)
	}
	return nil
}

// WithDefaults fills the optional fields that were left empty.
func (c Credentials) WithDefaults() Credentials {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.UserDomain == "" {
		c.UserDomain = DefaultUserDomain
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
