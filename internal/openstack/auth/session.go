// Package auth owns the identity session: credentials, the cached scoped
// token, and the probe-then-reauthenticate refresh cycle.
package auth

import (
	"context"
	"crypto/tls"
	"net/http"
	"sync"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/tokens"
	"github.com/osinfra/openstack-mcp/internal/openstack/oserr"
)

// Session holds at most one cached token, scoped to the configured project.
// Tokens for other projects are minted on demand and never cached.
type Session struct {
	creds    Credentials
	provider *gophercloud.ProviderClient
	identity *gophercloud.ServiceClient

	mu sync.Mutex
}

// NewSession builds the shared provider client. The session owns
// re-authentication, so gophercloud's automatic reauth stays disabled.
func NewSession(creds Credentials, identityEndpoint string) (*Session, error) {
	provider, err := openstack.NewClient(identityEndpoint)
	if err != nil {
		return nil, oserr.Authentication("invalid identity endpoint: " + err.Error())
	}
	provider.HTTPClient = http.Client{
		Timeout: creds.Timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: !creds.VerifyTLS},
		},
	}
	provider.ReauthFunc = nil

	identity := &gophercloud.ServiceClient{
		ProviderClient: provider,
		Endpoint:       identityEndpoint,
		Type:           "identity",
	}
	return &Session{creds: creds, provider: provider, identity: identity}, nil
}

// Provider exposes the shared provider client so service clients can attach
// the cached token to their requests.
func (s *Session) Provider() *gophercloud.ProviderClient {
	return s.provider
}

// EnsureToken returns a valid token scoped to the configured project. A
// cached token is probed with a lightweight catalog read; a 200 confirms it,
// any other outcome (including transport failure) triggers exactly one full
// re-authentication.
func (s *Session) EnsureToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token := s.provider.Token(); token != "" {
		_, err := s.identity.Get(ctx, s.identity.ServiceURL("auth", "catalog"), nil, &gophercloud.RequestOpts{
			OkCodes: []int{200},
		})
		if err == nil {
			return token, nil
		}
	}

	res := tokens.Create(ctx, s.identity, s.authOptions(s.creds.ProjectID))
	token, err := res.ExtractTokenID()
	if err != nil {
		return "", oserr.Wrap(oserr.KindAuthentication, "keystone auth failed", err)
	}
	if token == "" {
		return "", oserr.Authentication("missing X-Subject-Token in keystone response")
	}
	if err := s.provider.SetTokenAndAuthResult(res); err != nil {
		return "", oserr.Wrap(oserr.KindAuthentication, "caching keystone token", err)
	}
	return token, nil
}

// TokenForProject authenticates scoped to an arbitrary project and returns
// the token without caching it, keeping the primary session untouched.
func (s *Session) TokenForProject(ctx context.Context, projectID string) (string, error) {
	res := tokens.Create(ctx, s.identity, s.authOptions(projectID))
	token, err := res.ExtractTokenID()
	if err != nil {
		return "", oserr.Wrap(oserr.KindAuthentication, "keystone project-scope auth failed", err)
	}
	if token == "" {
		return "", oserr.Authentication("missing X-Subject-Token in keystone response (project-scope)")
	}
	return token, nil
}

func (s *Session) authOptions(projectID string) *gophercloud.AuthOptions {
	return &gophercloud.AuthOptions{
		IdentityEndpoint: s.identity.Endpoint,
		Username:         s.creds.Username,
		Password:         s.creds.Password,
		DomainName:       s.creds.UserDomain,
		AllowReauth:      false,
		Scope:            &gophercloud.AuthScope{ProjectID: projectID},
	}
}
