// Package client implements the composite resource-retrieval client: one
// authenticated fetcher per resource kind and the aggregator that merges
// their results into a single normalized instance record.
package client

import (
	"log/slog"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/osinfra/openstack-mcp/internal/openstack/auth"
)

// Client queries the identity, compute, networking, block-storage and image
// services of one cloud. It performs read requests only.
type Client struct {
	creds   auth.Credentials
	eps     Endpoints
	session *auth.Session
	log     *slog.Logger

	identity     *gophercloud.ServiceClient
	compute      *gophercloud.ServiceClient
	network      *gophercloud.ServiceClient
	blockstorage *gophercloud.ServiceClient
	image        *gophercloud.ServiceClient
}

type Option func(*Client)

// WithEndpoints overrides the derived service base URLs.
func WithEndpoints(eps Endpoints) Option {
	return func(c *Client) { c.eps = eps }
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New validates the credentials and wires one service client per subsystem,
// all sharing the session's provider (and therefore its cached token).
func New(creds auth.Credentials, opts ...Option) (*Client, error) {
	creds = creds.WithDefaults()
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		creds: creds,
		eps:   ServiceEndpoints(creds.Host, creds.ProjectID),
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	session, err := auth.NewSession(creds, c.eps.Identity)
	if err != nil {
		return nil, err
	}
	c.session = session

	provider := session.Provider()
	service := func(endpoint, kind string) *gophercloud.ServiceClient {
		return &gophercloud.ServiceClient{
			ProviderClient: provider,
			Endpoint:       endpoint,
			Type:           kind,
		}
	}
	c.identity = service(c.eps.Identity, "identity")
	c.compute = service(c.eps.Compute, "compute")
	c.network = service(c.eps.Network, "network")
	c.blockstorage = service(c.eps.BlockStorage, "block-storage")
	c.image = service(c.eps.Image, "image")
	return c, nil
}

// Session exposes the identity session, whose token cache lives as long as
// the client.
func (c *Client) Session() *auth.Session {
	return c.session
}

// okGet builds fresh request options per call; gophercloud mutates the
// struct while issuing the request, so it cannot be shared across
// concurrent fetchers.
func okGet() *gophercloud.RequestOpts {
	return &gophercloud.RequestOpts{OkCodes: []int{200}}
}
