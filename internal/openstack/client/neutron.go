package client

import (
	"context"

	"github.com/osinfra/openstack-mcp/types/openstack/neutron"
)

// portByID fetches one networking port. Degrades to nil on any failure.
func (c *Client) portByID(ctx context.Context, id string) *neutron.Port {
	var body struct {
		Port neutron.Port `json:"port"`
	}
	if _, err := c.network.Get(ctx, c.network.ServiceURL("ports", id), &body, okGet()); err != nil {
		c.log.Debug("port fetch failed", "port_id", id, "error", err)
		return nil
	}
	return &body.Port
}
