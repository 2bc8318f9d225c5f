package client

import (
	"context"

	"github.com/osinfra/openstack-mcp/types/openstack/cinder"
)

// volumeByID fetches one volume's details. Degrades to nil on any failure;
// the aggregator keeps a bare {id} record in that case.
func (c *Client) volumeByID(ctx context.Context, id string) *cinder.Volume {
	var body struct {
		Volume cinder.Volume `json:"volume"`
	}
	if _, err := c.blockstorage.Get(ctx, c.blockstorage.ServiceURL("volumes", id), &body, okGet()); err != nil {
		c.log.Debug("volume fetch failed", "volume_id", id, "error", err)
		return nil
	}
	return &body.Volume
}
