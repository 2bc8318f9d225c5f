package client

import (
	"context"

	"github.com/osinfra/openstack-mcp/types/openstack/glance"
)

// imageByID resolves image details, primarily for the display name.
// Degrades to nil on any failure (boot-from-volume servers have none).
func (c *Client) imageByID(ctx context.Context, id string) *glance.Image {
	var image glance.Image
	if _, err := c.image.Get(ctx, c.image.ServiceURL("images", id), &image, okGet()); err != nil {
		c.log.Debug("image fetch failed", "image_id", id, "error", err)
		return nil
	}
	return &image
}
