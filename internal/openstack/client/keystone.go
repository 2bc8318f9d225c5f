package client

import (
	"context"

	"github.com/osinfra/openstack-mcp/types/openstack/keystone"
)

// projectNameByID resolves a project's display name. Degrades to nil.
func (c *Client) projectNameByID(ctx context.Context, id string) *string {
	var body struct {
		Project keystone.Project `json:"project"`
	}
	if _, err := c.identity.Get(ctx, c.identity.ServiceURL("projects", id), &body, okGet()); err != nil {
		c.log.Debug("project fetch failed", "project_id", id, "error", err)
		return nil
	}
	return &body.Project.Name
}
