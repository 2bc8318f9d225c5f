package client

import (
	"context"
	"encoding/json"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/osinfra/openstack-mcp/internal/openstack/oserr"
	"github.com/osinfra/openstack-mcp/types/openstack/nova"
)

// serverByID fetches the primary server record. This is the only mandatory
// lookup: a non-success status or unparseable body is fatal to the whole
// composite fetch. Returns the typed record plus the untouched document.
func (c *Client) serverByID(ctx context.Context, id string) (*nova.Server, map[string]any, error) {
	var doc map[string]any
	// The deployment serves servers under the legacy project-scoped path.
	url := c.compute.ServiceURL(c.creds.ProjectID, "servers", id)
	if _, err := c.compute.Get(ctx, url, &doc, okGet()); err != nil {
		return nil, nil, oserr.Wrap(oserr.KindPrimaryResource, "nova server fetch failed", err)
	}

	raw := doc
	if nested, ok := doc["server"].(map[string]any); ok {
		raw = nested
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, nil, oserr.Wrap(oserr.KindPrimaryResource, "invalid server document from nova", err)
	}
	var server nova.Server
	if err := json.Unmarshal(encoded, &server); err != nil {
		return nil, nil, oserr.Wrap(oserr.KindPrimaryResource, "invalid server document from nova", err)
	}
	return &server, raw, nil
}

// serverInterfaces lists the server's interface attachments. Degrades to an
// empty list on any failure.
func (c *Client) serverInterfaces(ctx context.Context, id string) []nova.InterfaceAttachment {
	var body struct {
		InterfaceAttachments []nova.InterfaceAttachment `json:"interfaceAttachments"`
	}
	// Interface attachments live under the unscoped path, unlike servers.
	url := c.compute.ServiceURL("servers", id, "os-interface")
	if _, err := c.compute.Get(ctx, url, &body, okGet()); err != nil {
		c.log.Debug("interface listing failed", "server_id", id, "error", err)
		return nil
	}
	return body.InterfaceAttachments
}

// serverGroupByMember scans the placement groups visible under a transient
// project-scoped token for one containing the instance; first match wins,
// in service-returned order. Any failure, including the project-scoped
// authentication itself, degrades to absent.
func (c *Client) serverGroupByMember(ctx context.Context, projectID, instanceID string) *nova.ServerGroup {
	token, err := c.session.TokenForProject(ctx, projectID)
	if err != nil {
		c.log.Debug("project-scope token failed; skipping server groups", "project_id", projectID, "error", err)
		return nil
	}

	var body struct {
		ServerGroups []nova.ServerGroup `json:"server_groups"`
	}
	url := c.compute.ServiceURL("os-server-groups") + "?all_projects=False"
	opts := &gophercloud.RequestOpts{
		OkCodes: []int{200},
		// Override the session token with the transient project-scoped one.
		MoreHeaders: map[string]string{"X-Auth-Token": token},
	}
	if _, err := c.compute.Get(ctx, url, &body, opts); err != nil {
		c.log.Debug("server group listing failed", "project_id", projectID, "error", err)
		return nil
	}

	for _, group := range body.ServerGroups {
		for _, member := range group.Members {
			if member == instanceID {
				return &group
			}
		}
	}
	return nil
}
