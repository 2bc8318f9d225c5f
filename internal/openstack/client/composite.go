package client

import (
	"context"
	"sync"

	"github.com/osinfra/openstack-mcp/types/openstack/nova"
	"github.com/osinfra/openstack-mcp/types/openstack/neutron"
	"github.com/osinfra/openstack-mcp/types/result"
)

// GetServerComposite aggregates one instance's data across all services
// into a normalized record. Only the primary server lookup (and the
// authentication it depends on) can fail the operation; every enrichment
// degrades its own field and the fetch carries on.
func (c *Client) GetServerComposite(ctx context.Context, instanceID string) (*result.Composite, error) {
	// The token refresh must finish before the concurrent fan-out below so
	// the enrichment branches only ever read the cached token.
	if _, err := c.session.EnsureToken(ctx); err != nil {
		return nil, err
	}

	server, raw, err := c.serverByID(ctx, instanceID)
	if err != nil {
		return nil, err
	}

	resolvedID := server.ID
	if resolvedID == "" {
		resolvedID = instanceID
	}
	projectID := server.TenantID
	if projectID == "" {
		projectID = server.ProjectID
	}
	if projectID == "" {
		projectID = c.creds.ProjectID
	}
	imageID := server.Image.ID

	// The enrichments depend only on the server record and write disjoint
	// fields, so they run concurrently.
	var (
		wg          sync.WaitGroup
		imageName   *string
		interfaces  []result.Interface
		volumes     []result.Volume
		serverGroup *result.ServerGroup
		projectName *string
	)

	if imageID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if img := c.imageByID(ctx, imageID); img != nil {
				imageName = img.Name
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		attachments := c.serverInterfaces(ctx, instanceID)
		interfaces = make([]result.Interface, 0, len(attachments))
		for _, attachment := range attachments {
			var port *neutron.Port
			if attachment.PortID != "" {
				port = c.portByID(ctx, attachment.PortID)
			}
			interfaces = append(interfaces, mergeInterface(attachment, port))
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		volumes = make([]result.Volume, 0, len(server.VolumesAttached))
		for _, attached := range server.VolumesAttached {
			if attached.ID == "" {
				continue
			}
			volumes = append(volumes, c.volumeRecord(ctx, attached.ID))
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if group := c.serverGroupByMember(ctx, projectID, resolvedID); group != nil {
			serverGroup = &result.ServerGroup{ID: group.ID, Name: group.Name}
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		projectName = c.projectNameByID(ctx, projectID)
	}()

	wg.Wait()

	return &result.Composite{
		InstanceID: resolvedID,
		Name:       server.Name,
		Status:     server.Status,
		Project:    result.Project{ID: projectID, Name: projectName},
		Flavor: result.Flavor{
			ID:   strptr(server.Flavor.ID),
			Name: strptr(server.Flavor.DisplayName()),
		},
		Image: result.Image{
			ID:   strptr(imageID),
			Name: imageName,
		},
		BootFromVolume:     len(server.VolumesAttached) > 0 && imageID == "",
		Volumes:            volumes,
		Interfaces:         interfaces,
		AvailabilityZone:   server.AvailabilityZone,
		Host:               server.Host,
		HypervisorHostname: server.HypervisorHostname,
		SecurityGroups:     securityGroupNames(server.SecurityGroups),
		Tags:               orEmpty(server.Tags),
		Metadata:           orEmptyMap(server.Metadata),
		Created:            server.Created,
		Updated:            server.Updated,
		ServerGroup:        serverGroup,
		Raw:                result.Raw{Nova: raw},
	}, nil
}

// mergeInterface combines the server's attachment view with an optional
// port lookup. The port only fills gaps; it never overwrites values the
// attachment already supplied. Allowed address pairs exist only on the
// port side.
func mergeInterface(attachment nova.InterfaceAttachment, port *neutron.Port) result.Interface {
	iface := result.Interface{
		PortID:              strptr(attachment.PortID),
		NetID:               strptr(attachment.NetID),
		MAC:                 strptr(attachment.MACAddr),
		FixedIPs:            make([]string, 0, len(attachment.FixedIPs)),
		AllowedAddressPairs: []string{},
	}
	for _, ip := range attachment.FixedIPs {
		if ip.IPAddress != "" {
			iface.FixedIPs = append(iface.FixedIPs, ip.IPAddress)
		}
	}
	if port == nil {
		return iface
	}

	for _, pair := range port.AllowedAddressPairs {
		if pair.IPAddress != "" {
			iface.AllowedAddressPairs = append(iface.AllowedAddressPairs, pair.IPAddress)
		}
	}
	if len(iface.FixedIPs) == 0 {
		for _, ip := range port.FixedIPs {
			if ip.IPAddress != "" {
				iface.FixedIPs = append(iface.FixedIPs, ip.IPAddress)
			}
		}
	}
	if iface.MAC == nil {
		iface.MAC = strptr(port.MACAddress)
	}
	if iface.NetID == nil {
		iface.NetID = strptr(port.NetworkID)
	}
	return iface
}

// volumeRecord resolves one attached volume; on lookup failure the record
// degrades to just the ID rather than being dropped. The device path comes
// from the volume's own attachment list, first entry.
func (c *Client) volumeRecord(ctx context.Context, id string) result.Volume {
	volume := c.volumeByID(ctx, id)
	if volume == nil {
		return result.Volume{ID: id}
	}
	record := result.Volume{
		ID:       volume.ID,
		Name:     &volume.Name,
		SizeGB:   &volume.Size,
		Status:   &volume.Status,
		Bootable: boolptr(volume.Bootable == "true"),
	}
	if record.ID == "" {
		record.ID = id
	}
	if len(volume.Attachments) > 0 && volume.Attachments[0].Device != "" {
		record.Device = &volume.Attachments[0].Device
	}
	return record
}

func securityGroupNames(groups []nova.SecurityGroup) []string {
	names := make([]string, 0, len(groups))
	for _, group := range groups {
		if group.Name != "" {
			names = append(names, group.Name)
		}
	}
	return names
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func boolptr(b bool) *bool {
	return &b
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
