// Package result defines the normalized record produced by a composite
// instance fetch, and the shapes of its sub-objects. Nullable scalars are
// pointers so absent values serialize as JSON null.
package result

// Composite is the unified per-instance record merged from the identity,
// compute, networking, block-storage and image services.
type Composite struct {
	InstanceID         string            `json:"instance_id"`
	Name               *string           `json:"name"`
	Status             *string           `json:"status"`
	Project            Project           `json:"project"`
	Flavor             Flavor            `json:"flavor"`
	Image              Image             `json:"image"`
	BootFromVolume     bool              `json:"boot_from_volume"`
	Volumes            []Volume          `json:"volumes"`
	Interfaces         []Interface       `json:"interfaces"`
	AvailabilityZone   *string           `json:"availability_zone"`
	Host               *string           `json:"host"`
	HypervisorHostname *string           `json:"hypervisor_hostname"`
	SecurityGroups     []string          `json:"security_groups"`
	Tags               []string          `json:"tags"`
	Metadata           map[string]string `json:"metadata"`
	Created            *string           `json:"created"`
	Updated            *string           `json:"updated"`
	ServerGroup        *ServerGroup      `json:"server_group"`
	Raw                Raw               `json:"raw"`
}

type Project struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

// Flavor carries only the embedded reference; the numeric fields are never
// filled because no separate flavor-detail lookup is performed.
type Flavor struct {
	ID     *string `json:"id"`
	Name   *string `json:"name"`
	VCPUs  *int    `json:"vcpus"`
	RAMMB  *int    `json:"ram_mb"`
	DiskGB *int    `json:"disk_gb"`
}

type Image struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// Volume is one attached volume. When the volume-detail lookup fails the
// record degrades to the bare ID and every other field is omitted.
type Volume struct {
	ID       string  `json:"id"`
	Name     *string `json:"name,omitempty"`
	SizeGB   *int    `json:"size_gb,omitempty"`
	Status   *string `json:"status,omitempty"`
	Bootable *bool   `json:"bootable,omitempty"`
	Device   *string `json:"device,omitempty"`
}

// Interface is one network interface, merged from the server's attachment
// view and an optional port lookup. AllowedAddressPairs only ever comes
// from the port.
type Interface struct {
	PortID              *string  `json:"port_id"`
	NetID               *string  `json:"net_id"`
	MAC                 *string  `json:"mac"`
	FixedIPs            []string `json:"fixed_ips"`
	AllowedAddressPairs []string `json:"allowed_address_pairs"`
}

type ServerGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Raw embeds the untouched compute document for callers that need fields
// not yet normalized.
type Raw struct {
	Nova map[string]any `json:"nova"`
}
