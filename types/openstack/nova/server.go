package nova

import "encoding/json"

type Server struct {
	ID        string  `json:"id"`
	Name      *string `json:"name"`
	Status    *string `json:"status"`
	TenantID  string  `json:"tenant_id"`
	ProjectID string  `json:"project_id"`

	Flavor FlavorRef `json:"flavor"`
	Image  ImageRef  `json:"image"`

	AvailabilityZone   *string `json:"OS-EXT-AZ:availability_zone"`
	Host               *string `json:"OS-EXT-SRV-ATTR:host"`
	HypervisorHostname *string `json:"OS-EXT-SRV-ATTR:hypervisor_hostname"`

	SecurityGroups []SecurityGroup   `json:"security_groups"`
	Tags           []string          `json:"tags"`
	Metadata       map[string]string `json:"metadata"`

	Created *string `json:"created"`
	Updated *string `json:"updated"`

	VolumesAttached []VolumeAttachment `json:"os-extended-volumes:volumes_attached"`
}

// FlavorRef is the flavor reference embedded in a server document. With
// compute microversion >= 2.47 the flavor name arrives as original_name.
type FlavorRef struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	OriginalName string `json:"original_name"`
}

// DisplayName prefers original_name over name.
func (f FlavorRef) DisplayName() string {
	if f.OriginalName != "" {
		return f.OriginalName
	}
	return f.Name
}

// ImageRef is the image reference embedded in a server document. Compute
// returns the empty string instead of an object for boot-from-volume
// servers, so decoding has to tolerate both shapes.
type ImageRef struct {
	ID string `json:"id"`
}

func (r *ImageRef) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		*r = ImageRef{}
		return nil
	}
	type ref ImageRef
	var v ref
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = ImageRef(v)
	return nil
}

type SecurityGroup struct {
	Name string `json:"name"`
}

type VolumeAttachment struct {
	ID string `json:"id"`
}

// InterfaceAttachment is one entry of a server's os-interface listing.
type InterfaceAttachment struct {
	PortID   string    `json:"port_id"`
	NetID    string    `json:"net_id"`
	MACAddr  string    `json:"mac_addr"`
	FixedIPs []FixedIP `json:"fixed_ips"`
}

type FixedIP struct {
	SubnetID  string `json:"subnet_id"`
	IPAddress string `json:"ip_address"`
}

type ServerGroup struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
}
