package neutron

// Port is the subset of a networking port used to enrich a server's
// interface attachments.
type Port struct {
	// UUID for the port.
	ID string `json:"id"`

	// Network that this port is associated with.
	NetworkID string `json:"network_id"`

	// MAC address of the port.
	MACAddress string `json:"mac_address"`

	// Specifies IP addresses for the port thus associating the port itself with
	// the subnets where the IP addresses are picked from
	FixedIPs []IP `json:"fixed_ips"`

	// Additional address pairs allowed on the port beyond its fixed IPs.
	AllowedAddressPairs []AddressPair `json:"allowed_address_pairs"`

	// Identifies the device (e.g., virtual server) using this port.
	DeviceID string `json:"device_id"`
}

// IP is a sub-struct that represents an individual IP.
type IP struct {
	SubnetID  string `json:"subnet_id"`
	IPAddress string `json:"ip_address,omitempty"`
}

type AddressPair struct {
	IPAddress  string `json:"ip_address"`
	MACAddress string `json:"mac_address,omitempty"`
}
