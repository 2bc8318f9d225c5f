package cinder

// Volume is the subset of a block-storage volume used for the composite
// record. Bootable is a string on the wire ("true"/"false").
type Volume struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Size        int          `json:"size"`
	Status      string       `json:"status"`
	Bootable    string       `json:"bootable"`
	Attachments []Attachment `json:"attachments"`
}

// Attachment is one entry of the volume's own attachment list, which may
// differ from the compute service's view of the same volume.
type Attachment struct {
	ServerID string `json:"server_id"`
	Device   string `json:"device"`
}
