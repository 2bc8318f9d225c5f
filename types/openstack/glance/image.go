package glance

// Image detail documents are returned flat, not nested under a key.
type Image struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}
