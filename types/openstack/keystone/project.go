package keystone

type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
