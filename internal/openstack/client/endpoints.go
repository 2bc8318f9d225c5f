package client

import (
	"fmt"
	"strings"
)

// Endpoints are the per-service base URLs. The deployment model uses fixed,
// well-known ports on a single host rather than catalog discovery:
//
//	identity       http://{host}:5000/v3
//	compute        http://{host}:8774/v2.1
//	network        http://{host}:9696/v2.0
//	block-storage  http://{host}:8776/v3/{project_id}
//	image          http://{host}:9292/v2
type Endpoints struct {
	Identity     string
	Compute      string
	Network      string
	BlockStorage string
	Image        string
}

// ServiceEndpoints derives the base URLs from the host. The host may carry
// an explicit http:// or https:// prefix; bare hosts default to http.
func ServiceEndpoints(host, projectID string) Endpoints {
	scheme := "http"
	if i := strings.Index(host, "://"); i >= 0 {
		scheme = host[:i]
		host = host[i+3:]
	}
	host = strings.TrimSuffix(host, "/")

	base := func(port int, path string) string {
		return fmt.Sprintf("%s://%s:%d/%s/", scheme, host, port, path)
	}
	return Endpoints{
		Identity:     base(5000, "v3"),
		Compute:      base(8774, "v2.1"),
		Network:      base(9696, "v2.0"),
		BlockStorage: base(8776, "v3/"+projectID),
		Image:        base(9292, "v2"),
	}
}
