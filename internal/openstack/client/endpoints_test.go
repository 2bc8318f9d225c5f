package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceEndpoints(t *testing.T) {
	eps := ServiceEndpoints("10.0.0.5", "proj-1")
	assert.Equal(t, "http://10.0.0.5:5000/v3/", eps.Identity)
	assert.Equal(t, "http://10.0.0.5:8774/v2.1/", eps.Compute)
	assert.Equal(t, "http://10.0.0.5:9696/v2.0/", eps.Network)
	assert.Equal(t, "http://10.0.0.5:8776/v3/proj-1/", eps.BlockStorage)
	assert.Equal(t, "http://10.0.0.5:9292/v2/", eps.Image)
}

func TestServiceEndpointsExplicitScheme(t *testing.T) {
	eps := ServiceEndpoints("https://cloud.example.org", "proj-1")
	assert.Equal(t, "https://cloud.example.org:5000/v3/", eps.Identity)
	assert.Equal(t, "https://cloud.example.org:9292/v2/", eps.Image)

	eps = ServiceEndpoints("http://cloud.example.org/", "proj-1")
	assert.Equal(t, "http://cloud.example.org:8774/v2.1/", eps.Compute)
}
