package catalog

import (
	"testing"

	"github.com/aholstenson/cors-inspector/pkg/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		target string
		want   string
	}{{
		name:   "relative path",
		origin: "http://localhost:5000",
		target: "/api/items",
		want:   "http://localhost:5000/api/items",
	}, {
		name:   "origin with trailing slash",
		origin: "https://example.com/",
		target: "/api/items/1",
		want:   "https://example.com/api/items/1",
	}, {
		name:   "absolute url is kept",
		origin: "http://localhost:5000",
		target: "https://other.example/api",
		want:   "https://other.example/api",
	}, {
		name:   "unrelated text is kept",
		origin: "http://localhost:5000",
		target: "api/items",
		want:   "api/items",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.origin, tt.target))
		})
	}
}

func TestDefaultTarget(t *testing.T) {
	assert.Equal(t, "https://host/api/items", DefaultTarget("https://host"))
}

func TestDefaultCatalog(t *testing.T) {
	require.Len(t, Default, 7)
	for _, e := range Default {
		if e.Body != "" {
			assert.True(t, e.Method.SendsBody(), e.Name)
		}
	}
}

func TestLookup(t *testing.T) {
	e, ok := Default.Lookup("create item")
	require.True(t, ok)
	assert.Equal(t, network.MethodPost, e.Method)
	assert.Equal(t, "/api/items", e.URL)

	_, ok = Default.Lookup("Missing")
	assert.False(t, ok)
}

func TestMatch(t *testing.T) {
	origin := "http://localhost:5000"

	e, ok := Default.Match(network.MethodGet, "http://localhost:5000/api/items/1", origin)
	require.True(t, ok)
	assert.Equal(t, "Get Single Item", e.Name)

	e, ok = Default.Match(network.MethodPost, "http://localhost:5000/api/items", origin)
	require.True(t, ok)
	assert.Equal(t, "Create Item", e.Name)

	_, ok = Default.Match(network.MethodPatch, "http://localhost:5000/api/items", origin)
	assert.False(t, ok)

	_, ok = Default.Match(network.MethodGet, "http://localhost:5000/api/unknown", origin)
	assert.False(t, ok)
}
