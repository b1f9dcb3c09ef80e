package ui

import (
	"testing"
	"time"

	"github.com/aholstenson/cors-inspector/pkg/network"
	"github.com/stretchr/testify/assert"
)

func TestRenderHTTPResult(t *testing.T) {
	out := RenderResult(&network.HTTPResult{
		StatusCode: 404,
		StatusText: "Not Found",
		RequestHeaders: network.Fields{
			{Name: "Content-Type", Value: "application/json"},
		},
		ResponseHeaders: network.Fields{
			{Name: "access-control-allow-origin", Value: "*"},
		},
		Body:     network.FormatBody([]byte(`{"error":"missing"}`), "application/json"),
		Duration: 1500 * time.Microsecond,
	})

	assert.Contains(t, out, "404 Not Found")
	assert.Contains(t, out, "Request Headers")
	assert.Contains(t, out, "Content-Type: application/json")
	assert.Contains(t, out, "access-control-allow-origin: *")
	assert.Contains(t, out, "{\n  \"error\": \"missing\"\n}\n")
	assert.Contains(t, out, "json")
}

func TestRenderEmptyHeaders(t *testing.T) {
	out := RenderResult(&network.HTTPResult{
		StatusCode: 204,
		StatusText: "No Content",
		Body:       network.FormatBody(nil, ""),
	})

	assert.Contains(t, out, "(none)")
	assert.Contains(t, out, "204 No Content")
}

func TestRenderTransportError(t *testing.T) {
	out := RenderResult(&network.TransportError{
		Kind:    network.FailureDNS,
		Message: "lookup nope.invalid: no such host",
	})

	assert.Contains(t, out, "Error: lookup nope.invalid: no such host")
	assert.Contains(t, out, "dns")
	assert.NotContains(t, out, "Status:")
}

func TestRenderRequest(t *testing.T) {
	body := `{"a":1}`
	out := RenderRequest(&network.Request{
		Method:  network.MethodPost,
		URL:     "http://localhost:5000/api/items",
		Headers: network.Fields{{Name: "X-Test", Value: "1"}},
		Body:    &body,
	})

	assert.Contains(t, out, "POST")
	assert.Contains(t, out, "http://localhost:5000/api/items")
	assert.Contains(t, out, "X-Test: 1")
	assert.Contains(t, out, body)
}
