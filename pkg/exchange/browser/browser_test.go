package browser

import (
	"testing"

	"github.com/aholstenson/cors-inspector/pkg/network"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFetchResult(t *testing.T) {
	data := `{
		"url": "http://localhost:5000/api/items",
		"status": 404,
		"statusText": "NOT FOUND",
		"headers": [["content-type", "application/json"], ["vary", "Origin"]],
		"body": "{\"error\":\"Item not found\"}"
	}`

	res, err := decodeFetchResult(data)
	require.NoError(t, err)

	want := &network.Response{
		URL:          "http://localhost:5000/api/items",
		StatusCode:   404,
		StatusPhrase: "NOT FOUND",
		Headers: network.Fields{
			{Name: "content-type", Value: "application/json"},
			{Name: "vary", Value: "Origin"},
		},
		Body: []byte(`{"error":"Item not found"}`),
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Fatal(diff)
	}
}

func TestDecodeFetchResultInvalid(t *testing.T) {
	_, err := decodeFetchResult("undefined")
	assert.Error(t, err)
}

func TestHeaderPairs(t *testing.T) {
	pairs := headerPairs(network.Fields{
		{Name: "Content-Type", Value: "application/json"},
		{Name: "content-type", Value: "text/plain"},
	})

	assert.Equal(t, [][2]string{
		{"Content-Type", "application/json"},
		{"content-type", "text/plain"},
	}, pairs)
}
