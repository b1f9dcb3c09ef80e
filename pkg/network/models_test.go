package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input  string
		want   Method
		wantOK bool
	}{
		{"GET", MethodGet, true},
		{"post", MethodPost, true},
		{" Patch ", MethodPatch, true},
		{"OPTIONS", MethodOptions, true},
		{"TRACE", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseMethod(tt.input)
		assert.Equal(t, tt.wantOK, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestMethodSendsBody(t *testing.T) {
	for _, m := range Methods {
		want := m == MethodPost || m == MethodPut
		assert.Equal(t, want, m.SendsBody(), string(m))
	}
}

func TestHTTPResultStatus(t *testing.T) {
	r := &HTTPResult{StatusCode: 404, StatusText: "Not Found"}
	assert.Equal(t, "404 Not Found", r.Status())
	assert.True(t, r.IsErrorStatus())

	r = &HTTPResult{StatusCode: 204}
	assert.Equal(t, "204", r.Status())
	assert.False(t, r.IsErrorStatus())
}
