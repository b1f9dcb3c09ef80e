package network

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFieldsSet(t *testing.T) {
	var f Fields
	f.Set("Content-Type", "application/json")
	f.Set("X-Trace", "1")
	f.Set("content-type", "text/plain")

	want := Fields{
		{Name: "content-type", Value: "text/plain"},
		{Name: "X-Trace", Value: "1"},
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Fatal(diff)
	}
}

func TestFieldsSetExact(t *testing.T) {
	var f Fields
	f.SetExact("Content-Type", "application/json")
	f.SetExact("content-type", "text/plain")
	f.SetExact("Content-Type", "text/html")

	want := Fields{
		{Name: "Content-Type", Value: "text/html"},
		{Name: "content-type", Value: "text/plain"},
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Fatal(diff)
	}
}

func TestFieldsGet(t *testing.T) {
	f := Fields{{Name: "Content-Type", Value: "application/json"}}

	v, ok := f.Get("content-type")
	assert.True(t, ok)
	assert.Equal(t, "application/json", v)

	_, ok = f.Get("Accept")
	assert.False(t, ok)
}

func TestFieldsClone(t *testing.T) {
	f := Fields{{Name: "A", Value: "1"}}
	clone := f.Clone()
	clone[0].Value = "2"

	assert.Equal(t, "1", f[0].Value)
	assert.Nil(t, Fields(nil).Clone())
}

func TestFieldsHeader(t *testing.T) {
	f := Fields{
		{Name: "Content-Type", Value: "application/json"},
		{Name: "content-type", Value: "text/plain"},
		{Name: "X-Trace", Value: "1"},
	}

	want := http.Header{
		"Content-Type": {"application/json", "text/plain"},
		"X-Trace":      {"1"},
	}
	if diff := cmp.Diff(want, f.Header()); diff != "" {
		t.Fatal(diff)
	}
}

func TestFieldsNormalized(t *testing.T) {
	f := Fields{
		{Name: "Vary", Value: "Origin"},
		{Name: "Access-Control-Allow-Origin", Value: "*"},
		{Name: "vary", Value: "Accept"},
		{Name: "Content-Type", Value: "application/json"},
	}

	want := Fields{
		{Name: "access-control-allow-origin", Value: "*"},
		{Name: "content-type", Value: "application/json"},
		{Name: "vary", Value: "Accept"},
	}
	if diff := cmp.Diff(want, f.Normalized()); diff != "" {
		t.Fatal(diff)
	}
}

func TestFieldsFromHeader(t *testing.T) {
	h := http.Header{"Vary": {"Origin", "Accept"}}

	want := Fields{
		{Name: "vary", Value: "Accept"},
	}
	if diff := cmp.Diff(want, FieldsFromHeader(h).Normalized()); diff != "" {
		t.Fatal(diff)
	}
}
