// Package composer holds the editable state of the request being built and
// turns it into request descriptors on demand.
package composer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aholstenson/cors-inspector/pkg/catalog"
	"github.com/aholstenson/cors-inspector/pkg/network"
	"github.com/google/uuid"
)

// ContentTypeJSON is the Content-Type every request starts out with.
const ContentTypeJSON = "application/json"

var (
	ErrUnsupportedMethod = errors.New("unsupported method")
	ErrUnknownEntry      = errors.New("unknown header entry")
)

// HeaderEntry is a custom header as typed by the user. Entries are kept even
// when incomplete, they are only skipped when a request is built.
type HeaderEntry struct {
	ID    string
	Name  string
	Value string
}

// Valid reports whether the entry has both a name and a value once trimmed.
func (e HeaderEntry) Valid() bool {
	return strings.TrimSpace(e.Name) != "" && strings.TrimSpace(e.Value) != ""
}

// Composer is the request intent being edited. It is not safe for concurrent
// use; the presentation layer owns it.
type Composer struct {
	method  network.Method
	target  string
	body    string
	entries []HeaderEntry

	exactHeaderNames bool
}

func New(opts ...Option) *Composer {
	c := &Composer{
		method: network.MethodGet,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Composer) Method() network.Method {
	return c.method
}

// SetMethod replaces the current method. Methods outside network.Methods are
// rejected and leave the composer unchanged.
func (c *Composer) SetMethod(method string) error {
	m, ok := network.ParseMethod(method)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}
	c.method = m
	return nil
}

func (c *Composer) Target() string {
	return c.target
}

// SetTarget replaces the target URL. It is not validated, a malformed URL
// fails when the request is sent.
func (c *Composer) SetTarget(url string) {
	c.target = url
}

func (c *Composer) Body() string {
	return c.body
}

// SetBody replaces the body text. It is kept for every method but only sent
// for methods that carry a body.
func (c *Composer) SetBody(text string) {
	c.body = text
}

// AddHeaderEntry appends a header entry and returns its ID.
func (c *Composer) AddHeaderEntry(name, value string) string {
	id := uuid.NewString()
	c.entries = append(c.entries, HeaderEntry{
		ID:    id,
		Name:  name,
		Value: value,
	})
	return id
}

// UpdateHeaderEntry replaces the name and value of an existing entry.
func (c *Composer) UpdateHeaderEntry(id, name, value string) error {
	i := c.find(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, id)
	}
	c.entries[i].Name = name
	c.entries[i].Value = value
	return nil
}

func (c *Composer) RemoveHeaderEntry(id string) error {
	i := c.find(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, id)
	}
	c.entries = append(c.entries[:i:i], c.entries[i+1:]...)
	return nil
}

// HeaderEntries returns a copy of the entries in insertion order.
func (c *Composer) HeaderEntries() []HeaderEntry {
	entries := make([]HeaderEntry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// Load replaces method, target and body with a catalog endpoint, resolving
// its URL against origin. Header entries are left alone.
func (c *Composer) Load(endpoint catalog.Endpoint, origin string) {
	c.method = endpoint.Method
	c.target = catalog.Resolve(origin, endpoint.URL)
	c.body = endpoint.Body
}

// Snapshot builds a request from the current state. It starts from a JSON
// Content-Type, overlays the valid header entries in order so that later
// entries win, and only includes the body for POST and PUT.
func (c *Composer) Snapshot() *network.Request {
	headers := network.Fields{
		{Name: "Content-Type", Value: ContentTypeJSON},
	}
	for _, e := range c.entries {
		if !e.Valid() {
			continue
		}

		name := strings.TrimSpace(e.Name)
		value := strings.TrimSpace(e.Value)
		if c.exactHeaderNames {
			headers.SetExact(name, value)
		} else {
			headers.Set(name, value)
		}
	}

	req := &network.Request{
		Method:  c.method,
		URL:     c.target,
		Headers: headers,
	}
	if c.method.SendsBody() {
		body := c.body
		req.Body = &body
	}
	return req
}

func (c *Composer) find(id string) int {
	for i, e := range c.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
