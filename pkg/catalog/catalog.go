// Package catalog contains the demo endpoints offered as quick-try entries and
// the rules for resolving them against the origin the API is served from.
package catalog

import (
	"strings"

	"github.com/aholstenson/cors-inspector/pkg/network"
	"github.com/rosshhun/gonormalizer"
)

// DefaultPath is the path of the default target on the API origin.
const DefaultPath = "/api/items"

// Endpoint is a demo request that can be loaded into the composer.
type Endpoint struct {
	Name   string
	Method network.Method
	// URL is either absolute or a path relative to the API origin.
	URL string
	// Body is a template for the request body, empty for methods without one.
	Body string
}

// Catalog is an ordered list of endpoints.
type Catalog []Endpoint

// Default is the catalog of the demo items API.
var Default = Catalog{
	{Name: "Get All Items", Method: network.MethodGet, URL: "/api/items"},
	{Name: "Get Single Item", Method: network.MethodGet, URL: "/api/items/1"},
	{
		Name:   "Create Item",
		Method: network.MethodPost,
		URL:    "/api/items",
		Body:   "{\n  \"name\": \"New Item\",\n  \"description\": \"This is a new item\"\n}",
	},
	{
		Name:   "Update Item",
		Method: network.MethodPut,
		URL:    "/api/items/1",
		Body:   "{\n  \"name\": \"Updated Item\",\n  \"description\": \"This item was updated\"\n}",
	},
	{Name: "Delete Item", Method: network.MethodDelete, URL: "/api/items/1"},
	{Name: "CORS Test", Method: network.MethodGet, URL: "/api/cors-test"},
	{Name: "Echo Headers", Method: network.MethodGet, URL: "/api/echo-headers"},
}

// Lookup finds an endpoint by name, ignoring case.
func (c Catalog) Lookup(name string) (Endpoint, bool) {
	for _, e := range c {
		if strings.EqualFold(e.Name, strings.TrimSpace(name)) {
			return e, true
		}
	}
	return Endpoint{}, false
}

// Match returns the first endpoint using method whose resolved URL addresses
// the same resource as target.
func (c Catalog) Match(method network.Method, target string, origin string) (Endpoint, bool) {
	want := normalize(target)
	for _, e := range c {
		if e.Method == method && normalize(Resolve(origin, e.URL)) == want {
			return e, true
		}
	}
	return Endpoint{}, false
}

// Resolve returns the full URL for target. Paths starting with a slash are
// joined to origin, anything else is returned as is.
func Resolve(origin string, target string) string {
	if !strings.HasPrefix(target, "/") {
		return target
	}
	return strings.TrimRight(origin, "/") + target
}

// DefaultTarget is the URL the composer starts out with.
func DefaultTarget(origin string) string {
	return Resolve(origin, DefaultPath)
}

func normalize(url string) string {
	nurl, err := gonormalizer.Normalize(url)
	if err != nil {
		// Compare the URL as entered if it can't be normalized
		return url
	}
	return nurl
}
