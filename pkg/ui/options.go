package ui

import "github.com/aholstenson/cors-inspector/pkg/catalog"

type modelOptions struct {
	catalog  catalog.Catalog
	origin   string
	activity <-chan string
}

type Option func(o *modelOptions)

// WithCatalog replaces the endpoints listed in the "Try it" panel.
func WithCatalog(c catalog.Catalog) Option {
	return func(o *modelOptions) {
		o.catalog = c
	}
}

// WithOrigin sets the origin catalog entries are resolved against.
func WithOrigin(origin string) Option {
	return func(o *modelOptions) {
		o.origin = origin
	}
}

// WithActivity streams lines into the activity panel until the channel is
// closed.
func WithActivity(lines <-chan string) Option {
	return func(o *modelOptions) {
		o.activity = lines
	}
}
