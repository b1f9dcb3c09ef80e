package browser

import "github.com/aholstenson/cors-inspector/pkg/progress"

type transportOptions struct {
	reporter   progress.Reporter
	origin     string
	browserBin string
}

type Option func(o *transportOptions)

func WithReporter(reporter progress.Reporter) Option {
	return func(o *transportOptions) {
		o.reporter = reporter
	}
}

// WithOrigin sets the page requests are made from. Cross-origin requests are
// subject to CORS relative to it.
func WithOrigin(origin string) Option {
	return func(o *transportOptions) {
		o.origin = origin
	}
}

// WithBrowserBin uses an installed browser instead of downloading one.
func WithBrowserBin(path string) Option {
	return func(o *transportOptions) {
		o.browserBin = path
	}
}
