package exchange

import (
	"net/http"
	"time"

	"github.com/aholstenson/cors-inspector/pkg/progress"
)

type executorOptions struct {
	transport Transport
	reporter  progress.Reporter
	timeout   time.Duration
}

type Option func(o *executorOptions)

// WithTransport replaces the default net/http transport.
func WithTransport(transport Transport) Option {
	return func(o *executorOptions) {
		o.transport = transport
	}
}

func WithReporter(reporter progress.Reporter) Option {
	return func(o *executorOptions) {
		o.reporter = reporter
	}
}

// WithTimeout bounds every exchange, including reading the body. Zero means
// the exchange may wait forever unless its context is canceled.
func WithTimeout(timeout time.Duration) Option {
	return func(o *executorOptions) {
		o.timeout = timeout
	}
}

type httpOptions struct {
	client          *http.Client
	followRedirects bool
}

type HTTPOption func(o *httpOptions)

// WithClient sends requests using client instead of a new one.
func WithClient(client *http.Client) HTTPOption {
	return func(o *httpOptions) {
		o.client = client
	}
}

// WithoutRedirects returns redirect responses as results instead of
// following them.
func WithoutRedirects() HTTPOption {
	return func(o *httpOptions) {
		o.followRedirects = false
	}
}
