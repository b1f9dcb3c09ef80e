// Package exchange sends request descriptors and turns whatever happens into
// a result: an HTTP result when any response was obtained, or a transport
// error when none was.
package exchange

import (
	"context"
	"net/http"
	"time"

	"github.com/aholstenson/cors-inspector/pkg/network"
	"github.com/aholstenson/cors-inspector/pkg/progress"
)

// Transport performs the network part of an exchange. It must return an
// error only when no response could be obtained or its body could not be
// read in full.
type Transport interface {
	Exchange(ctx context.Context, req *network.Request) (*network.Response, error)
}

// Executor sends requests through a transport and classifies the outcome.
// Send may be called concurrently, calls share no state.
type Executor struct {
	transport Transport
	reporter  progress.Reporter
	timeout   time.Duration
}

func NewExecutor(opts ...Option) *Executor {
	options := &executorOptions{
		reporter: progress.NewEmptyReporter(),
	}
	for _, opt := range opts {
		opt(options)
	}

	transport := options.transport
	if transport == nil {
		transport = NewHTTPTransport()
	}

	return &Executor{
		transport: transport,
		reporter:  options.reporter,
		timeout:   options.timeout,
	}
}

// Send performs the exchange described by req. It never returns nil and
// never retries; failures are reported as a *network.TransportError.
func (e *Executor) Send(ctx context.Context, req *network.Request) network.Result {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	e.reporter.Request(req)

	start := time.Now()
	res, err := e.transport.Exchange(ctx, req)
	elapsed := time.Since(start)

	var result network.Result
	if err != nil {
		result = &network.TransportError{
			Req:      req,
			Kind:     Classify(err),
			Message:  err.Error(),
			Duration: elapsed,
		}
	} else {
		result = newHTTPResult(req, res, elapsed)
	}

	e.reporter.Result(result)
	return result
}

func newHTTPResult(req *network.Request, res *network.Response, elapsed time.Duration) *network.HTTPResult {
	headers := res.Headers.Normalized()
	contentType, _ := headers.Get("Content-Type")

	statusText := res.StatusPhrase
	if statusText == "" {
		statusText = http.StatusText(res.StatusCode)
	}

	return &network.HTTPResult{
		Req:             req,
		StatusCode:      res.StatusCode,
		StatusText:      statusText,
		ResponseHeaders: headers,
		RequestHeaders:  req.Headers.Clone(),
		Body:            network.FormatBody(res.Body, contentType),
		Duration:        elapsed,
	}
}
