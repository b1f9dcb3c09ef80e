package network

import (
	"strconv"
	"time"
)

// Result is the outcome of an exchange. It is either an *HTTPResult or a
// *TransportError.
type Result interface {
	// Request returns the request that produced the result.
	Request() *Request
	// Elapsed is the time spent on the exchange.
	Elapsed() time.Duration

	isResult()
}

// HTTPResult is a completed exchange. Error statuses such as 404 or 500 are
// still completed exchanges.
type HTTPResult struct {
	Req *Request

	StatusCode int
	StatusText string
	// ResponseHeaders are normalised, see Fields.Normalized.
	ResponseHeaders Fields
	// RequestHeaders echo the headers the request was sent with.
	RequestHeaders Fields
	Body           Body
	Duration       time.Duration
}

func (r *HTTPResult) Request() *Request {
	return r.Req
}

func (r *HTTPResult) Elapsed() time.Duration {
	return r.Duration
}

// Status returns the status code and text, for example "404 Not Found".
func (r *HTTPResult) Status() string {
	if r.StatusText == "" {
		return strconv.Itoa(r.StatusCode)
	}
	return strconv.Itoa(r.StatusCode) + " " + r.StatusText
}

// IsErrorStatus reports whether the server answered with a status of 400 or
// above.
func (r *HTTPResult) IsErrorStatus() bool {
	return r.StatusCode >= 400
}

func (r *HTTPResult) isResult() {}

// FailureKind classifies why an exchange could not be completed.
type FailureKind string

const (
	FailureDNS      FailureKind = "dns"
	FailureRefused  FailureKind = "refused"
	FailureTimeout  FailureKind = "timeout"
	FailureCanceled FailureKind = "canceled"
	FailureTLS      FailureKind = "tls"
	FailureCORS     FailureKind = "cors"
	FailureRequest  FailureKind = "request"
	FailureNetwork  FailureKind = "network"
)

// TransportError is an exchange that never produced a response, because of
// name resolution, connection, CORS or cancellation failures.
type TransportError struct {
	Req *Request

	Kind     FailureKind
	Message  string
	Duration time.Duration
}

func (r *TransportError) Request() *Request {
	return r.Req
}

func (r *TransportError) Elapsed() time.Duration {
	return r.Duration
}

func (r *TransportError) isResult() {}
