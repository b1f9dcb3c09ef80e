package network

import (
	"net/http"
	"strconv"
	"strings"
)

// Method is an HTTP method that can be selected when composing a request.
type Method string

const (
	MethodGet     Method = http.MethodGet
	MethodPost    Method = http.MethodPost
	MethodPut     Method = http.MethodPut
	MethodDelete  Method = http.MethodDelete
	MethodOptions Method = http.MethodOptions
	MethodPatch   Method = http.MethodPatch
	MethodHead    Method = http.MethodHead
)

// Methods lists the supported methods in the order they are offered to the
// user.
var Methods = []Method{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodOptions,
	MethodPatch,
	MethodHead,
}

// ParseMethod upper-cases s and returns the matching supported method.
func ParseMethod(s string) (Method, bool) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	for _, supported := range Methods {
		if m == supported {
			return m, true
		}
	}
	return "", false
}

// SendsBody reports whether a request using this method carries the composed
// body. Only POST and PUT do, PATCH requests are sent without one.
func (m Method) SendsBody() bool {
	return m == MethodPost || m == MethodPut
}

// Request is an immutable description of a request about to be sent. A new
// Request is produced for every send and must not be modified afterwards.
type Request struct {
	// Method used for the request.
	Method Method
	// URL being requested, as entered by the user.
	URL string
	// Headers sent with the request, in the order they were merged.
	Headers Fields
	// Body is nil when the method does not carry a body.
	Body *string
}

// HasBody reports whether the request carries a body.
func (r *Request) HasBody() bool {
	return r.Body != nil
}

// Response is a completed exchange as returned by a transport, before it is
// normalised into a result.
type Response struct {
	// URL of the response.
	URL string
	// StatusCode is the HTTP status code of the response, such as 200, 301,
	// 404 etc.
	StatusCode int
	// StatusPhrase is the phrase associated with the HTTP status code.
	StatusPhrase string
	// Headers as received.
	Headers Fields
	// Body is the full response body.
	Body []byte
}

// StatusLine returns the status code followed by its phrase.
func (r *Response) StatusLine() string {
	if r.StatusPhrase == "" {
		return strconv.Itoa(r.StatusCode)
	}
	return strconv.Itoa(r.StatusCode) + " " + r.StatusPhrase
}
