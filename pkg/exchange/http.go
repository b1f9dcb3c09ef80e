package exchange

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/aholstenson/cors-inspector/pkg/network"
)

// ErrInvalidRequest is returned when a descriptor can't be turned into an
// HTTP request, most often because the URL is malformed.
var ErrInvalidRequest = errors.New("invalid request")

// HTTPTransport performs exchanges with net/http. It does not enforce CORS,
// see the browser package for that.
type HTTPTransport struct {
	client *http.Client
}

func NewHTTPTransport(opts ...HTTPOption) *HTTPTransport {
	options := &httpOptions{
		followRedirects: true,
	}
	for _, opt := range opts {
		opt(options)
	}

	client := options.client
	if client == nil {
		client = &http.Client{}
	}
	if !options.followRedirects {
		c := *client
		c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
		client = &c
	}

	return &HTTPTransport{
		client: client,
	}
}

func (t *HTTPTransport) Exchange(ctx context.Context, req *network.Request) (*network.Response, error) {
	var body io.Reader
	if req.HasBody() {
		body = strings.NewReader(*req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err.Error())
	}

	httpReq.Header = req.Headers.Header()
	if host := httpReq.Header.Get("Host"); host != "" {
		// net/http ignores Host in the header map
		httpReq.Host = host
	}

	res, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}

	defer func() { _ = res.Body.Close() }()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	url := req.URL
	if res.Request != nil && res.Request.URL != nil {
		url = res.Request.URL.String()
	}

	return &network.Response{
		URL:          url,
		StatusCode:   res.StatusCode,
		StatusPhrase: statusPhrase(res),
		Headers:      network.FieldsFromHeader(res.Header),
		Body:         b,
	}, nil
}

// statusPhrase extracts the reason phrase from a status line such as
// "404 Not Found".
func statusPhrase(res *http.Response) string {
	phrase := strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode))
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		phrase = http.StatusText(res.StatusCode)
	}
	return phrase
}

var _ Transport = &HTTPTransport{}
