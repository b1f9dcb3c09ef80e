// Package browser performs exchanges with fetch() inside a headless Chromium,
// so that the browser's CORS rules apply exactly as they would for a page
// served from the configured origin.
package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aholstenson/cors-inspector/pkg/exchange"
	"github.com/aholstenson/cors-inspector/pkg/network"
	"github.com/aholstenson/cors-inspector/pkg/progress"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/utils"
	"github.com/go-rod/stealth"
)

// fetchJS runs the request and hands back a JSON string, the headers as
// name/value pairs so repeated names survive.
const fetchJS = `async (method, url, headers, body) => {
	const init = { method, headers };
	if (body !== null) {
		init.body = body;
	}
	const res = await fetch(url, init);
	const pairs = [];
	res.headers.forEach((value, name) => pairs.push([name, value]));
	return JSON.stringify({
		url: res.url,
		status: res.status,
		statusText: res.statusText,
		headers: pairs,
		body: await res.text(),
	});
}`

type Transport struct {
	reporter progress.Reporter
	origin   string

	browser *rod.Browser
}

func NewTransport(opts ...Option) (*Transport, error) {
	options := &transportOptions{
		reporter: progress.NewEmptyReporter(),
		origin:   "about:blank",
	}
	for _, opt := range opts {
		opt(options)
	}

	reporter := options.reporter
	var log utils.Log = func(msg ...any) {
		reporter.Debug(fmt.Sprint(msg...))
	}

	browserBin := options.browserBin
	if browserBin == "" {
		reporter.Action("Finding browser")
		browserDownloader := launcher.NewBrowser()
		browserDownloader.Logger = log

		var err error
		browserBin, err = browserDownloader.Get()
		if err != nil {
			return nil, fmt.Errorf("could not find browser: %w", err)
		}
	}

	reporter.Action("Starting browser")
	controlURL, err := launcher.New().Bin(browserBin).Launch()
	if err != nil {
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Logger(log)
	err = browser.Connect()
	if err != nil {
		return nil, fmt.Errorf("could not connect to browser: %w", err)
	}

	return &Transport{
		reporter: reporter,
		origin:   options.origin,
		browser:  browser,
	}, nil
}

func (t *Transport) Close() error {
	return t.browser.Close()
}

// Exchange opens a fresh page on the origin and runs the request from it.
// A rejected fetch, which is how the browser reports both CORS and network
// failures, wraps exchange.ErrFetchRejected.
func (t *Transport) Exchange(ctx context.Context, req *network.Request) (*network.Response, error) {
	page, err := stealth.Page(t.browser)
	if err != nil {
		return nil, fmt.Errorf("could not open page: %w", err)
	}
	defer func() { _ = page.Close() }()

	page = page.Context(ctx)

	err = page.Navigate(t.origin)
	if err != nil {
		return nil, fmt.Errorf("could not navigate to origin %q: %w", t.origin, err)
	}

	err = page.WaitLoad()
	if err != nil {
		return nil, fmt.Errorf("could not load origin %q: %w", t.origin, err)
	}

	var body any
	if req.HasBody() {
		body = *req.Body
	}

	t.reporter.Debug("Running fetch from " + t.origin)
	res, err := page.Eval(fetchJS, string(req.Method), req.URL, headerPairs(req.Headers), body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		var evalErr *rod.ErrEval
		if errors.As(err, &evalErr) {
			return nil, fmt.Errorf("%w: %s", exchange.ErrFetchRejected, evalErr.Error())
		}
		return nil, err
	}

	return decodeFetchResult(res.Value.Str())
}

type fetchResult struct {
	URL        string      `json:"url"`
	Status     int         `json:"status"`
	StatusText string      `json:"statusText"`
	Headers    [][2]string `json:"headers"`
	Body       string      `json:"body"`
}

func decodeFetchResult(data string) (*network.Response, error) {
	var result fetchResult
	err := json.Unmarshal([]byte(data), &result)
	if err != nil {
		return nil, fmt.Errorf("could not decode fetch result: %w", err)
	}

	headers := make(network.Fields, 0, len(result.Headers))
	for _, pair := range result.Headers {
		headers = append(headers, network.Field{Name: pair[0], Value: pair[1]})
	}

	return &network.Response{
		URL:          result.URL,
		StatusCode:   result.Status,
		StatusPhrase: result.StatusText,
		Headers:      headers,
		Body:         []byte(result.Body),
	}, nil
}

func headerPairs(fields network.Fields) [][2]string {
	pairs := make([][2]string, 0, len(fields))
	for _, f := range fields {
		pairs = append(pairs, [2]string{f.Name, f.Value})
	}
	return pairs
}

var _ exchange.Transport = &Transport{}
