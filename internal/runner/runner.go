package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/aholstenson/cors-inspector/internal"
	"github.com/aholstenson/cors-inspector/pkg/catalog"
	"github.com/aholstenson/cors-inspector/pkg/composer"
	"github.com/aholstenson/cors-inspector/pkg/exchange"
	"github.com/aholstenson/cors-inspector/pkg/exchange/browser"
	"github.com/aholstenson/cors-inspector/pkg/network"
	"github.com/aholstenson/cors-inspector/pkg/progress"
	"github.com/aholstenson/cors-inspector/pkg/ui"
	"github.com/alecthomas/kong"
	"github.com/apex/log"
	"github.com/mattn/go-isatty"
)

var (
	ErrInvalidHeader   = errors.New("header must be in \"Name: Value\" form")
	ErrUnknownEndpoint = errors.New("unknown catalog entry")
)

type CLI struct {
	URL string `arg:"" optional:"" help:"URL to send the request to, defaults to ${default_path} on the origin"`

	Method string   `short:"X" help:"Request method, one of ${methods} (default GET)"`
	Header []string `short:"H" sep:"none" help:"Request header as 'Name: Value', may be repeated"`
	Data   string   `short:"d" help:"Request body, only sent for POST and PUT. Use @file to read it from a file"`

	Origin string `env:"CORS_INSPECTOR_ORIGIN" default:"http://localhost:5000" help:"Origin the API is served from"`
	Try    string `placeholder:"NAME" help:"Load a catalog entry by name before applying other flags"`
	List   bool   `help:"List the catalog entries and exit"`

	Timeout          time.Duration `default:"1m" help:"Give up on an exchange after this long, 0 waits forever"`
	NoFollow         bool          `help:"Report redirects instead of following them"`
	ExactHeaderNames bool          `help:"Treat header names that differ in case as different headers"`

	Browser    bool   `group:"browser" help:"Send requests from a headless browser so CORS rules are enforced"`
	BrowserBin string `group:"browser" type:"path" help:"Browser executable to launch instead of the managed one"`
	Page       string `group:"browser" default:"about:blank" help:"Page the browser sends requests from, its origin is the one checked by CORS"`

	Interactive bool `negatable:"" default:"${interactive}" help:"Start the interactive composer, defaults to on when attached to a terminal"`
	Debug       bool `help:"Log request headers and other details"`
}

func Run() {
	interactive := isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())

	cli := &CLI{}
	cliCtx := kong.Parse(cli,
		kong.Name("cors-inspector"),
		kong.Description("Compose HTTP requests and inspect the responses and CORS headers they produce."),
		kong.UsageOnError(),
		kong.Vars{
			"interactive":  strconv.FormatBool(interactive),
			"methods":      methodList(),
			"default_path": catalog.DefaultPath,
		},
	)
	cliCtx.FatalIfErrorf(cliCtx.Error)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code, err := cli.run(ctx, os.Stdout, os.Stderr)
	cancel()
	cliCtx.FatalIfErrorf(err)
	os.Exit(code)
}

// run executes the command and returns the process exit code. In one-shot
// mode any HTTP response exits with 0 and a transport error with 1.
func (cli *CLI) run(ctx context.Context, stdout io.Writer, stderr io.Writer) (int, error) {
	if cli.List {
		listCatalog(stdout, catalog.Default, cli.Origin)
		return 0, nil
	}

	c, err := cli.composer()
	if err != nil {
		return 1, err
	}

	level := log.InfoLevel
	if cli.Debug {
		level = log.DebugLevel
	}

	if cli.Interactive {
		w, lines, closeActivity := activityPipe()
		defer closeActivity()

		reporter := progress.NewLogReporter(progress.NewLogger(w, level))
		executor, closeExecutor, err := cli.executor(reporter)
		if err != nil {
			return 1, err
		}
		defer closeExecutor()

		m := ui.New(ctx, c, executor,
			ui.WithOrigin(cli.Origin),
			ui.WithActivity(lines),
		)
		if err := ui.Run(m); err != nil {
			return 1, fmt.Errorf("could not run interactive composer: %w", err)
		}
		return 0, nil
	}

	reporter := progress.NewLogReporter(progress.NewLogger(stderr, level))
	executor, closeExecutor, err := cli.executor(reporter)
	if err != nil {
		return 1, err
	}
	defer closeExecutor()

	req := c.Snapshot()
	fmt.Fprintln(stdout, ui.RenderRequest(req))
	res := executor.Send(ctx, req)
	fmt.Fprint(stdout, ui.RenderResult(res))
	if _, ok := res.(*network.TransportError); ok {
		return 1, nil
	}
	return 0, nil
}

// activityPipe returns a writer whose lines arrive on the returned channel.
// Lines are dropped rather than stalling an exchange when the reader lags.
// The close function stops the writer before closing the channel.
func activityPipe() (io.Writer, <-chan string, func()) {
	lines := make(chan string, 64)
	w := &internal.LineWriter{
		Flush: func(line string) {
			select {
			case lines <- line:
			default:
			}
		},
	}
	return w, lines, func() {
		_ = w.Close()
		close(lines)
	}
}

// composer builds the initial request state. A catalog entry is loaded first
// so that explicit flags override it.
func (cli *CLI) composer() (*composer.Composer, error) {
	var opts []composer.Option
	if cli.ExactHeaderNames {
		opts = append(opts, composer.WithExactHeaderNames())
	}
	opts = append(opts, composer.WithTarget(catalog.DefaultTarget(cli.Origin)))
	c := composer.New(opts...)

	if cli.Try != "" {
		endpoint, ok := catalog.Default.Lookup(cli.Try)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, cli.Try)
		}
		c.Load(endpoint, cli.Origin)
	}

	if cli.Method != "" {
		if err := c.SetMethod(cli.Method); err != nil {
			return nil, err
		}
	}

	if cli.URL != "" {
		c.SetTarget(cli.URL)
	}

	if cli.Data != "" {
		body, err := readBody(cli.Data)
		if err != nil {
			return nil, err
		}
		c.SetBody(body)
	}

	for _, h := range cli.Header {
		name, value, err := parseHeader(h)
		if err != nil {
			return nil, err
		}
		c.AddHeaderEntry(name, value)
	}

	return c, nil
}

// executor creates the executor and a function releasing what it holds.
func (cli *CLI) executor(reporter progress.Reporter) (*exchange.Executor, func(), error) {
	options := []exchange.Option{
		exchange.WithReporter(reporter),
		exchange.WithTimeout(cli.Timeout),
	}

	if !cli.Browser {
		var httpOptions []exchange.HTTPOption
		if cli.NoFollow {
			httpOptions = append(httpOptions, exchange.WithoutRedirects())
		}
		options = append(options, exchange.WithTransport(exchange.NewHTTPTransport(httpOptions...)))
		return exchange.NewExecutor(options...), func() {}, nil
	}

	browserOptions := []browser.Option{
		browser.WithReporter(reporter),
		browser.WithOrigin(cli.Page),
	}
	if cli.BrowserBin != "" {
		browserOptions = append(browserOptions, browser.WithBrowserBin(cli.BrowserBin))
	}

	transport, err := browser.NewTransport(browserOptions...)
	if err != nil {
		return nil, nil, fmt.Errorf("could not start browser: %w", err)
	}

	options = append(options, exchange.WithTransport(transport))
	return exchange.NewExecutor(options...), func() {
		reporter.Info("Closing browser")
		if err := transport.Close(); err != nil {
			reporter.Error(err, "Could not close browser")
		}
	}, nil
}

// parseHeader splits a "Name: Value" flag. Commas in the value are kept.
func parseHeader(s string) (string, string, error) {
	name, value, ok := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidHeader, s)
	}
	return name, strings.TrimSpace(value), nil
}

// readBody returns data as is, or the contents of the file it names when it
// starts with @.
func readBody(data string) (string, error) {
	path, ok := strings.CutPrefix(data, "@")
	if !ok {
		return data, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read body from %q: %w", path, err)
	}
	return string(b), nil
}

func listCatalog(w io.Writer, c catalog.Catalog, origin string) {
	for _, e := range c {
		fmt.Fprintf(w, "%-16s %-7s %s\n", e.Name, e.Method, catalog.Resolve(origin, e.URL))
	}
}

func methodList() string {
	methods := make([]string, len(network.Methods))
	for i, m := range network.Methods {
		methods[i] = string(m)
	}
	return strings.Join(methods, ", ")
}
