package progress

import "github.com/aholstenson/cors-inspector/pkg/network"

type emptyReporter struct {
}

// NewEmptyReporter returns a reporter that drops everything.
func NewEmptyReporter() Reporter {
	return &emptyReporter{}
}

func (c *emptyReporter) Action(msg string) {
}

func (c *emptyReporter) Info(msg string) {
}

func (c *emptyReporter) Debug(msg string) {
}

func (c *emptyReporter) Error(err error, msg string) {
}

func (c *emptyReporter) Request(req *network.Request) {
}

func (c *emptyReporter) Result(res network.Result) {
}

var _ Reporter = &emptyReporter{}
