package progress

import (
	"github.com/aholstenson/cors-inspector/pkg/network"
)

// Reporter receives progress about what the inspector is doing, including
// every request sent and the result it produced.
type Reporter interface {
	Action(msg string)

	Info(msg string)

	Debug(msg string)

	Error(err error, msg string)

	Request(req *network.Request)

	Result(res network.Result)
}
