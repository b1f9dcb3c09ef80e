package progress

import (
	"github.com/aholstenson/cors-inspector/pkg/network"
	"github.com/apex/log"
)

// LogReporter writes progress to an apex/log logger.
type LogReporter struct {
	logger log.Interface
}

func NewLogReporter(logger log.Interface) *LogReporter {
	return &LogReporter{
		logger: logger,
	}
}

func (r *LogReporter) Action(msg string) {
	r.logger.Info("▶ " + msg)
}

func (r *LogReporter) Info(msg string) {
	r.logger.Info(msg)
}

func (r *LogReporter) Debug(msg string) {
	r.logger.Debug(msg)
}

func (r *LogReporter) Error(err error, msg string) {
	r.logger.WithError(err).Error(msg)
}

func (r *LogReporter) Request(req *network.Request) {
	r.logger.Infof("⬆️ %s %s", req.Method, req.URL)
	for _, h := range req.Headers {
		r.logger.Debugf("   %s: %s", h.Name, h.Value)
	}
	if req.HasBody() {
		r.logger.Debugf("   body: %d bytes", len(*req.Body))
	}
}

func (r *LogReporter) Result(res network.Result) {
	req := res.Request()
	switch res := res.(type) {
	case *network.HTTPResult:
		entry := r.logger.WithFields(log.Fields{
			"duration": res.Duration.String(),
			"format":   string(res.Body.Format),
			"size":     res.Body.Size,
		})
		if res.IsErrorStatus() {
			entry.Warnf("⬇️ %s %s", res.Status(), req.URL)
		} else {
			entry.Infof("⬇️ %s %s", res.Status(), req.URL)
		}
	case *network.TransportError:
		r.logger.WithFields(log.Fields{
			"duration": res.Duration.String(),
			"kind":     string(res.Kind),
		}).Errorf("❌ %s %s: %s", req.Method, req.URL, res.Message)
	}
}

var _ Reporter = &LogReporter{}
