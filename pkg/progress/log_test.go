package progress

import (
	"errors"
	"testing"
	"time"

	"github.com/aholstenson/cors-inspector/pkg/network"
	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandler struct {
	entries []*log.Entry
}

func (h *fakeHandler) HandleLog(e *log.Entry) error {
	h.entries = append(h.entries, e)
	return nil
}

func newTestReporter(level log.Level) (*LogReporter, *fakeHandler) {
	handler := &fakeHandler{}
	return NewLogReporter(&log.Logger{Handler: handler, Level: level}), handler
}

func TestLogReporterRequest(t *testing.T) {
	r, handler := newTestReporter(log.DebugLevel)

	body := "{}"
	r.Request(&network.Request{
		Method:  network.MethodPost,
		URL:     "http://host/api/items",
		Headers: network.Fields{{Name: "Content-Type", Value: "application/json"}},
		Body:    &body,
	})

	require.Len(t, handler.entries, 3)
	assert.Equal(t, "⬆️ POST http://host/api/items", handler.entries[0].Message)
	assert.Equal(t, "   Content-Type: application/json", handler.entries[1].Message)
	assert.Equal(t, "   body: 2 bytes", handler.entries[2].Message)
}

func TestLogReporterRequestAtInfo(t *testing.T) {
	r, handler := newTestReporter(log.InfoLevel)

	r.Request(&network.Request{
		Method:  network.MethodGet,
		URL:     "http://host/api/items",
		Headers: network.Fields{{Name: "Content-Type", Value: "application/json"}},
	})

	require.Len(t, handler.entries, 1)
}

func TestLogReporterResult(t *testing.T) {
	req := &network.Request{Method: network.MethodGet, URL: "http://host/api/items/9"}

	tests := []struct {
		name      string
		result    network.Result
		wantLevel log.Level
		wantMsg   string
		wantField string
	}{{
		name: "success",
		result: &network.HTTPResult{
			Req:        req,
			StatusCode: 200,
			StatusText: "OK",
			Body:       network.Body{Format: network.FormatJSON},
			Duration:   time.Second,
		},
		wantLevel: log.InfoLevel,
		wantMsg:   "⬇️ 200 OK http://host/api/items/9",
		wantField: "format",
	}, {
		name: "error status",
		result: &network.HTTPResult{
			Req:        req,
			StatusCode: 404,
			StatusText: "Not Found",
		},
		wantLevel: log.WarnLevel,
		wantMsg:   "⬇️ 404 Not Found http://host/api/items/9",
		wantField: "size",
	}, {
		name: "transport error",
		result: &network.TransportError{
			Req:     req,
			Kind:    network.FailureRefused,
			Message: "connection refused",
		},
		wantLevel: log.ErrorLevel,
		wantMsg:   "❌ GET http://host/api/items/9: connection refused",
		wantField: "kind",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, handler := newTestReporter(log.DebugLevel)
			r.Result(tt.result)

			require.Len(t, handler.entries, 1)
			entry := handler.entries[0]
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, tt.wantMsg, entry.Message)
			assert.Contains(t, entry.Fields, tt.wantField)
		})
	}
}

func TestLogReporterError(t *testing.T) {
	r, handler := newTestReporter(log.InfoLevel)
	r.Error(errors.New("boom"), "Could not start browser")

	require.Len(t, handler.entries, 1)
	assert.Equal(t, "Could not start browser", handler.entries[0].Message)
	assert.Equal(t, "boom", handler.entries[0].Fields["error"])
}
