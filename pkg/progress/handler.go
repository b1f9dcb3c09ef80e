package progress

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/apex/log"
)

// Handler is an apex/log handler writing one plain line per entry, suitable
// both for a terminal and for the activity pane of the interactive UI.
type Handler struct {
	mu     sync.Mutex
	writer io.Writer
}

func NewHandler(w io.Writer) *Handler {
	return &Handler{
		writer: w,
	}
}

// NewLogger returns a logger writing to w through a Handler.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return &log.Logger{
		Handler: NewHandler(w),
		Level:   level,
	}
}

// HandleLog implements log.Handler.
func (h *Handler) HandleLog(e *log.Entry) error {
	var b strings.Builder
	if e.Level != log.InfoLevel {
		b.WriteString("<" + e.Level.String() + "> ")
	}
	b.WriteString(e.Message)

	if len(e.Fields) > 0 {
		names := make([]string, 0, len(e.Fields))
		for name := range e.Fields {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Fprintf(&b, " %s=%v", name, e.Fields[name])
		}
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, b.String())
	return err
}

var _ log.Handler = &Handler{}
