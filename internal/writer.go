package internal

import (
	"bytes"
	"io"
	"strings"
	"sync"
)

// LineWriter hands every complete line written to it to Flush, without the
// line ending. It is safe for concurrent use.
type LineWriter struct {
	Flush func(line string)

	mu     sync.Mutex
	buf    bytes.Buffer
	closed bool
}

func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, io.ErrClosedPipe
	}

	w.buf.Write(p)
	for {
		i := bytes.IndexByte(w.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := string(w.buf.Next(i + 1))
		w.Flush(strings.TrimRight(line, "\r\n"))
	}

	return len(p), nil
}

// Close flushes a trailing partial line, if any.
func (w *LineWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() != 0 {
		w.Flush(w.buf.String())
		w.buf.Reset()
	}
	w.closed = true
	return nil
}
