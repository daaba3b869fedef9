package logutils

import (
	"bytes"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// HoldWriter keeps log lines in memory while a full screen program owns the
// terminal. Safe for concurrent use.
type HoldWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (h *HoldWriter) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buf.Write(p)
}

// Release writes the held lines to w and empties the buffer.
func (h *HoldWriter) Release(w io.Writer) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.buf.Len() == 0 {
		return nil
	}
	_, err := h.buf.WriteTo(w)
	return err
}

// Hold returns a copy of logger that writes into a HoldWriter, and a release
// func that flushes what was held to w.
func Hold(logger zerolog.Logger, w io.Writer) (zerolog.Logger, func() error) {
	h := &HoldWriter{}
	return logger.Output(h), func() error { return h.Release(w) }
}
