package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLogger returns a Logger that writes one line per call to w.
func NewLogger(w io.Writer) Logger {
	if w == nil {
		w = os.Stdout
	}
	return &hostLogger{w: w}
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type discardLogger struct{}

// Discard is a Logger that drops everything.
var Discard Logger = discardLogger{}

func (discardLogger) WriteLineString(string) {}
func (discardLogger) WriteLineBytes([]byte)  {}
