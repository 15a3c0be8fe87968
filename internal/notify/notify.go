// Package notify is the user-facing notification sink, the CLI stand-in
// for toast messages.
package notify

import (
	"fmt"
	"io"
)

// Notifier receives user-facing messages from the data layer.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Writer prints notifications to a pair of streams. Quiet suppresses
// success messages only; errors are always shown.
type Writer struct {
	Out   io.Writer
	Err   io.Writer
	Quiet bool
}

// NewWriter creates a stream-backed notifier.
func NewWriter(out, errOut io.Writer, quiet bool) *Writer {
	return &Writer{Out: out, Err: errOut, Quiet: quiet}
}

func (w *Writer) Success(msg string) {
	if w.Quiet {
		return
	}
	fmt.Fprintln(w.Out, msg)
}

func (w *Writer) Error(msg string) {
	fmt.Fprintf(w.Err, "error: %s\n", msg)
}

// Discard drops all notifications.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}
