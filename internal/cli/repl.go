package cli

import (
	"errors"
	"io"
)

// ErrInterrupted is returned by a LineReader when the user hits Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

// LineReader reads one line of input. It returns ErrInterrupted on Ctrl-C
// and io.EOF at end of input.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// REPL drives a Session from a LineReader, one line at a time.
type REPL struct {
	Session *Session
	Reader  LineReader
	Prompt  string
}

// Run loops until end of input or a read failure. Interrupts re-show the
// prompt. Both ways out are a normal end of session.
func (r *REPL) Run() {
	out := r.Session.out
	out.Line(welcome)

	for {
		line, err := r.Reader.ReadLine(r.Prompt)
		switch {
		case err == nil:
			r.Session.Handle(line)
		case errors.Is(err, ErrInterrupted):
			continue
		case errors.Is(err, io.EOF):
			out.Line(farewell)
			return
		default:
			r.Session.log.Error("read input", "err", err)
			out.Line(readFailure)
			return
		}
	}
}
