package cli

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type readStep struct {
	line string
	err  error
}

// scriptedReader replays steps, then reports end of input.
type scriptedReader struct {
	steps   []readStep
	prompts []string
}

func (r *scriptedReader) ReadLine(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.steps) == 0 {
		return "", io.EOF
	}
	st := r.steps[0]
	r.steps = r.steps[1:]
	return st.line, st.err
}

func TestREPL_RunsUntilEOF(t *testing.T) {
	ts := newTestSession(t)
	reader := &scriptedReader{steps: []readStep{
		{line: `add "Buy milk"`},
		{err: ErrInterrupted},
		{line: "list"},
	}}

	(&REPL{Session: ts.Session, Reader: reader, Prompt: "later> "}).Run()

	assert.Equal(t, welcome+"\n"+
		"✔ Added 'Buy milk'\n"+
		"There are 1 items in your list.\n\n"+
		"LATER: Buy milk\n"+
		farewell+"\n", ts.out.String())
	assert.Equal(t, []string{"later> ", "later> ", "later> ", "later> "}, reader.prompts)
}

func TestREPL_InterruptDoesNotEndSession(t *testing.T) {
	ts := newTestSession(t)
	reader := &scriptedReader{steps: []readStep{
		{err: ErrInterrupted},
		{err: ErrInterrupted},
		{line: "add x"},
	}}

	(&REPL{Session: ts.Session, Reader: reader}).Run()

	assert.Equal(t, 1, ts.Store().Len())
	assert.Contains(t, ts.out.String(), farewell)
}

func TestREPL_ReadFailureEndsSession(t *testing.T) {
	ts := newTestSession(t)
	reader := &scriptedReader{steps: []readStep{
		{line: "add x"},
		{err: errors.New("tty gone")},
		{line: "add never"},
	}}

	(&REPL{Session: ts.Session, Reader: reader}).Run()

	assert.Equal(t, 1, ts.Store().Len())
	assert.Contains(t, ts.out.String(), readFailure)
	assert.NotContains(t, ts.out.String(), farewell)
	assert.Len(t, reader.steps, 1)
}
