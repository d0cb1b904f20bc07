package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

// LinerReader reads lines with editing and history support.
type LinerReader struct {
	state       *liner.State
	historyFile string
}

// NewLinerReader takes over the terminal. historyFile may be empty to
// disable persistent history. Call Close to restore the terminal.
func NewLinerReader(historyFile string) *LinerReader {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)

	r := &LinerReader{state: st, historyFile: historyFile}
	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			st.ReadHistory(f)
			f.Close()
		}
	}
	return r
}

func (r *LinerReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", ErrInterrupted
		}
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}

// Close writes history and restores the terminal.
func (r *LinerReader) Close() error {
	herr := r.saveHistory()
	if err := r.state.Close(); err != nil {
		return err
	}
	return herr
}

func (r *LinerReader) saveHistory() error {
	if r.historyFile == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(r.historyFile), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	// 0600: owner read/write only
	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer f.Close()
	if _, err := r.state.WriteHistory(f); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
