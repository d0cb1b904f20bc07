package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/later/internal/command"
	"github.com/idilsaglam/later/internal/model"
	"github.com/idilsaglam/later/internal/store"
	"github.com/idilsaglam/later/internal/store/jsonstore"
	"github.com/idilsaglam/later/internal/ui"
)

const msgNoMatch = "Error parsing command. Maybe the command doesn't exist or the usage is wrong?"

// Session holds the item store for one run and applies commands to it.
// It owns every side effect of a command: printing and file I/O.
type Session struct {
	store *store.Store
	out   *ui.Printer
	log   *log.Logger
}

// NewSession starts a session with an empty store.
func NewSession(out *ui.Printer, logger *log.Logger) *Session {
	return &Session{store: store.New(), out: out, log: logger}
}

// Store exposes the session's items to front-ends that render them.
func (s *Session) Store() *store.Store { return s.store }

// Handle parses one input line and applies it. A line that matches no
// command, blank lines included, is reported as a parse failure.
func (s *Session) Handle(line string) {
	cmd, ok := command.Parse(line)
	if !ok {
		s.log.Debug("no match", "line", line)
		s.out.Fail(msgNoMatch)
		return
	}
	s.Apply(cmd)
}

// Apply runs cmd against the store or the persistence layer.
func (s *Session) Apply(cmd command.Command) {
	s.log.Debug("dispatch", "command", cmd.Name())

	switch c := cmd.(type) {
	case command.Add:
		s.doAdd(c.Item)
	case command.Remove:
		s.doRemove(c.Position)
	case command.List:
		s.doList()
	case command.Load:
		s.doLoad(c.Path)
	case command.Save:
		s.doSave(c.Path)
	case command.Help:
		s.out.Panel(helpLines(s.out))
	}
}

// -------------- command impls ----------------

func (s *Session) doAdd(it model.Item) {
	n := s.store.Append(it)
	s.log.Debug("added", "title", it.Title, "count", n)
	s.out.OK(fmt.Sprintf("Added '%s'", it.Title))
}

func (s *Session) doRemove(position uint) {
	title, err := s.store.RemoveAt(position)
	if err != nil {
		s.log.Debug("remove failed", "err", err)
		var oor *store.OutOfRangeError
		if errors.As(err, &oor) {
			s.out.Fail(fmt.Sprintf("Current list has %d items, cannot remove %d-th item", oor.Len, oor.Position))
			return
		}
		s.out.Fail("remove: " + err.Error())
		return
	}
	s.out.OK(fmt.Sprintf("Removed '%s'", title))
}

func (s *Session) doList() {
	s.out.Line(fmt.Sprintf("There are %d items in your list.", s.store.Len()))
	s.out.Line("")
	for it := range s.store.All() {
		s.out.Line(s.out.Label("LATER:") + " " + it.Title)
		if it.HasDescription() {
			s.out.Line(s.out.Muted("-") + " " + *it.Description)
		}
	}
}

func (s *Session) doLoad(path string) {
	items, err := jsonstore.Load(path)
	if err != nil {
		s.log.Debug("load failed", "path", path, "err", err)
		switch {
		case errors.Is(err, jsonstore.ErrDecode):
			s.out.Fail(fmt.Sprintf("Error parsing JSON from '%s'", path))
		default:
			s.out.Fail(fmt.Sprintf("Error while reading from '%s'", path))
		}
		return
	}
	s.store.ReplaceAll(items)
	s.log.Info("loaded", "path", path, "count", len(items))
	s.out.OK(fmt.Sprintf("Loaded %d items from '%s'", len(items), path))
}

func (s *Session) doSave(path string) {
	items := s.store.Snapshot()
	if err := jsonstore.Save(path, items); err != nil {
		s.log.Debug("save failed", "path", path, "err", err)
		s.out.Fail(fmt.Sprintf("Error while writing to '%s'", path))
		return
	}
	s.log.Info("saved", "path", path, "count", len(items))
	s.out.OK(fmt.Sprintf("Saved %d items to '%s'", len(items), path))
}
