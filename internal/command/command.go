// Package command turns raw input lines into typed commands.
package command

import (
	"strconv"

	"github.com/idilsaglam/later/internal/model"
)

// Command is one parsed user intent. The set of implementations is closed:
// Add, Remove, List, Load, Save and Help.
type Command interface {
	// Name is the keyword the command was matched from.
	Name() string
	isCommand()
}

// Add appends Item to the store.
type Add struct{ Item model.Item }

// Remove deletes the item at a 1-based Position.
type Remove struct{ Position uint }

// List prints every item in insertion order.
type List struct{}

// Load replaces the store with the items decoded from Path.
type Load struct{ Path string }

// Save writes the store to Path.
type Save struct{ Path string }

// Help prints usage.
type Help struct{}

func (Add) Name() string    { return "add" }
func (Remove) Name() string { return "remove" }
func (List) Name() string   { return "list" }
func (Load) Name() string   { return "load" }
func (Save) Name() string   { return "save" }
func (Help) Name() string   { return "help" }

func (Add) isCommand()    {}
func (Remove) isCommand() {}
func (List) isCommand()   {}
func (Load) isCommand()   {}
func (Save) isCommand()   {}
func (Help) isCommand()   {}

// Match maps tokens to a Command. The keyword and the exact arity must both
// match; anything else reports false.
func Match(args []string) (Command, bool) {
	if len(args) == 0 {
		return nil, false
	}
	cmd, a := args[0], args[1:]

	switch {
	case cmd == "add" && len(a) == 1:
		return Add{Item: model.NewItem(a[0], nil)}, true
	case cmd == "add" && len(a) == 2:
		desc := a[1]
		return Add{Item: model.NewItem(a[0], &desc)}, true
	case cmd == "remove" && len(a) == 1:
		n, ok := parsePosition(a[0])
		if !ok {
			return nil, false
		}
		return Remove{Position: n}, true
	case cmd == "list" && len(a) == 0:
		return List{}, true
	case cmd == "load" && len(a) == 1:
		return Load{Path: a[0]}, true
	case cmd == "save" && len(a) == 1:
		return Save{Path: a[0]}, true
	case cmd == "help" && len(a) == 0:
		return Help{}, true
	}
	return nil, false
}

// Parse tokenizes line and matches the result.
func Parse(line string) (Command, bool) {
	return Match(Tokenize(line))
}

// parsePosition accepts only unsigned decimal digits that fit in a uint.
func parsePosition(s string) (uint, bool) {
	n, err := strconv.ParseUint(s, 10, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
