package cli

import "github.com/idilsaglam/later/internal/ui"

const (
	welcome     = "Welcome to LATER, your favorite procrastination tool. Use the `help` command to view a list of commands."
	farewell    = "Ctrl-D. Exiting..."
	readFailure = "Unexpected error while reading input. Exiting..."
)

func helpLines(p *ui.Printer) []string {
	return []string{
		p.Title("LATER") + " - commands",
		"",
		"  add <title> [description]   Add an item",
		"  remove <number>             Remove the item at a 1-based position",
		"  list                        List items",
		"  save <file>                 Save items to a JSON file",
		"  load <file>                 Replace items with those from a JSON file",
		"  help                        Show this message",
		"",
		p.Muted("Wrap arguments containing spaces in double quotes:"),
		p.Muted(`  add "Buy milk" "2 litres, semi-skimmed"`),
		"",
		p.Muted("Ctrl-C clears the line, Ctrl-D exits."),
	}
}
