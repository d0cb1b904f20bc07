package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, symbols and panel border.
// Every Printer style is derived from a Theme.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.TerminalColor

	SymOK, SymFail string
	Border         lipgloss.Border
	Colorless      bool
}

// Themes lists the names accepted by ThemeByName.
var Themes = []string{"classic", "neon", "mono"}

// ThemeByName resolves a theme; the empty name is classic.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		return Theme{
			Name:  "classic",
			Title: lipgloss.NoColor{}, Muted: lipgloss.Color("8"), Accent: lipgloss.Color("12"),
			Success: lipgloss.Color("42"), Error: lipgloss.Color("9"),
			SymOK: "✔", SymFail: "✖",
			Border: lipgloss.RoundedBorder(),
		}, nil
	case "neon":
		return Theme{
			Name:  "neon",
			Title: lipgloss.Color("13"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("14"),
			Success: lipgloss.Color("10"), Error: lipgloss.Color("9"),
			SymOK: "✔", SymFail: "✖",
			Border: lipgloss.ThickBorder(),
		}, nil
	case "mono":
		return Theme{
			Name:  "mono",
			Title: lipgloss.NoColor{}, Muted: lipgloss.NoColor{}, Accent: lipgloss.NoColor{},
			Success: lipgloss.NoColor{}, Error: lipgloss.NoColor{},
			SymOK: "[ok]", SymFail: "[error]",
			Border:    lipgloss.NormalBorder(),
			Colorless: true,
		}, nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(Themes, ", "))
}
