package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer renders session output. Colors follow the writer: a non-TTY
// writer gets plain text.
type Printer struct {
	out, errOut io.Writer
	theme       Theme

	title, muted, accent, success, fail lipgloss.Style
	panel                               lipgloss.Style
}

// NewPrinter binds theme styles to out. Failures go to errOut.
func NewPrinter(out, errOut io.Writer, theme Theme, noColor bool) *Printer {
	r := lipgloss.NewRenderer(out)
	if noColor || theme.Colorless {
		r.SetColorProfile(termenv.Ascii)
	}
	return newPrinter(r, out, errOut, theme)
}

// NewPrinterWithProfile renders with a fixed color profile instead of
// detecting one from out. Used when out is a buffer that ends up on a
// terminal. Colorless themes always render as Ascii.
func NewPrinterWithProfile(out, errOut io.Writer, theme Theme, profile termenv.Profile) *Printer {
	r := lipgloss.NewRenderer(out)
	if theme.Colorless {
		profile = termenv.Ascii
	}
	r.SetColorProfile(profile)
	return newPrinter(r, out, errOut, theme)
}

func newPrinter(r *lipgloss.Renderer, out, errOut io.Writer, theme Theme) *Printer {
	return &Printer{
		out:     out,
		errOut:  errOut,
		theme:   theme,
		title:   r.NewStyle().Bold(true).Foreground(theme.Title),
		muted:   r.NewStyle().Foreground(theme.Muted),
		accent:  r.NewStyle().Foreground(theme.Accent),
		success: r.NewStyle().Foreground(theme.Success),
		fail:    r.NewStyle().Foreground(theme.Error).Bold(true),
		panel: r.NewStyle().
			Border(theme.Border).
			BorderForeground(theme.Muted).
			Padding(0, 1),
	}
}

// OK prints a success line. Only the mark is styled, msg is kept verbatim.
func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.out, p.success.Render(p.theme.SymOK)+" "+msg)
}

// Fail prints an error line to the error writer.
func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.errOut, p.fail.Render(p.theme.SymFail)+" "+msg)
}

// Line prints s unstyled.
func (p *Printer) Line(s string) { fmt.Fprintln(p.out, s) }

func (p *Printer) Title(s string) string { return p.title.Render(s) }
func (p *Printer) Label(s string) string { return p.accent.Render(s) }
func (p *Printer) Muted(s string) string { return p.muted.Render(s) }

// Panel draws lines in a framed box.
func (p *Printer) Panel(lines []string) {
	fmt.Fprintln(p.out, p.panel.Render(strings.Join(lines, "\n")))
}
