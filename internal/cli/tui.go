package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/later/internal/ui"
)

var (
	tuiPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	tuiHelpStyle = lipgloss.NewStyle().Faint(true)
)

// modelTUI runs a Session behind a Bubble Tea prompt. Session output is
// captured in buf and appended to the transcript after every line.
type modelTUI struct {
	session *Session
	buf     *bytes.Buffer
	ti      textinput.Model

	transcript []string
	width      int
	height     int
	quitting   bool
}

func newModelTUI(theme ui.Theme, profile termenv.Profile, logger *log.Logger, prompt string) modelTUI {
	buf := &bytes.Buffer{}
	printer := ui.NewPrinterWithProfile(buf, buf, theme, profile)

	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "help"
	ti.CharLimit = 500
	ti.Focus()

	return modelTUI{
		session:    NewSession(printer, logger),
		buf:        buf,
		ti:         ti,
		transcript: []string{welcome},
		width:      80,
		height:     24,
	}
}

// RunTUI starts the full-screen front-end and blocks until Ctrl-D. The
// farewell, or the read failure notice, is written to out once the
// alternate screen is gone. Session output takes the terminal's color
// profile unless noColor is set. logger must not write to the terminal
// while the program runs.
func RunTUI(out io.Writer, theme ui.Theme, noColor bool, logger *log.Logger, prompt string) error {
	profile := lipgloss.ColorProfile()
	if noColor {
		profile = termenv.Ascii
	}
	p := tea.NewProgram(newModelTUI(theme, profile, logger, prompt), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(out, readFailure)
		return err
	}
	if m, ok := final.(modelTUI); ok && m.quitting {
		fmt.Fprintln(out, farewell)
	}
	return nil
}

func (m modelTUI) Init() tea.Cmd { return textinput.Blink }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.ti.SetValue("")
			return m, nil
		case "ctrl+d":
			m.transcript = append(m.transcript, farewell)
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := m.ti.Value()
			m.ti.SetValue("")
			m.transcript = append(m.transcript, m.ti.Prompt+line)
			m.session.Handle(line)
			if out := strings.TrimRight(m.buf.String(), "\n"); out != "" {
				m.transcript = append(m.transcript, strings.Split(out, "\n")...)
			}
			m.buf.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m modelTUI) View() string {
	if m.quitting {
		return ""
	}
	// border, input line and help line
	visible := m.height - 5
	if visible < 1 {
		visible = 1
	}
	lines := m.transcript
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}
	body := strings.Join(lines, "\n") + "\n" + m.ti.View()
	return tuiPanelStyle.Width(max(m.width-2, 20)).Render(body) + "\n" +
		tuiHelpStyle.Render("enter run • ctrl+c clear • ctrl+d quit")
}
