package console

import (
	"bytes"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/fanout/internal/ui/style"
)

const maxOutputLines = 2000

// Options wires the console to a dispatcher.
type Options struct {
	Title string
	// Run dispatches one line. Whatever it writes to out is shown.
	Run func(out io.Writer, args []string)
	// Complete suggests values for the last element of args.
	Complete func(args []string) []string
}

// Run opens the console and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type model struct {
	opts   Options
	keys   keyMap
	input  textinput.Model
	output viewport.Model
	help   help.Model

	lines   []string
	history []string
	histPos int // len(history) when not browsing

	width  int
	height int
}

func newModel(opts Options) model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "help"
	in.Focus()

	return model{
		opts:   opts,
		keys:   defaultKeys(),
		input:  in,
		output: viewport.New(80, 20),
		help:   help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.output.Width = msg.Width
		// title, input and help take a line each
		m.output.Height = max(1, msg.Height-3)
		m.input.Width = max(1, msg.Width-len(m.input.Prompt)-1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Complete):
			m.complete()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.browse(-1)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.browse(1)
			return m, nil
		case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return m, nil
	}

	m.history = append(m.history, line)
	m.histPos = len(m.history)

	if line == "exit" || line == "quit" {
		return m, tea.Quit
	}

	m.appendOutput(style.Muted("> " + line))

	var out bytes.Buffer
	if m.opts.Run != nil {
		m.opts.Run(&out, strings.Fields(line))
	}
	for _, l := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n") {
		if l != "" {
			m.appendOutput(l)
		}
	}

	m.refresh()
	return m, nil
}

// complete replaces the last token with the single suggestion, or with the
// longest common prefix and lists the candidates.
func (m *model) complete() {
	if m.opts.Complete == nil {
		return
	}

	value := m.input.Value()
	args := strings.Fields(value)
	if len(args) == 0 || strings.HasSuffix(value, " ") {
		args = append(args, "")
	}

	suggestions := m.opts.Complete(args)
	if len(suggestions) == 0 {
		return
	}

	last := args[len(args)-1]
	head := strings.TrimSuffix(value, last)

	if len(suggestions) == 1 {
		m.input.SetValue(head + suggestions[0] + " ")
		m.input.CursorEnd()
		return
	}

	if prefix := commonPrefix(suggestions); len(prefix) > len(last) {
		m.input.SetValue(head + prefix)
		m.input.CursorEnd()
	}
	m.appendOutput(style.Muted("  " + strings.Join(suggestions, "  ")))
	m.refresh()
}

func (m *model) browse(delta int) {
	if len(m.history) == 0 {
		return
	}

	m.histPos = min(max(m.histPos+delta, 0), len(m.history))
	if m.histPos == len(m.history) {
		m.input.SetValue("")
	} else {
		m.input.SetValue(m.history[m.histPos])
	}
	m.input.CursorEnd()
}

func (m *model) appendOutput(line string) {
	m.lines = append(m.lines, line)
	if len(m.lines) > maxOutputLines {
		m.lines = m.lines[len(m.lines)-maxOutputLines:]
	}
}

func (m *model) refresh() {
	m.output.SetContent(strings.Join(m.lines, "\n"))
	m.output.GotoBottom()
}

func (m model) View() string {
	title := m.opts.Title
	if title == "" {
		title = "fanout console"
	}

	footer := lipgloss.NewStyle().Padding(0, 1).Render(m.help.ShortHelpView(m.keys.ShortHelp()))

	return lipgloss.JoinVertical(lipgloss.Left,
		style.Header(title),
		m.output.View(),
		m.input.View(),
		footer,
	)
}

func commonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := values[0]
	for _, v := range values[1:] {
		for !strings.HasPrefix(v, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
