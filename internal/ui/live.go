// Package ui holds the interactive terminal views.
package ui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sillyfmt/internal/diag"
	"sillyfmt/internal/diagfmt"
	"sillyfmt/internal/driver"
)

// View selects what the right pane shows.
type View uint8

const (
	ViewTree View = iota
	ViewSexp
	ViewNotes
)

func (v View) String() string {
	switch v {
	case ViewTree:
		return "tree"
	case ViewSexp:
		return "sexp"
	case ViewNotes:
		return "notes"
	}
	return "?"
}

type liveModel struct {
	opts     driver.Options
	editor   textarea.Model
	output   viewport.Model
	view     View
	last     string
	notes    int
	warnings bool
	width    int
	height   int
}

// NewLiveModel returns a Bubble Tea model that reparses the buffer on every
// edit and shows the result beside it. initial seeds the buffer.
func NewLiveModel(initial string, opts driver.Options) tea.Model {
	ta := textarea.New()
	ta.Placeholder = "type here; tab switches the view, esc quits"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetValue(initial)
	ta.Focus()

	m := &liveModel{
		opts:   opts,
		editor: ta,
		output: viewport.New(40, 20),
		width:  80,
		height: 24,
	}
	m.resize()
	m.reparse()
	return m
}

func (m *liveModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyTab:
			m.view = (m.view + 1) % 3
			m.render()
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 && msg.Height > 0 {
			m.width, m.height = msg.Width, msg.Height
			m.resize()
			m.render()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)
	if m.editor.Value() != m.last {
		m.reparse()
	}
	return m, tea.Batch(cmds...)
}

func (m *liveModel) resize() {
	pane := max(m.width/2-2, 10)
	body := max(m.height-3, 3)
	m.editor.SetWidth(pane)
	m.editor.SetHeight(body)
	m.output.Width = pane
	m.output.Height = body
}

func (m *liveModel) reparse() {
	m.last = m.editor.Value()
	m.render()
}

func (m *liveModel) render() {
	content, bag := Render(m.last, m.view, m.opts)
	m.notes = bag.Len()
	m.warnings = bag.HasWarnings()
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = truncate(line, m.output.Width)
	}
	m.output.SetContent(strings.Join(lines, "\n"))
}

func (m *liveModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	pane := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))

	header := titleStyle.Render(fmt.Sprintf("sillyfmt live (%s)", m.view))
	status := styleStatus(m.notes, m.warnings).Render(fmt.Sprintf("%d notes", m.notes))
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		pane.Render(m.editor.View()),
		pane.Render(m.output.View()),
	)
	return header + "  " + status + "\n" + body + "\n"
}

// Render parses text and returns what the output pane shows for view.
func Render(text string, view View, opts driver.Options) (string, *diag.Bag) {
	res := driver.ParseText("live", text, opts)
	var buf bytes.Buffer
	var err error
	switch view {
	case ViewSexp:
		err = diagfmt.FormatTreeSexp(&buf, res.Builder, res.FileID)
	case ViewNotes:
		if res.Bag.Len() == 0 {
			buf.WriteString("no notes\n")
		} else {
			err = diagfmt.Pretty(&buf, res.Bag, res.FileSet, diagfmt.PrettyOpts{ShowNotes: true, ShowFixes: true})
		}
	default:
		err = diagfmt.FormatTreePretty(&buf, res.Builder, res.FileID, res.FileSet, diagfmt.TreeOpts{})
	}
	if err != nil {
		return "render failed: " + err.Error(), res.Bag
	}
	return strings.TrimRight(buf.String(), "\n"), res.Bag
}

func styleStatus(notes int, warnings bool) lipgloss.Style {
	switch {
	case warnings:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	case notes > 0:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
