// Package tui is the interactive terminal front of the chord finder: type
// note names, see the matching chords update live.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/improperdecoherence/chordlab/chord"
	"github.com/improperdecoherence/chordlab/finder"
	"github.com/improperdecoherence/chordlab/note"
)

const maxVisibleChords = 12

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	inputStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333333")).
			PaddingLeft(1).
			PaddingRight(1)

	chordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#005F87")).
			PaddingLeft(1).
			PaddingRight(1).
			MarginRight(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))
)

// Model is the bubbletea state of the chord finder screen.
type Model struct {
	finder *finder.Finder
	style  note.Style

	input  string
	status string
	chords []*chord.DynamicChord

	width  int
	height int
}

// NewModel builds the screen around a prepared finder.
func NewModel(f *finder.Finder, style note.Style) Model {
	m := Model{finder: f, style: style}
	m.chords = f.Chords()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refresh() {
	m.status = ""

	fields := strings.Fields(m.input)
	values, err := note.ValuesOf(fields)
	if err != nil {
		m.status = err.Error()
		return
	}

	m.finder.SetSeedNotes(values)
	m.chords = m.finder.Chords()
}

func (m *Model) cycleGenerator() {
	generators := m.finder.Generators()
	current := m.finder.CurrentGenerator()
	for i, g := range generators {
		if g == current {
			next := generators[(i+1)%len(generators)]
			m.finder.SetCurrentGenerator(next.Name())
			break
		}
	}
	m.chords = m.finder.Chords()
}

// adjustSetting bumps the first integer setting of the active generator, or
// cycles the first enum setting when there is no integer one.
func (m *Model) adjustSetting(delta int) {
	for _, s := range m.finder.CurrentGenerator().Settings() {
		options := s.Options()
		if len(options) == 0 {
			continue
		}
		for i, opt := range options {
			if opt == s.Value() {
				next := (i + delta + len(options)) % len(options)
				if err := s.SetValue(options[next]); err != nil {
					m.status = err.Error()
				}
				m.chords = m.finder.Chords()
				return
			}
		}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.cycleGenerator()
			m.refresh()
		case "up":
			m.adjustSetting(1)
			m.refresh()
		case "down":
			m.adjustSetting(-1)
			m.refresh()
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
				m.refresh()
			}
		default:
			if len(msg.String()) == 1 || msg.String() == " " {
				m.input += msg.String()
				m.refresh()
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("chordlab"))
	b.WriteString("\n")

	b.WriteString(inputStyle.Render(m.input + "▌"))
	b.WriteString("\n\n")

	generator := m.finder.CurrentGenerator()
	var settings []string
	for _, s := range generator.Settings() {
		settings = append(settings, fmt.Sprintf("%s: %s", s.Name(), s.Value()))
	}
	b.WriteString(infoStyle.Render(fmt.Sprintf("generator: %s   %s", generator.Name(), strings.Join(settings, "   "))))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	} else if len(m.chords) == 0 {
		b.WriteString(infoStyle.Render("enter note names, e.g. C4 E4 G4"))
		b.WriteString("\n")
	} else {
		shown := m.chords
		if len(shown) > maxVisibleChords {
			shown = shown[:maxVisibleChords]
		}
		var row strings.Builder
		for _, c := range shown {
			row.WriteString(chordStyle.Render(c.ShortName(m.style)))
		}
		b.WriteString(row.String())
		b.WriteString("\n")
		if len(m.chords) > maxVisibleChords {
			b.WriteString(infoStyle.Render(fmt.Sprintf("... and %d more", len(m.chords)-maxVisibleChords)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(infoStyle.Render("tab: switch generator | up/down: adjust setting | esc: quit"))
	return b.String()
}
