// Package tui is a terminal front end for the calculator keypad.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/calc/internal/keypad"
)

const (
	buttonWidth = 8
	rows        = len(keypad.Layout)
	cols        = len(keypad.Layout[0])
)

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(cols*buttonWidth - 2).
			Align(lipgloss.Right)
	buttonStyle = lipgloss.NewStyle().
			Width(buttonWidth).
			Align(lipgloss.Center)
	selectedStyle = buttonStyle.
			Reverse(true).
			Bold(true)
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
	helpStyle = lipgloss.NewStyle().
			Faint(true)
)

// Model is the bubbletea model of the calculator.
type Model struct {
	pad      *keypad.Keypad
	row, col int
}

// New creates a model around a keypad.
func New(pad *keypad.Keypad) Model {
	return Model{pad: pad}
}

// Selected returns the label of the selected button.
func (m Model) Selected() string {
	return keypad.Layout[m.row][m.col]
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key := km.String(); key {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "up":
		m.row = (m.row + rows - 1) % rows
	case "down":
		m.row = (m.row + 1) % rows
	case "left":
		m.col = (m.col + cols - 1) % cols
	case "right":
		m.col = (m.col + 1) % cols
	case "enter", " ":
		m.pad.Press(m.Selected())
	case "backspace":
		m.pad.Press(keypad.KeyBack)
	case "delete":
		m.pad.Press(keypad.KeyDelete)
	case "c", "C":
		m.pad.Press(keypad.KeyClear)
	default:
		if typable(key) {
			m.pad.Press(key)
		}
	}
	return m, nil
}

// typable reports whether a key is typed directly into the display.
func typable(key string) bool {
	if len(key) != 1 {
		return false
	}
	c := key[0]
	return '0' <= c && c <= '9' || strings.IndexByte("+-*/%.()=", c) >= 0
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(displayStyle.Render(m.pad.Text()))
	b.WriteByte('\n')
	for r, row := range keypad.Layout {
		cells := make([]string, 0, len(row))
		for c, label := range row {
			st := buttonStyle
			if r == m.row && c == m.col {
				st = selectedStyle
			}
			cells = append(cells, st.Render(label))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteByte('\n')
	}
	if err := m.pad.Err(); err != nil {
		b.WriteString(errStyle.Render(err.Error()))
		b.WriteByte('\n')
	}
	b.WriteString(helpStyle.Render("arrows select • enter presses • type to enter • esc quits"))
	b.WriteByte('\n')
	return b.String()
}

// Run runs the calculator until the user quits.
func Run(pad *keypad.Keypad, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(pad), opts...).Run()
	return err
}
