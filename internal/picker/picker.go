// Package picker renders the interactive duration prompt for track-time.
package picker

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Minutes are the durations offered by the track-time prompt.
var Minutes = []int{15, 30, 45, 60}

// ErrAborted reports that the operator cancelled the prompt.
var ErrAborted = errors.New("selection aborted")

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

type model struct {
	title   string
	options []int
	cursor  int
	choice  int
	aborted bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "enter":
			m.choice = m.options[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, opt := range m.options {
		line := fmt.Sprintf("  %d", opt)
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %d", opt))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · enter select · esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// PickMinutes prompts the operator to choose one of the given minute values.
func PickMinutes(title string, options []int) (int, error) {
	p := tea.NewProgram(model{title: title, options: options})
	final, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("running duration prompt: %w", err)
	}
	m := final.(model)
	if m.aborted || m.choice == 0 {
		return 0, ErrAborted
	}
	return m.choice, nil
}
