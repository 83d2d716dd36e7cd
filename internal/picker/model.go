package picker

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	placeholderStyle = lipgloss.NewStyle().Bold(true)
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	hintStyle        = lipgloss.NewStyle().Faint(true)
)

type model struct {
	placeholder string
	items       []string
	multi       bool

	cursor    int
	chosen    map[int]struct{}
	cancelled bool
}

func newModel(items []string, placeholder string, multi bool) model {
	return model{
		placeholder: placeholder,
		items:       items,
		multi:       multi,
		chosen:      make(map[int]struct{}),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ":
		if m.multi {
			if _, set := m.chosen[m.cursor]; set {
				delete(m.chosen, m.cursor)
			} else {
				m.chosen[m.cursor] = struct{}{}
			}
		}
	case "enter":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(placeholderStyle.Render(m.placeholder))
	b.WriteString("\n")
	for i, item := range m.items {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		line := marker + item
		if m.multi {
			box := "[ ] "
			if _, set := m.chosen[i]; set {
				box = "[x] "
			}
			line = marker + box + item
		}
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	hint := "enter: select  esc: cancel"
	if m.multi {
		hint = "space: toggle  enter: confirm  esc: cancel"
	}
	b.WriteString(hintStyle.Render(hint))
	b.WriteString("\n")
	return b.String()
}
