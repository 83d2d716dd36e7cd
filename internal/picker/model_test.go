package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func step(t *testing.T, m model, key string) model {
	t.Helper()
	next, _ := m.Update(keyMsg(key))
	out, ok := next.(model)
	require.True(t, ok)
	return out
}

func TestModelCursorMovement(t *testing.T) {
	m := newModel([]string{"a", "b", "c"}, "Pick one", false)

	m = step(t, m, "down")
	assert.Equal(t, 1, m.cursor)
	m = step(t, m, "down")
	m = step(t, m, "down")
	assert.Equal(t, 2, m.cursor, "cursor stops at the last item")

	m = step(t, m, "up")
	assert.Equal(t, 1, m.cursor)
	m = step(t, m, "up")
	m = step(t, m, "up")
	assert.Equal(t, 0, m.cursor, "cursor stops at the first item")
}

func TestModelCancel(t *testing.T) {
	m := newModel([]string{"a"}, "Pick one", false)
	m = step(t, m, "esc")
	assert.True(t, m.cancelled)
}

func TestModelMultiToggle(t *testing.T) {
	m := newModel([]string{"a", "b"}, "Pick some", true)

	m = step(t, m, " ")
	assert.Contains(t, m.chosen, 0)

	m = step(t, m, " ")
	assert.NotContains(t, m.chosen, 0, "space toggles off")

	m = step(t, m, " ")
	m = step(t, m, "down")
	m = step(t, m, " ")
	assert.Len(t, m.chosen, 2)
}

func TestModelSingleSelectIgnoresSpace(t *testing.T) {
	m := newModel([]string{"a"}, "Pick one", false)
	m = step(t, m, " ")
	assert.Empty(t, m.chosen)
}

func TestModelViewShowsPlaceholderAndItems(t *testing.T) {
	m := newModel([]string{"first", "second"}, "Select a workspace folder", false)
	view := m.View()
	assert.Contains(t, view, "Select a workspace folder")
	assert.Contains(t, view, "first")
	assert.Contains(t, view, "second")
}
