package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func updateInput(t *testing.T, m inputModel, msg tea.Msg) inputModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(inputModel)
	require.True(t, ok)
	return out
}

func typeString(t *testing.T, m inputModel, s string) inputModel {
	t.Helper()
	return updateInput(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestInputRequiredRejectsEmpty(t *testing.T) {
	m := newInputModel(NewTheme(), "Write a short description:", false)

	m = updateInput(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.done, "empty submission must not complete a required prompt")
	assert.False(t, m.aborted)
}

func TestInputRequiredAcceptsValue(t *testing.T) {
	m := newInputModel(NewTheme(), "Write a short description:", false)

	m = typeString(t, m, "add retry")
	m = updateInput(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.done)
	assert.Equal(t, "add retry", m.input.Value())
}

func TestInputSkippableAcceptsEmpty(t *testing.T) {
	m := newInputModel(NewTheme(), "What is the scope? (press enter to skip)", true)

	m = updateInput(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.done)
	assert.Empty(t, m.input.Value())
}

func TestInputAbortKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newInputModel(NewTheme(), "Related issues:", true)

		m = typeString(t, m, "#42")
		m = updateInput(t, m, tea.KeyMsg{Type: key})

		assert.True(t, m.aborted, "key %v must abort", key)
		assert.False(t, m.done)
	}
}
