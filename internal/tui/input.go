package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	input      textinput.Model
	theme      Theme
	prompt     string
	allowEmpty bool
	done       bool
	aborted    bool
}

func newInputModel(theme Theme, prompt string, allowEmpty bool) inputModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Focus()

	return inputModel{
		input:      ti,
		theme:      theme,
		prompt:     prompt,
		allowEmpty: allowEmpty,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit

		case "enter":
			// Required answers stay on the prompt until something is typed.
			if m.input.Value() == "" && !m.allowEmpty {
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.aborted {
		return m.theme.Quit.Render("Exiting...")
	}
	return fmt.Sprintf("\n%s\n%s\n", m.theme.Prompt.Render(m.prompt), m.input.View())
}

// Ask runs a single free-text prompt. Empty input is accepted only when
// allowEmpty is set; esc or ctrl+c returns ErrAborted.
func Ask(theme Theme, prompt string, allowEmpty bool) (string, error) {
	p := tea.NewProgram(newInputModel(theme, prompt, allowEmpty))
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run prompt: %w", err)
	}

	m, ok := finalModel.(inputModel)
	if !ok || !m.done {
		return "", ErrAborted
	}
	return m.input.Value(), nil
}
