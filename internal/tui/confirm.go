package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// MenuAction is the user's decision about a composed message.
type MenuAction int

const (
	CommitThis MenuAction = iota
	CopyToClipboard
	Cancel
)

type menuItem struct {
	title  string
	action MenuAction
}

func (i menuItem) FilterValue() string { return i.title }

type menuDelegate struct {
	theme Theme
}

func (d menuDelegate) Height() int                             { return 1 }
func (d menuDelegate) Spacing() int                            { return 0 }
func (d menuDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d menuDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(menuItem)
	if !ok {
		return
	}

	fn := d.theme.Item.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return d.theme.SelectedItem.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(i.title))
}

type confirmModel struct {
	list     list.Model
	theme    Theme
	message  string
	choice   MenuAction
	chosen   bool
	quitting bool
}

func newConfirmModel(theme Theme, message string) confirmModel {
	items := []list.Item{
		menuItem{title: "✅ Commit this", action: CommitThis},
		menuItem{title: "📋 Copy to clipboard and exit", action: CopyToClipboard},
		menuItem{title: "❌ Cancel", action: Cancel},
	}

	const defaultWidth = 40

	l := list.New(items, menuDelegate{theme: theme}, defaultWidth, 8)
	l.Title = "Commit with this message?"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.Title
	l.Styles.PaginationStyle = theme.Pagination
	l.Styles.HelpStyle = theme.Help

	return confirmModel{list: l, theme: theme, message: message}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch keypress := msg.String(); keypress {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(menuItem)
			if ok {
				m.choice = i.action
				m.chosen = true
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m confirmModel) View() string {
	if m.quitting {
		return m.theme.Quit.Render("Exiting...")
	}
	return fmt.Sprintf("\n%s\n\n%s", m.message, m.list.View())
}

// Confirm previews the composed message and asks what to do with it. An
// abort key returns ErrAborted.
func Confirm(theme Theme, message string) (MenuAction, error) {
	p := tea.NewProgram(newConfirmModel(theme, message))
	finalModel, err := p.Run()
	if err != nil {
		return Cancel, fmt.Errorf("failed to run confirm menu: %w", err)
	}

	m, ok := finalModel.(confirmModel)
	if !ok || !m.chosen {
		return Cancel, ErrAborted
	}
	return m.choice, nil
}
