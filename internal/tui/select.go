package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"cz/internal/commit"
)

const listHeight = 14

type typeItem struct {
	t commit.Type
}

func (i typeItem) FilterValue() string { return "" }

type typeDelegate struct {
	theme Theme
}

func (d typeDelegate) Height() int                             { return 1 }
func (d typeDelegate) Spacing() int                            { return 0 }
func (d typeDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d typeDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(typeItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%s: %s", i.t, i.t.Details().Description)

	fn := d.theme.Item.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return d.theme.SelectedItem.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

type selectModel struct {
	list    list.Model
	theme   Theme
	choice  commit.Type
	chosen  bool
	aborted bool
}

func newSelectModel(theme Theme) selectModel {
	items := make([]list.Item, 0, len(commit.Types()))
	for _, t := range commit.Types() {
		items = append(items, typeItem{t: t})
	}

	const defaultWidth = 60

	l := list.New(items, typeDelegate{theme: theme}, defaultWidth, listHeight)
	l.Title = "Select the type of change that you're committing"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.Title
	l.Styles.PaginationStyle = theme.Pagination
	l.Styles.HelpStyle = theme.Help

	return selectModel{list: l, theme: theme}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch keypress := msg.String(); keypress {
		case "q", "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(typeItem)
			if ok {
				m.choice = i.t
				m.chosen = true
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	if m.aborted {
		return m.theme.Quit.Render("Exiting...")
	}
	return "\n" + m.list.View()
}

// SelectType runs the commit-type picker. The first type is preselected.
func SelectType(theme Theme) (commit.Type, error) {
	p := tea.NewProgram(newSelectModel(theme))
	finalModel, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("failed to run type picker: %w", err)
	}

	m, ok := finalModel.(selectModel)
	if !ok || !m.chosen {
		return 0, ErrAborted
	}
	return m.choice, nil
}
