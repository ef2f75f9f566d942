package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles every prompt renders with. It is built once per
// run and passed into the prompt models rather than living in mutable
// package state.
type Theme struct {
	Title        lipgloss.Style
	Prompt       lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	Pagination   lipgloss.Style
	Help         lipgloss.Style
	Quit         lipgloss.Style
}

func NewTheme() Theme {
	return Theme{
		Title:        lipgloss.NewStyle().MarginLeft(2).Bold(true),
		Prompt:       lipgloss.NewStyle().Bold(true),
		Item:         lipgloss.NewStyle().PaddingLeft(4),
		SelectedItem: lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170")),
		Pagination:   list.DefaultStyles().PaginationStyle.PaddingLeft(4),
		Help:         list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1),
		Quit:         lipgloss.NewStyle().Margin(1, 0, 2, 4),
	}
}
