package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/qdm12/guestbook/internal/models"
)

type styles struct {
	title   lipgloss.Style
	entry   lipgloss.Style
	waiting lipgloss.Style
	address lipgloss.Style
	link    lipgloss.Style
	help    lipgloss.Style
}

func newStyles(accent models.Color) styles {
	color := lipgloss.Color(string(accent))
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#fff")).
			Background(color).
			Padding(0, 1),
		entry: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(color).
			PaddingLeft(1),
		waiting: lipgloss.NewStyle().Faint(true).Italic(true),
		address: lipgloss.NewStyle().Bold(true),
		link:    lipgloss.NewStyle().Foreground(color).Underline(true),
		help:    lipgloss.NewStyle().Faint(true),
	}
}
