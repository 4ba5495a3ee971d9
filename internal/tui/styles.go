package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	bigStyle      = lipgloss.NewStyle().Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder())
)

// applyTheme swaps the accent palette; "mono" drops colour entirely.
func applyTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		titleStyle = titleStyle.Foreground(lipgloss.Color("13"))
		accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		headerStyle = headerStyle.Foreground(lipgloss.Color("13"))
	case "mono":
		successStyle = lipgloss.NewStyle()
		accentStyle = lipgloss.NewStyle()
		errorStyle = lipgloss.NewStyle().Bold(true)
		headerStyle = lipgloss.NewStyle().Bold(true)
	}
}

func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}

// statusLine renders a one-line status; errors are red.
func statusLine(msg string, isErr bool) string {
	if msg == "" {
		return ""
	}
	if isErr {
		return errorStyle.Render("✖ " + msg)
	}
	return successStyle.Render("✔ " + msg)
}
