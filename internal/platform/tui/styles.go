package tui

import "github.com/charmbracelet/lipgloss"

// Shared styles for the menu and scoreboard screens.
var (
	accentColor = lipgloss.Color("229")
	borderColor = lipgloss.Color("240")
	dimColor    = lipgloss.Color("241")
	selectBg    = lipgloss.Color("57")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	dimStyle      = lipgloss.NewStyle().Foreground(dimColor)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	activeTab     = lipgloss.NewStyle().Bold(true).Foreground(accentColor).Background(selectBg).Padding(0, 1)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Padding(0, 1)
	emptyStyle    = dimStyle.Italic(true).Padding(2, 4)
)
