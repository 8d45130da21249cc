package tui

import "github.com/charmbracelet/lipgloss"

var (
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
