package tui

import "github.com/charmbracelet/lipgloss"

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Width(36)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	trackingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	pausedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	runningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("84")).Bold(true)
	searchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("236"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	graphStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
)
