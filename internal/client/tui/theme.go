package tui

import "github.com/charmbracelet/lipgloss"

// Palette and shared styles. Badge colors follow the portal's web theme:
// red for lost, green for found, muted for closed-out statuses.
var (
	colorPrimary = lipgloss.Color("62")
	colorMuted   = lipgloss.Color("240")
	colorDanger  = lipgloss.Color("160")
	colorSuccess = lipgloss.Color("35")
	colorWarn    = lipgloss.Color("214")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	badgeLostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(colorDanger).
			Padding(0, 1)

	badgeFoundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(colorSuccess).
			Padding(0, 1)

	badgeStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("231")).
				Background(colorMuted).
				Padding(0, 1)

	badgeAuthenticStyle = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Bold(true)

	badgeForgedStyle = lipgloss.NewStyle().
				Foreground(colorDanger).
				Bold(true)

	roleBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(colorPrimary).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	cardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(colorWarn).
			Padding(0, 1)

	btnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(colorMuted).
			Padding(0, 1)

	btnActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(colorPrimary).
			Bold(true).
			Padding(0, 1)
)
