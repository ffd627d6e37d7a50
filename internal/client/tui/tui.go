package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive client and blocks until it exits.
func Run(deps Deps) error {
	p := tea.NewProgram(New(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
