package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows m full screen until the user quits.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
