package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the wizard, optionally loading the given case file. Blocks
// until the user quits.
func Run(path string) error {
	p := tea.NewProgram(NewModel(path), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
