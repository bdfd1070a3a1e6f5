package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nejtool/nej/internal/types"
)

// Run starts the review TUI with an initial set of dry-run reports.
func Run(reports []types.FileReport, scan Scanner, apply Applier) error {
	m := NewModel(reports, scan, apply)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
