package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/paneshell/internal/cli/styles"
)

// confirm asks a yes/no question on the terminal.
func confirm(theme *styles.Theme, message, detail string) (bool, error) {
	p := tea.NewProgram(styles.NewConfirm(theme, message, detail))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	m, ok := final.(styles.ConfirmModel)
	return ok && m.Confirmed(), nil
}
