package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

var errNoSource = errors.New("tui: no product source")

// Run starts the full-screen browser and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	applyThemePreference()
	applyColorProfilePreference(opts.Profile)

	m := newAppModel(ctx, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
