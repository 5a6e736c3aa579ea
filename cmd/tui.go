package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/insightboard/internal/shared"
	"github.com/desertthunder/insightboard/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive saved-videos browser for the signed-in account.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if err := r.loadConfig(cmd); err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/insightboard-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	user, err := r.currentUser()
	if err != nil {
		return err
	}
	videos, err := r.videoStore()
	if err != nil {
		return err
	}
	fetcher, err := r.videoFetcher(ctx)
	if err != nil {
		return err
	}

	model := ui.NewModel(ctx, videos, fetcher, user)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
