package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"peak/internal/engine"
)

// BoardOptions configures the dashboard header.
type BoardOptions struct {
	Label  string
	Target time.Time
}

func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer, opts BoardOptions) error {
	m := newBoardModel(ctx, svc, opts)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
