package tui

import (
	"codeberg.org/miketth/hyprtint/pkg/hyprtint"
	"context"
	"fmt"
	tea "github.com/charmbracelet/bubbletea"
)

// Frontend runs the settings UI as a bubbletea program. All controller access
// happens on the program's update loop.
type Frontend struct {
	model Model
	opts  []tea.ProgramOption
}

func NewFrontend(model Model, opts ...tea.ProgramOption) *Frontend {
	return &Frontend{model: model, opts: opts}
}

func (f *Frontend) Run(ctx context.Context, events <-chan hyprtint.LayoutID) error {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, f.opts...)
	p := tea.NewProgram(f.model, opts...)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case layout := <-events:
				p.Send(layoutChangedMsg{layout: layout})
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run ui: %w", err)
	}

	return nil
}
