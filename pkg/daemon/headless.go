package daemon

import (
	"codeberg.org/miketth/hyprtint/pkg/hyprtint"
	"context"
)

// Headless drives the controller without a settings UI; it stays hidden.
type Headless struct {
	controller *hyprtint.Controller
}

func NewHeadless(controller *hyprtint.Controller) *Headless {
	return &Headless{controller: controller}
}

func (h *Headless) Run(ctx context.Context, events <-chan hyprtint.LayoutID) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case layout := <-events:
			h.controller.HandleLayoutChange(layout)
		}
	}
}
