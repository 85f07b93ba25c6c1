package hyprtint

import (
	"go.uber.org/zap"
)

type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	}
	return "unknown"
}

// Controller applies colour schemes on layout changes. It must be driven from
// a single goroutine.
type Controller struct {
	config    Configuration
	state     State
	colorizer Colorizer
	log       *zap.SugaredLogger
}

func NewController(config Configuration, colorizer Colorizer, log *zap.SugaredLogger) *Controller {
	return &Controller{
		config:    config,
		state:     Hidden,
		colorizer: colorizer,
		log:       log,
	}
}

func (c *Controller) Configuration() Configuration {
	return c.config
}

func (c *Controller) SetConfiguration(config Configuration) {
	c.config = config
}

func (c *Controller) Visible() bool {
	return c.state == Visible
}

func (c *Controller) Show() {
	c.state = Visible
}

func (c *Controller) Hide() {
	c.state = Hidden
}

// HandleLayoutChange reports whether a scheme was sent to the colorizer.
// Changes are ignored while the settings UI is open, and apply failures are
// only logged.
func (c *Controller) HandleLayoutChange(layout LayoutID) bool {
	if c.state == Visible {
		c.log.Debugw("settings open, ignoring layout change", "layout", layout)
		return false
	}

	params := Decide(layout, c.config)
	if err := c.colorizer.Apply(params); err != nil {
		c.log.Debugw("apply colorization", "layout", layout, "error", err)
		return true
	}

	c.log.Debugw("applied colorization", "layout", layout, "color", params.Color)
	return true
}
