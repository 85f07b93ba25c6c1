package hyprland

import (
	"codeberg.org/miketth/hyprtint/pkg/hyprtint"
	"codeberg.org/miketth/hyprtint/pkg/xkblayouts"
	"errors"
	"fmt"
	"strings"
)

const (
	ActiveBorderOption   = "general:col.active_border"
	InactiveBorderOption = "general:col.inactive_border"
)

var ErrNoKeyboards = errors.New("no keyboards reported")

// Colorizer maps ColorParameters onto Hyprland's border colours: Color is the
// active border, AfterglowColor the inactive one. The remaining fields have
// no Hyprland counterpart and are left untouched.
type Colorizer struct {
	ctl *Hyprctl
}

func NewColorizer(ctl *Hyprctl) *Colorizer {
	return &Colorizer{ctl: ctl}
}

func (c *Colorizer) Current() (hyprtint.ColorParameters, error) {
	active, err := c.option(ActiveBorderOption)
	if err != nil {
		return hyprtint.ColorParameters{}, err
	}

	inactive, err := c.option(InactiveBorderOption)
	if err != nil {
		return hyprtint.ColorParameters{}, err
	}

	return hyprtint.ColorParameters{Color: active, AfterglowColor: inactive}, nil
}

func (c *Colorizer) Apply(params hyprtint.ColorParameters) error {
	if err := c.ctl.Keyword(ActiveBorderOption, FormatRGBA(params.Color)); err != nil {
		return fmt.Errorf("set active border: %w", err)
	}
	if err := c.ctl.Keyword(InactiveBorderOption, FormatRGBA(params.AfterglowColor)); err != nil {
		return fmt.Errorf("set inactive border: %w", err)
	}
	return nil
}

// option reads the first colour of a (possibly gradient) colour option.
// Newer Hyprland reports gradients under "custom", older releases an
// integer under "int".
func (c *Colorizer) option(name string) (uint32, error) {
	opt, err := c.ctl.GetOption(name)
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", name, err)
	}

	if custom := strings.Fields(opt.Get("custom").String()); len(custom) > 0 {
		color, err := ParseColor(custom[0])
		if err != nil {
			return 0, fmt.Errorf("get %s: %w", name, err)
		}
		return color, nil
	}

	if v := opt.Get("int"); v.Exists() {
		return uint32(v.Int()), nil
	}

	return 0, fmt.Errorf("get %s: no colour in %s", name, opt.Raw)
}

// DefaultLayout is the first layout of the main keyboard, or of the first
// keyboard when none is marked main.
func (c *Colorizer) DefaultLayout() (hyprtint.LayoutID, error) {
	keyboards, err := c.ctl.GetKeyboards()
	if err != nil {
		return "", fmt.Errorf("get keyboards: %w", err)
	}
	if len(keyboards) == 0 {
		return "", ErrNoKeyboards
	}

	kb := keyboards[0]
	for _, k := range keyboards {
		if k.Main {
			kb = k
			break
		}
	}

	if len(kb.Layouts) == 0 || kb.Layouts[0] == "" {
		return "", fmt.Errorf("keyboard %q has no layouts", kb.Name)
	}

	variant := ""
	if len(kb.Variants) > 0 {
		variant = kb.Variants[0]
	}

	return xkblayouts.ID(kb.Layouts[0], variant), nil
}
