package tui

import (
	"codeberg.org/miketth/hyprtint/pkg/hyprland"
	"codeberg.org/miketth/hyprtint/pkg/hyprtint"
	"codeberg.org/miketth/hyprtint/pkg/xkblayouts"
	"fmt"
)

type LayoutOption struct {
	ID   hyprtint.LayoutID
	Name string
}

type KeyboardSource interface {
	GetKeyboards() ([]hyprland.Keyboard, error)
}

type NameSource interface {
	DisplayName(layout, variant string) string
}

// InstalledLayouts lists the layouts configured on the keyboards Hyprland
// knows about, main keyboard first, each layout and variant once.
type InstalledLayouts struct {
	Keyboards KeyboardSource
	Names     NameSource
}

func (l InstalledLayouts) Layouts() ([]LayoutOption, error) {
	keyboards, err := l.Keyboards.GetKeyboards()
	if err != nil {
		return nil, fmt.Errorf("get keyboards: %w", err)
	}

	ordered := make([]hyprland.Keyboard, 0, len(keyboards))
	for _, k := range keyboards {
		if k.Main {
			ordered = append(ordered, k)
		}
	}
	for _, k := range keyboards {
		if !k.Main {
			ordered = append(ordered, k)
		}
	}

	seen := make(map[hyprtint.LayoutID]bool)
	var out []LayoutOption
	for _, k := range ordered {
		for i, code := range k.Layouts {
			if code == "" {
				continue
			}
			variant := ""
			if i < len(k.Variants) {
				variant = k.Variants[i]
			}

			id := xkblayouts.ID(code, variant)
			if seen[id] {
				continue
			}
			seen[id] = true

			name := l.Names.DisplayName(code, variant)
			if name == "" {
				name = string(id)
			}
			out = append(out, LayoutOption{ID: id, Name: name})
		}
	}

	return out, nil
}
