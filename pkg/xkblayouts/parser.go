package xkblayouts

import (
	"codeberg.org/miketth/hyprtint/pkg/hyprtint"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

const DefaultRulesPath = "/usr/share/X11/xkb/rules/evdev.xml"

func ParseLayouts(path string) (*XkbConfigRegistry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

func Parse(r io.Reader) (*XkbConfigRegistry, error) {
	registry := &XkbConfigRegistry{}
	if err := xml.NewDecoder(r).Decode(registry); err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}

	registry.index()
	return registry, nil
}

func (r *XkbConfigRegistry) index() {
	r.byDescription = make(map[string]hyprtint.LayoutID)
	for _, l := range r.LayoutList.Layout {
		code := l.ConfigItem.Name
		r.byDescription[l.ConfigItem.Description] = ID(code, "")
		for _, v := range l.VariantList.Variant {
			r.byDescription[v.ConfigItem.Description] = ID(code, v.ConfigItem.Name)
		}
	}
}

// DisplayName returns the description of a layout or variant, or "" if the
// registry does not know it.
func (r *XkbConfigRegistry) DisplayName(layout, variant string) string {
	for _, l := range r.LayoutList.Layout {
		if l.ConfigItem.Name != layout {
			continue
		}
		if variant == "" {
			return l.ConfigItem.Description
		}
		for _, v := range l.VariantList.Variant {
			if v.ConfigItem.Name == variant {
				return v.ConfigItem.Description
			}
		}
	}

	return ""
}

// LayoutForName resolves a keymap description, as reported by Hyprland's
// activelayout event, to the ID of that layout and variant.
func (r *XkbConfigRegistry) LayoutForName(name string) (hyprtint.LayoutID, bool) {
	code, ok := r.byDescription[name]
	return code, ok
}
