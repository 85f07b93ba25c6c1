package hyprland

import (
	"strings"
)

type Keyboard struct {
	Name         string
	Layouts      []string
	Variants     []string
	ActiveKeymap string
	Main         bool
}

type keyboard struct {
	Name         string `json:"name"`
	Layout       string `json:"layout"`
	Variant      string `json:"variant"`
	Options      string `json:"options"`
	ActiveKeymap string `json:"active_keymap"`
	Main         bool   `json:"main"`
}

type devices struct {
	Keyboards []keyboard `json:"keyboards"`
}

func (k keyboard) ToKeyboard() Keyboard {
	layouts := splitList(k.Layout)
	variants := splitList(k.Variant)
	for len(variants) < len(layouts) {
		variants = append(variants, "")
	}

	return Keyboard{
		Name:         k.Name,
		Layouts:      layouts,
		Variants:     variants,
		ActiveKeymap: k.ActiveKeymap,
		Main:         k.Main,
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
