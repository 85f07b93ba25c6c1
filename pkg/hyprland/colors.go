package hyprland

import (
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
	"strconv"
	"strings"
)

// ToColorful splits an ARGB value into its colour and alpha.
func ToColorful(argb uint32) (colorful.Color, uint8) {
	return colorful.Color{
		R: float64(argb>>16&0xff) / 255,
		G: float64(argb>>8&0xff) / 255,
		B: float64(argb&0xff) / 255,
	}, uint8(argb >> 24)
}

func FromColorful(c colorful.Color, alpha uint8) uint32 {
	r, g, b := c.Clamped().RGB255()
	return uint32(alpha)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// FormatRGBA renders an ARGB value in Hyprland's rgba(RRGGBBAA) syntax.
func FormatRGBA(argb uint32) string {
	c, alpha := ToColorful(argb)
	return fmt.Sprintf("rgba(%s%02x)", strings.TrimPrefix(c.Hex(), "#"), alpha)
}

// ParseColor accepts the colour syntaxes Hyprland prints and reads:
// bare AARRGGBB hex, 0xAARRGGBB, rgba(RRGGBBAA) and rgb(RRGGBB).
func ParseColor(s string) (uint32, error) {
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		hex := s[len("rgba(") : len(s)-1]
		if len(hex) != 8 {
			return 0, fmt.Errorf("invalid rgba colour %q", s)
		}
		c, err := colorful.Hex("#" + hex[:6])
		if err != nil {
			return 0, fmt.Errorf("parse rgba colour %q: %w", s, err)
		}
		alpha, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("parse rgba alpha %q: %w", s, err)
		}
		return FromColorful(c, uint8(alpha)), nil

	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		c, err := colorful.Hex("#" + s[len("rgb("):len(s)-1])
		if err != nil {
			return 0, fmt.Errorf("parse rgb colour %q: %w", s, err)
		}
		return FromColorful(c, 0xff), nil
	}

	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return uint32(v), nil
}
