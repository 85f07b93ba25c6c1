package hyprtint

// LayoutID names an installed keyboard layout, e.g. "us" or "ru".
type LayoutID string

// ColorParameters is a compositor colorization record. Colors are ARGB.
type ColorParameters struct {
	Color            uint32
	AfterglowColor   uint32
	ColorBalance     uint32
	AfterglowBalance uint32
	BlurBalance      uint32
	GlowBalance      uint32
	OpaqueBlend      uint32
}

type Configuration struct {
	DefaultLayout     LayoutID
	DefaultScheme     ColorParameters
	AlternativeScheme ColorParameters
}
