package hyprtint

// Decide picks the scheme for the active layout. Every layout other than the
// default one shares the alternative scheme.
func Decide(layout LayoutID, cfg Configuration) ColorParameters {
	if layout == cfg.DefaultLayout {
		return cfg.DefaultScheme
	}
	return cfg.AlternativeScheme
}
