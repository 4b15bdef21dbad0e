package fade

// Props mirrors the raw inputs a hosting view layer supplies: packed ARGB
// colors where nil means absent, stop locations, a direction name, and the
// mask opacity driven per frame by the host's animation clock. YAML tags
// let tooling load a gradient description from a file.
type Props struct {
	Colors      []*uint32 `yaml:"colors"`
	Locations   []float64 `yaml:"locations"`
	Direction   string    `yaml:"direction"`
	MaskOpacity *float64  `yaml:"maskOpacity"`
}

// Spec converts the raw props to an engine Spec. An absent color becomes
// fully transparent black and an unrecognized or absent direction falls
// back to [Top]. Locations are passed through; the builder fills any
// missing tail with even spacing.
func (p Props) Spec() Spec {
	colors := make([]Color, len(p.Colors))
	for i, c := range p.Colors {
		if c != nil {
			colors[i] = Color(*c)
		}
	}
	return Spec{
		Colors:    colors,
		Locations: append([]float64(nil), p.Locations...),
		Direction: ParseDirection(p.Direction),
	}
}

// Intensity returns the mask opacity clamped to [0, 1], defaulting to 1
// when absent.
func (p Props) Intensity() float64 {
	if p.MaskOpacity == nil {
		return 1
	}
	return clampIntensity(*p.MaskOpacity)
}
