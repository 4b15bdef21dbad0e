package fade

import "math"

// blendAlpha applies the intensity transform to one base alpha value:
//
//	round(base*intensity + 255*(1-intensity))
//
// At intensity 0 every output is 255 (mask disabled); at intensity 1 the
// output equals the base alpha. The caller clamps intensity to [0, 1].
func blendAlpha(base uint8, intensity float64) uint8 {
	v := math.Round(float64(base)*intensity + 255*(1-intensity))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// clampIntensity clamps an intensity value to [0, 1].
// NaN is treated as 0 (mask disabled).
func clampIntensity(i float64) float64 {
	if !(i > 0) {
		return 0
	}
	if i > 1 {
		return 1
	}
	return i
}

// WithIntensity returns the effective field for the given intensity. The
// transform is affine over the base alpha and goes through a 256-entry
// lookup table, so its cost is one pass over the field and is independent
// of the gradient's stop count. The original stops are never consulted.
//
// Intensity is clamped to [0, 1]. At 1 the receiver itself is returned
// without copying; the returned field must then not be mutated.
func (f *Field) WithIntensity(intensity float64) *Field {
	if f == nil {
		return nil
	}
	intensity = clampIntensity(intensity)
	if intensity >= 1 {
		return f
	}

	var lut [256]uint8
	for v := range lut {
		lut[v] = blendAlpha(uint8(v), intensity)
	}

	out := &Field{
		width:      f.width,
		height:     f.height,
		alpha:      make([]uint8, len(f.alpha)),
		ramp:       f.ramp,
		horizontal: f.horizontal,
	}
	for i, v := range f.alpha {
		out.alpha[i] = lut[v]
	}
	return out
}
