package fade

import (
	"fmt"
	"strings"
)

// cssDirections maps each ramp direction to its CSS linear-gradient
// keyword. Top ramps downward in surface coordinates, which CSS spells
// "to bottom".
var cssDirections = map[Direction]string{
	Top:    "to bottom",
	Bottom: "to top",
	Left:   "to right",
	Right:  "to left",
}

// MaskImage returns a CSS linear-gradient directive equivalent to
// compositing the spec at the given intensity, for hosts that mask a
// content layer through a style property (mask-image or
// -webkit-mask-image) rather than through bitmap compositing.
//
// Intensity is folded into each stop's alpha with the same transform the
// software path applies per pixel, so both backends agree at every
// boundary. Returns the empty string when the mask is disabled
// (intensity <= 0) or the spec has no stops; hosts clear the style
// property in that case.
func MaskImage(spec Spec, intensity float64) string {
	intensity = clampIntensity(intensity)
	if intensity <= 0 || len(spec.Colors) == 0 {
		return ""
	}

	dir, ok := cssDirections[spec.Direction]
	if !ok {
		dir = cssDirections[Top]
	}

	var sb strings.Builder
	sb.WriteString("linear-gradient(")
	sb.WriteString(dir)
	for i, c := range spec.Colors {
		a, r, g, b := c.Channels()
		a = blendAlpha(a, intensity)
		fmt.Fprintf(&sb, ", rgba(%d, %d, %d, %s) %s%%",
			r, g, b,
			formatAlpha(a),
			formatPercent(spec.location(i)*100))
	}
	sb.WriteString(")")
	return sb.String()
}

// formatAlpha renders an 8-bit alpha as a CSS alpha fraction with three
// decimals (the precision step of 1/255 is ~0.004).
func formatAlpha(a uint8) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", float64(a)/255), "0"), ".")
}

// formatPercent renders a stop position, dropping a trailing ".00".
func formatPercent(p float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", p), "0"), ".")
}
