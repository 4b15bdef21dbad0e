package fade

import "math"

// Spec describes an authored gradient: packed colors, their locations along
// the ramp, and the ramp direction. The caller owns the Spec; the engine
// only reads it.
//
// Locations may be shorter than Colors. Missing entries fall back to even
// spacing, i/(n-1) for stop i of n. Stops are consulted in authored index
// order and are never sorted: the index, not the location value, decides
// which pair of stops a coordinate interpolates between.
type Spec struct {
	Colors    []Color
	Locations []float64
	Direction Direction
}

// location returns the effective location of stop i, clamped to [0, 1].
func (s Spec) location(i int) float64 {
	if i < len(s.Locations) {
		return clamp01(s.Locations[i])
	}
	if n := len(s.Colors); n > 1 {
		return float64(i) / float64(n-1)
	}
	return 0
}

// stopAt returns the interpolated channels at normalized coordinate t.
// Coordinates before the first stop's location pad to the first stop,
// coordinates past the last pad to the last.
func (s Spec) stopAt(t float64) (a, r, g, b uint8) {
	n := len(s.Colors)
	if n == 0 {
		return 0, 0, 0, 0
	}
	if n == 1 || t <= s.location(0) {
		return s.Colors[0].Channels()
	}
	for i := 0; i < n-1; i++ {
		lo, hi := s.location(i), s.location(i+1)
		if t > hi {
			continue
		}
		if hi == lo {
			return s.Colors[i].Channels()
		}
		k := (t - lo) / (hi - lo)
		a1, r1, g1, b1 := s.Colors[i].Channels()
		a2, r2, g2, b2 := s.Colors[i+1].Channels()
		return lerpChannel(a1, a2, k),
			lerpChannel(r1, r2, k),
			lerpChannel(g1, g2, k),
			lerpChannel(b1, b2, k)
	}
	return s.Colors[n-1].Channels()
}

// lerpChannel linearly interpolates one 8-bit channel.
func lerpChannel(c1, c2 uint8, k float64) uint8 {
	v := math.Round(float64(c1) + k*(float64(c2)-float64(c1)))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// clamp01 clamps a value to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// buildField rasterizes the gradient into a base field covering the
// surface. Because the four directions are all axis-aligned, the gradient
// only varies along one dimension: the builder computes a 1-D ramp at
// pixel centers along the resolved axis and broadcasts it across the
// perpendicular dimension.
//
// Returns nil when the surface is degenerate or the spec has no stops;
// callers treat a nil field as "no mask".
func buildField(spec Spec, width, height int) *Field {
	if width <= 0 || height <= 0 || len(spec.Colors) == 0 {
		return nil
	}

	x0, y0, x1, y1 := spec.Direction.resolve(width, height)
	dx, dy := x1-x0, y1-y0
	lengthSq := dx*dx + dy*dy

	horizontal := spec.Direction.horizontal()
	steps := height
	if horizontal {
		steps = width
	}

	f := &Field{
		width:      width,
		height:     height,
		alpha:      make([]uint8, width*height),
		ramp:       make([]uint8, steps*4),
		horizontal: horizontal,
	}

	rampAlpha := make([]uint8, steps)
	for j := 0; j < steps; j++ {
		var px, py float64
		if horizontal {
			px, py = float64(j)+0.5, float64(height)/2
		} else {
			px, py = float64(width)/2, float64(j)+0.5
		}

		t := 0.0
		if lengthSq > 0 {
			t = clamp01(((px-x0)*dx + (py-y0)*dy) / lengthSq)
		}

		a, r, g, b := spec.stopAt(t)
		rampAlpha[j] = a
		f.ramp[j*4+0] = r
		f.ramp[j*4+1] = g
		f.ramp[j*4+2] = b
		f.ramp[j*4+3] = a
	}

	if horizontal {
		for y := 0; y < height; y++ {
			copy(f.alpha[y*width:(y+1)*width], rampAlpha)
		}
	} else {
		for y := 0; y < height; y++ {
			row := f.alpha[y*width : (y+1)*width]
			v := rampAlpha[y]
			for i := range row {
				row[i] = v
			}
		}
	}

	return f
}
