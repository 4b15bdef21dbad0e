// Package fade implements a directional gradient transparency mask with a
// per-frame intensity control.
//
// # Overview
//
// fade turns a set of color stops, stop locations and a direction into an
// alpha field covering a surface, and applies that field to content with a
// destination-in rule. A single scalar intensity in [0, 1] scales the
// effect: 0 disables the mask entirely and 1 applies the authored gradient.
//
// The expensive part, rasterizing the gradient into a base field, is cached
// per [Engine] and keyed by (colors, locations, direction, surface size).
// Intensity is applied afterwards as an affine transform over the cached
// field, so animating intensity every frame never rebuilds the gradient.
//
// # Quick Start
//
//	import "github.com/gogpu/fade"
//
//	spec := fade.Spec{
//	    Colors:    []fade.Color{0x00000000, 0xFF000000},
//	    Locations: []float64{0, 1},
//	    Direction: fade.Top,
//	}
//
//	var engine fade.Engine
//	masked := engine.Composite(content, spec, intensity)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Color, Direction, Spec, Field, Engine, Compositor, Props
//   - Internal: blend (byte-level compositing operators)
//   - Backends: SoftwareCompositor (CPU destination-in), MaskImage (CSS
//     mask directive for style-based hosts)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates: origin (0,0) at top-left,
// X increases right, Y increases down. [Top] therefore ramps from the top
// edge of the surface down to the bottom edge.
//
// # Logging
//
// fade produces no log output by default. Call [SetLogger] to enable
// diagnostics for cache rebuilds and degraded inputs.
package fade
