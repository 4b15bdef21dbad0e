package fade

import (
	"encoding/binary"
	"math"
	"sync"
	"sync/atomic"
)

// cacheKey identifies a built base field. Slices are flattened into
// strings so keys compare by value with ==.
type cacheKey struct {
	colors    string
	locations string
	direction Direction
	width     int
	height    int
}

// specKey builds the cache key for (spec, surface size).
func specKey(spec Spec, width, height int) cacheKey {
	cb := make([]byte, len(spec.Colors)*4)
	for i, c := range spec.Colors {
		binary.BigEndian.PutUint32(cb[i*4:], uint32(c))
	}
	lb := make([]byte, len(spec.Locations)*8)
	for i, l := range spec.Locations {
		binary.BigEndian.PutUint64(lb[i*8:], math.Float64bits(l))
	}
	return cacheKey{
		colors:    string(cb),
		locations: string(lb),
		direction: spec.Direction,
		width:     width,
		height:    height,
	}
}

// Stats reports cache behavior for one engine.
type Stats struct {
	Rebuilds uint64 // base field rasterizations
	Hits     uint64 // Ensure calls satisfied by the cached field
}

// Engine owns the cached base field for one mask instance and applies the
// mask to content. The zero value is ready to use and composites with
// [SoftwareCompositor].
//
// The cache is keyed by (colors, locations, direction, surface size).
// Intensity is deliberately not part of the key: it is applied per draw as
// a transform over the cached field, so intensity-only updates never
// trigger a rebuild.
//
// An Engine serializes access with one mutex, so a layout pass may update
// the spec from a different goroutine than the one reading intensity at
// draw time. A composite observes either the previous complete field or
// the new complete one, never a partial rebuild.
type Engine struct {
	mu    sync.Mutex
	key   cacheKey
	base  *Field
	built bool
	comp  Compositor

	rebuilds atomic.Uint64
	hits     atomic.Uint64
}

// SetCompositor selects the backend used by Composite.
// Pass nil to restore the default [SoftwareCompositor].
func (e *Engine) SetCompositor(c Compositor) {
	e.mu.Lock()
	e.comp = c
	e.mu.Unlock()
}

// Ensure returns the base field for (spec, width, height), rebuilding it
// only when one of the key components changed by value since the last
// call. The superseded field is released on rebuild.
//
// Returns nil for a degenerate surface or an empty spec.
func (e *Engine) Ensure(spec Spec, width, height int) *Field {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ensureLocked(spec, width, height)
}

func (e *Engine) ensureLocked(spec Spec, width, height int) *Field {
	key := specKey(spec, width, height)
	if e.built && key == e.key {
		e.hits.Add(1)
		return e.base
	}

	e.base = buildField(spec, width, height)
	e.key = key
	e.built = true
	e.rebuilds.Add(1)
	Logger().Debug("base field rebuilt",
		"width", width, "height", height,
		"stops", len(spec.Colors), "direction", spec.Direction.String())
	return e.base
}

// Composite applies the gradient mask to content at the given intensity
// and returns the masked surface. This is the per-draw entry point: the
// engine reads whatever intensity value the caller holds at draw time, so
// intensity updates arriving faster than redraws collapse to the latest
// value.
//
// Intensity is clamped to [0, 1]. At 0 the mask is disabled and content is
// returned unchanged without touching the cache or allocating. A nil or
// zero-sized content surface, or a spec with no stops, also passes through.
func (e *Engine) Composite(content *Pixmap, spec Spec, intensity float64) *Pixmap {
	if content == nil || content.width <= 0 || content.height <= 0 {
		return content
	}
	intensity = clampIntensity(intensity)
	if intensity <= 0 {
		return content
	}

	e.mu.Lock()
	base := e.ensureLocked(spec, content.width, content.height)
	comp := e.comp
	e.mu.Unlock()

	if base == nil {
		return content
	}
	if comp == nil {
		comp = SoftwareCompositor{}
	}
	return comp.Apply(content, base.WithIntensity(intensity))
}

// Release drops the cached base field so its buffer can be collected.
// The next Ensure rebuilds from scratch. Call when the owning view is
// torn down.
func (e *Engine) Release() {
	e.mu.Lock()
	e.base = nil
	e.built = false
	e.mu.Unlock()
}

// Stats returns the rebuild and hit counters. Safe to call concurrently
// with composites.
func (e *Engine) Stats() Stats {
	return Stats{
		Rebuilds: e.rebuilds.Load(),
		Hits:     e.hits.Load(),
	}
}
