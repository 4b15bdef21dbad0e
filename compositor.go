package fade

import "github.com/gogpu/fade/internal/blend"

// Compositor applies an effective field to a content surface. One variant
// exists per rendering backend; the gradient math upstream of Apply is
// backend-agnostic and shared.
type Compositor interface {
	// Apply returns content masked by the field. Implementations must not
	// mutate their inputs.
	Apply(content *Pixmap, field *Field) *Pixmap
}

// SoftwareCompositor masks content on the CPU with a destination-in rule:
// the result's alpha at each pixel is the product of the content alpha and
// the field alpha, and color channels pass through untouched.
type SoftwareCompositor struct{}

// Apply composites the field onto a copy of content. A nil field or a
// field whose size does not match the content passes content through
// unmodified.
func (SoftwareCompositor) Apply(content *Pixmap, field *Field) *Pixmap {
	if content == nil {
		return nil
	}
	if field == nil || field.width != content.width || field.height != content.height {
		return content
	}

	out := NewPixmap(content.width, content.height)
	copy(out.data, content.data)
	for i, a := range field.alpha {
		out.data[i*4+3] = blend.DestinationIn(out.data[i*4+3], a)
	}
	return out
}
