package fade

import "image"

// Field is a rasterized alpha field covering a surface. Values range from
// 0 (fully transparent) to 255 (fully opaque). A Field also keeps the 1-D
// color ramp it was built from so the mask can be rendered visually for
// inspection; only the alpha channel participates in compositing.
//
// Base fields are owned by their [Engine]; effective fields returned by
// [Field.WithIntensity] are transient and live for one composite.
type Field struct {
	width      int
	height     int
	alpha      []uint8 // len width*height
	ramp       []uint8 // RGBA per ramp step, along the gradient axis
	horizontal bool    // ramp runs along x rather than y
}

// Width returns the field width.
func (f *Field) Width() int { return f.width }

// Height returns the field height.
func (f *Field) Height() int { return f.height }

// Bounds returns the field dimensions as an image.Rectangle.
func (f *Field) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// AlphaAt returns the alpha value at (x, y).
// Returns 0 for coordinates outside the field bounds.
func (f *Field) AlphaAt(x, y int) uint8 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.alpha[y*f.width+x]
}

// Alpha returns the underlying alpha data, one byte per pixel in row-major
// order. The slice is shared, not copied.
func (f *Field) Alpha() []uint8 {
	return f.alpha
}

// Image renders the field as a non-premultiplied RGBA image using the
// authored stop colors, for visual debugging of the mask itself.
func (f *Field) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			j := y
			if f.horizontal {
				j = x
			}
			i := img.PixOffset(x, y)
			img.Pix[i+0] = f.ramp[j*4+0]
			img.Pix[i+1] = f.ramp[j*4+1]
			img.Pix[i+2] = f.ramp[j*4+2]
			img.Pix[i+3] = f.alpha[y*f.width+x]
		}
	}
	return img
}
