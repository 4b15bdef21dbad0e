package fade

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/fade/internal/blend"
)

// Pixmap is a rectangular pixel buffer holding straight (non-premultiplied)
// RGBA bytes, 4 per pixel. It is the content surface the compositor masks.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions, fully
// transparent.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Data returns the raw pixel data (straight RGBA). The slice is shared,
// not copied.
func (p *Pixmap) Data() []uint8 { return p.data }

// SetPixel sets the color of a single pixel.
// Coordinates outside the pixmap bounds are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	a, r, g, b := c.Channels()
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// GetPixel returns the color of a single pixel.
// Returns transparent black for coordinates outside the pixmap bounds.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	i := (y*p.width + x) * 4
	return ARGB(p.data[i+3], p.data[i+0], p.data[i+1], p.data[i+2])
}

// AlphaAt returns the alpha value at (x, y).
func (p *Pixmap) AlphaAt(x, y int) uint8 {
	return p.GetPixel(x, y).Alpha()
}

// Fill fills the entire pixmap with a color.
func (p *Pixmap) Fill(c Color) {
	a, r, g, b := c.Channels()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Clone creates a copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.width, p.height)
	copy(c.data, p.data)
	return c
}

// Over flattens the pixmap onto an opaque background color and returns
// the result. Useful for presenting masked content on hosts without an
// alpha-aware surface.
func (p *Pixmap) Over(background Color) *Pixmap {
	_, br, bg, bb := background.Channels()
	out := NewPixmap(p.width, p.height)
	for i := 0; i < len(p.data); i += 4 {
		sa := p.data[i+3]
		out.data[i+0] = blend.Over(p.data[i+0], br, sa)
		out.data[i+1] = blend.Over(p.data[i+1], bg, sa)
		out.data[i+2] = blend.Over(p.data[i+2], bb, sa)
		out.data[i+3] = 255
	}
	return out
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == width*4 {
		copy(pm.data, nrgba.Pix[nrgba.PixOffset(bounds.Min.X, bounds.Min.Y):])
		return pm
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pm.SetPixel(x, y, FromNRGBA(c))
		}
	}
	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
