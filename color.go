package fade

import "image/color"

// Color is a packed 32-bit ARGB value with the alpha channel in the high
// byte. Channels are not premultiplied. The zero value is fully
// transparent black, which is also what an absent color at the prop
// boundary decodes to.
type Color uint32

// ARGB packs four 8-bit channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Channels unpacks the color into its alpha, red, green and blue channels.
func (c Color) Channels() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// NRGBA converts the color to the standard library's non-premultiplied
// color type.
func (c Color) NRGBA() color.NRGBA {
	a, r, g, b := c.Channels()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// FromNRGBA packs a standard non-premultiplied color into a Color.
func FromNRGBA(c color.NRGBA) Color {
	return ARGB(c.A, c.R, c.G, c.B)
}
