// Package blend implements the byte-level compositing operators used by
// the software compositor.
//
// All operations work with straight (non-premultiplied) alpha values in
// the range 0-255, matching the NRGBA pixel layout of the public Pixmap
// type.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// DestinationIn returns the destination-in alpha product D*Sa: the
// destination (content) alpha scaled by the source (mask) alpha. Color
// channels are unaffected by this operator under straight alpha.
func DestinationIn(da, sa byte) byte {
	return mulDiv255(da, sa)
}

// Over composites one color channel of a straight-alpha source over an
// opaque destination channel: S*Sa + D*(1-Sa). Used to flatten masked
// content onto a solid background.
func Over(src, dst, sa byte) byte {
	return addClamp255(mulDiv255(src, sa), mulDiv255(dst, 255-sa))
}

// mulDiv255 multiplies two bytes and divides by 255 with rounding.
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addClamp255 adds two byte values with clamping to 255.
func addClamp255(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
