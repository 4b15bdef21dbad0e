package fade

// Direction selects the axis the gradient ramp runs along. The zero value
// is Top.
type Direction uint8

const (
	// Top ramps from the top edge of the surface down to the bottom edge.
	Top Direction = iota
	// Bottom ramps from the bottom edge up to the top edge.
	Bottom
	// Left ramps from the left edge across to the right edge.
	Left
	// Right ramps from the right edge across to the left edge.
	Right
)

// ParseDirection maps a direction name to a Direction.
// Unrecognized or empty input falls back to Top.
func ParseDirection(s string) Direction {
	switch s {
	case "bottom":
		return Bottom
	case "left":
		return Left
	case "right":
		return Right
	default:
		return Top
	}
}

// String returns the direction name as used at the prop boundary.
func (d Direction) String() string {
	switch d {
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "top"
	}
}

// resolve returns the start and end points of the ramp axis for a surface
// of the given size. The axis runs through the surface center so the
// projection onto it is symmetric about the perpendicular midline.
func (d Direction) resolve(width, height int) (x0, y0, x1, y1 float64) {
	w, h := float64(width), float64(height)
	switch d {
	case Bottom:
		return w / 2, h, w / 2, 0
	case Left:
		return 0, h / 2, w, h / 2
	case Right:
		return w, h / 2, 0, h / 2
	default:
		return w / 2, 0, w / 2, h
	}
}

// horizontal reports whether the ramp axis runs along x.
func (d Direction) horizontal() bool {
	return d == Left || d == Right
}
