package fade

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name           string
		d              Direction
		w, h           int
		x0, y0, x1, y1 float64
	}{
		{"top", Top, 10, 20, 5, 0, 5, 20},
		{"bottom", Bottom, 10, 20, 5, 20, 5, 0},
		{"left", Left, 10, 20, 0, 10, 10, 10},
		{"right", Right, 10, 20, 10, 10, 0, 10},
		{"top square", Top, 100, 100, 50, 0, 50, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1 := tt.d.resolve(tt.w, tt.h)
			if x0 != tt.x0 || y0 != tt.y0 || x1 != tt.x1 || y1 != tt.y1 {
				t.Errorf("resolve(%v, %d, %d) = (%v, %v, %v, %v), want (%v, %v, %v, %v)",
					tt.d, tt.w, tt.h, x0, y0, x1, y1, tt.x0, tt.y0, tt.x1, tt.y1)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"top", Top},
		{"bottom", Bottom},
		{"left", Left},
		{"right", Right},
		{"", Top},
		{"diagonal", Top},
		{"TOP", Top}, // prop names are lowercase; anything else pads to Top
	}
	for _, tt := range tests {
		if got := ParseDirection(tt.in); got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDirectionString(t *testing.T) {
	for _, d := range []Direction{Top, Bottom, Left, Right} {
		if got := ParseDirection(d.String()); got != d {
			t.Errorf("ParseDirection(%v.String()) = %v, want %v", d, got, d)
		}
	}
}
