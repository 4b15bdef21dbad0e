package fade

import "testing"

func TestSpecLocationFallback(t *testing.T) {
	spec := Spec{
		Colors:    []Color{0x00000000, 0xFF000000, 0x00000000},
		Locations: []float64{0}, // tail missing, falls back to even spacing
	}
	tests := []struct {
		i    int
		want float64
	}{
		{0, 0},
		{1, 0.5},
		{2, 1},
	}
	for _, tt := range tests {
		if got := spec.location(tt.i); got != tt.want {
			t.Errorf("location(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
}

func TestSpecLocationClamped(t *testing.T) {
	spec := Spec{
		Colors:    []Color{0, 0},
		Locations: []float64{-0.5, 1.5},
	}
	if got := spec.location(0); got != 0 {
		t.Errorf("location(0) = %v, want 0", got)
	}
	if got := spec.location(1); got != 1 {
		t.Errorf("location(1) = %v, want 1", got)
	}
}

func TestStopAt(t *testing.T) {
	spec := Spec{
		Colors:    []Color{0x00000000, 0xFF000000},
		Locations: []float64{0, 1},
	}
	tests := []struct {
		name string
		t    float64
		want uint8
	}{
		{"start", 0, 0},
		{"quarter", 0.25, 64},
		{"middle", 0.5, 128},
		{"end", 1, 255},
		{"before start pads", -0.5, 0},
		{"past end pads", 1.5, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _, _ := spec.stopAt(tt.t)
			if a != tt.want {
				t.Errorf("stopAt(%v) alpha = %d, want %d", tt.t, a, tt.want)
			}
		})
	}
}

func TestStopAtAuthoredOrder(t *testing.T) {
	// Locations authored in decreasing order are taken verbatim: index
	// order controls interpolation, so the first stop's location (1)
	// covers the whole ramp and the second stop is never reached.
	spec := Spec{
		Colors:    []Color{0x00000000, 0xFF000000},
		Locations: []float64{1, 0},
	}
	for _, tc := range []float64{0, 0.2, 0.5, 0.9, 1} {
		if a, _, _, _ := spec.stopAt(tc); a != 0 {
			t.Errorf("stopAt(%v) alpha = %d, want 0 (first stop pads)", tc, a)
		}
	}
}

func TestStopAtCoincidentLocations(t *testing.T) {
	spec := Spec{
		Colors:    []Color{0x40000000, 0xC0000000},
		Locations: []float64{0.5, 0.5},
	}
	if a, _, _, _ := spec.stopAt(0.3); a != 0x40 {
		t.Errorf("before coincident stops: alpha = %d, want %d", a, 0x40)
	}
	if a, _, _, _ := spec.stopAt(0.7); a != 0xC0 {
		t.Errorf("after coincident stops: alpha = %d, want %d", a, 0xC0)
	}
}

func TestBuildFieldRamp(t *testing.T) {
	spec := Spec{
		Colors:    []Color{0x00000000, 0xFF000000},
		Locations: []float64{0, 1},
		Direction: Top,
	}
	f := buildField(spec, 100, 100)
	if f == nil {
		t.Fatal("buildField returned nil for a valid spec")
	}

	if a := f.AlphaAt(50, 0); a > 2 {
		t.Errorf("alpha at row 0 = %d, want ~0", a)
	}
	if a := f.AlphaAt(50, 99); a < 253 {
		t.Errorf("alpha at row 99 = %d, want ~255", a)
	}
	if a := f.AlphaAt(50, 50); a < 126 || a > 131 {
		t.Errorf("alpha at row 50 = %d, want ~128", a)
	}

	// Monotonically non-decreasing down the rows, uniform across columns.
	prev := -1
	for y := 0; y < 100; y++ {
		a := int(f.AlphaAt(0, y))
		if a < prev {
			t.Fatalf("alpha not monotonic at row %d: %d < %d", y, a, prev)
		}
		prev = a
		if f.AlphaAt(99, y) != f.AlphaAt(0, y) {
			t.Fatalf("row %d not uniform across columns", y)
		}
	}
}

func TestBuildFieldDirections(t *testing.T) {
	spec := Spec{
		Colors:    []Color{0x00000000, 0xFF000000},
		Locations: []float64{0, 1},
	}

	spec.Direction = Bottom
	f := buildField(spec, 10, 100)
	if f.AlphaAt(5, 0) < 253 || f.AlphaAt(5, 99) > 2 {
		t.Errorf("bottom: alpha at rows (0, 99) = (%d, %d), want (~255, ~0)",
			f.AlphaAt(5, 0), f.AlphaAt(5, 99))
	}

	spec.Direction = Left
	f = buildField(spec, 100, 10)
	if f.AlphaAt(0, 5) > 2 || f.AlphaAt(99, 5) < 253 {
		t.Errorf("left: alpha at columns (0, 99) = (%d, %d), want (~0, ~255)",
			f.AlphaAt(0, 5), f.AlphaAt(99, 5))
	}

	spec.Direction = Right
	f = buildField(spec, 100, 10)
	if f.AlphaAt(0, 5) < 253 || f.AlphaAt(99, 5) > 2 {
		t.Errorf("right: alpha at columns (0, 99) = (%d, %d), want (~255, ~0)",
			f.AlphaAt(0, 5), f.AlphaAt(99, 5))
	}
}

func TestBuildFieldSingleStop(t *testing.T) {
	spec := Spec{Colors: []Color{0x80000000}}
	f := buildField(spec, 16, 16)
	if f == nil {
		t.Fatal("buildField returned nil for a single stop")
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if a := f.AlphaAt(x, y); a != 128 {
				t.Fatalf("alpha at (%d, %d) = %d, want 128", x, y, a)
			}
		}
	}
}

func TestBuildFieldDegenerate(t *testing.T) {
	spec := Spec{Colors: []Color{0xFF000000}}
	if f := buildField(spec, 0, 10); f != nil {
		t.Error("zero width: want nil field")
	}
	if f := buildField(spec, 10, 0); f != nil {
		t.Error("zero height: want nil field")
	}
	if f := buildField(Spec{}, 10, 10); f != nil {
		t.Error("no stops: want nil field")
	}
}

func TestFieldImage(t *testing.T) {
	spec := Spec{
		Colors:    []Color{ARGB(0, 255, 0, 0), ARGB(255, 0, 0, 255)},
		Locations: []float64{0, 1},
		Direction: Top,
	}
	f := buildField(spec, 4, 64)
	img := f.Image()

	if img.Bounds() != f.Bounds() {
		t.Fatalf("image bounds = %v, want %v", img.Bounds(), f.Bounds())
	}
	// Authored RGB survives in the debug image: red at the top, blue at
	// the bottom.
	top := img.NRGBAAt(0, 0)
	if top.R < 250 || top.B > 5 {
		t.Errorf("top pixel = %v, want red", top)
	}
	bottom := img.NRGBAAt(0, 63)
	if bottom.B < 250 || bottom.R > 5 {
		t.Errorf("bottom pixel = %v, want blue", bottom)
	}
}
