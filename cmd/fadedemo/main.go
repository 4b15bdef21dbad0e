// Command fadedemo renders an animated gradient fade over a content
// surface and writes the frames as PNG files.
//
// The gradient can be described in a YAML props file:
//
//	colors: [0x00000000, 0xFF000000]
//	locations: [0, 1]
//	direction: top
//	maskOpacity: 1
//
// Intensity is tweened from 0 (content fully visible) to the props'
// maskOpacity over the requested duration, one Composite per frame.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/png" // content decoding
	"log"
	"os"
	"path/filepath"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/draw"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/fade"
)

func main() {
	var (
		width      = flag.Int("width", 320, "surface width")
		height     = flag.Int("height", 480, "surface height")
		frames     = flag.Int("frames", 30, "number of frames to render")
		duration   = flag.Float64("duration", 1.0, "fade duration in seconds")
		input      = flag.String("input", "", "content PNG (checkerboard when empty)")
		propsFile  = flag.String("props", "", "YAML props file describing the gradient")
		outDir     = flag.String("out", "frames", "output directory")
		background = flag.Uint("background", 0xFF202020, "flatten background, packed ARGB")
	)
	flag.Parse()

	props := defaultProps()
	if *propsFile != "" {
		loaded, err := loadProps(*propsFile)
		if err != nil {
			log.Fatalf("Failed to load props: %v", err)
		}
		props = loaded
	}
	spec := props.Spec()

	content, err := loadContent(*input, *width, *height)
	if err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	var engine fade.Engine
	tween := gween.New(0, float32(props.Intensity()), float32(*duration), ease.InOutQuad)
	dt := float32(*duration) / float32(*frames)

	intensity := float32(0)
	for i := 0; i < *frames; i++ {
		masked := engine.Composite(content, spec, float64(intensity))
		flat := masked.Over(fade.Color(*background)) //nolint:gosec // flag value is a packed ARGB

		path := filepath.Join(*outDir, fmt.Sprintf("frame_%03d.png", i))
		if err := flat.SavePNG(path); err != nil {
			log.Fatalf("Failed to save %s: %v", path, err)
		}

		intensity, _ = tween.Update(dt)
	}

	stats := engine.Stats()
	log.Printf("Rendered %d frames to %s (%d base field rebuild(s), %d cache hit(s))\n",
		*frames, *outDir, stats.Rebuilds, stats.Hits)
}

// defaultProps fades content out toward the bottom of the surface.
func defaultProps() fade.Props {
	transparent, opaque := uint32(0x00000000), uint32(0xFF000000)
	return fade.Props{
		Colors:    []*uint32{&transparent, &opaque},
		Locations: []float64{0, 1},
		Direction: "top",
	}
}

func loadProps(path string) (fade.Props, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fade.Props{}, err
	}
	var p fade.Props
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fade.Props{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

// loadContent decodes the input PNG and scales it to the surface size, or
// synthesizes a checkerboard when no input is given.
func loadContent(path string, width, height int) (*fade.Pixmap, error) {
	if path == "" {
		return checkerboard(width, height), nil
	}

	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return fade.FromImage(dst), nil
}

// checkerboard builds a two-tone content surface so the fade is visible
// without an input image.
func checkerboard(width, height int) *fade.Pixmap {
	const cell = 32
	light := fade.ARGB(255, 0x60, 0x7d, 0x8b)
	dark := fade.ARGB(255, 0x37, 0x47, 0x4f)

	pm := fade.NewPixmap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := light
			if (x/cell+y/cell)%2 == 1 {
				c = dark
			}
			pm.SetPixel(x, y, c)
		}
	}
	return pm
}
