// Command facedemo renders a small rotating mesh with the facemesh library.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/tranjg/facemesh"
)

func main() {
	var (
		width   = flag.Int("width", 512, "image width")
		height  = flag.Int("height", 512, "image height")
		output  = flag.String("output", "facedemo.png", "output file")
		steps   = flag.Int("steps", 6, "number of rotation steps per face")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		facemesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	m := buildMesh()
	for i := 0; i < *steps; i++ {
		for _, f := range m.Faces {
			f.Rotate(math.Pi / 24)
		}
	}
	m.SortByDepth()

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	sx := float64(*width) / 8
	sy := float64(*height) / 8
	err := facemesh.Rasterize(img, m,
		facemesh.WithBackground(color.RGBA{R: 0x20, G: 0x24, B: 0x30, A: 0xff}),
		facemesh.WithTransform(facemesh.Translate(float64(*width)/2, float64(*height)/2).
			Multiply(facemesh.Scale(sx, sy))),
		facemesh.WithFaceColor(faceColor),
	)
	if err != nil {
		log.Fatalf("Failed to rasterize: %v", err)
	}

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, %d faces)\n", *output, *width, *height, m.Live())
}

// buildMesh creates a square split into two faces plus a detached
// triangle in front of it.
func buildMesh() *facemesh.Mesh {
	m := facemesh.NewMesh()

	a := m.AddVertex(-2, -2, 2)
	b := m.AddVertex(2, -2, 2)
	c := m.AddVertex(2, 2, 2)
	d := m.AddVertex(-2, 2, 2)
	m.AddFace(a, b, d)
	m.AddFace(b, c, d)

	e := m.AddVertex(-1, -3, 1)
	f := m.AddVertex(3, 0, 1)
	g := m.AddVertex(0, 3, 1)
	m.AddFace(e, f, g)

	return m
}

func faceColor(i int, f *facemesh.Face) color.Color {
	if !f.IsCounterClockwise() {
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}
	shade := uint8(0x60 + 0x40*(i%3))
	return color.RGBA{R: shade, G: 0x90, B: 0xe0, A: 0xff}
}

func savePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
