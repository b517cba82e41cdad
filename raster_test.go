package facemesh

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"testing"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func TestRasterizeSingleFace(t *testing.T) {
	m := NewMesh()
	m.AddFace(m.AddVertex(0, 0, 0), m.AddVertex(16, 0, 0), m.AddVertex(0, 16, 0))

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	err := Rasterize(img, m,
		WithBackground(white),
		WithFaceColor(func(int, *Face) color.Color { return red }),
	)
	if err != nil {
		t.Fatalf("Rasterize() = %v", err)
	}

	if got := img.RGBAAt(2, 2); got != red {
		t.Errorf("pixel inside face = %v, want %v", got, red)
	}
	if got := img.RGBAAt(14, 14); got != white {
		t.Errorf("pixel outside face = %v, want %v", got, white)
	}
}

func TestRasterizeWithTransform(t *testing.T) {
	m := NewMesh()
	m.AddFace(m.AddVertex(0, 0, 0), m.AddVertex(1, 0, 0), m.AddVertex(0, 1, 0))

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	err := Rasterize(img, m,
		WithBackground(white),
		WithTransform(Translate(16, 16).Multiply(Scale(16, 16))),
		WithFaceColor(func(int, *Face) color.Color { return red }),
	)
	if err != nil {
		t.Fatalf("Rasterize() = %v", err)
	}

	if got := img.RGBAAt(18, 18); got != red {
		t.Errorf("pixel inside mapped face = %v, want %v", got, red)
	}
	if got := img.RGBAAt(2, 2); got != white {
		t.Errorf("pixel at untransformed position = %v, want %v", got, white)
	}
}

func TestRasterizePainterOrder(t *testing.T) {
	m := NewMesh()
	// The near face is added first; Rasterize must still draw it last.
	nearFace := m.AddFace(m.AddVertex(0, 0, 1), m.AddVertex(8, 0, 1), m.AddVertex(0, 8, 1))
	far := m.AddFace(m.AddVertex(0, 0, 5), m.AddVertex(16, 0, 5), m.AddVertex(0, 16, 5))

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	err := Rasterize(img, m, WithFaceColor(func(_ int, f *Face) color.Color {
		if f == nearFace {
			return red
		}
		return blue
	}))
	if err != nil {
		t.Fatalf("Rasterize() = %v", err)
	}

	if got := img.RGBAAt(1, 1); got != red {
		t.Errorf("overlap pixel = %v, want near face color %v", got, red)
	}
	if got := img.RGBAAt(10, 1); got != blue {
		t.Errorf("far-only pixel = %v, want far face color %v", got, blue)
	}
	if m.Faces[0] != nearFace || m.Faces[1] != far {
		t.Error("Rasterize reordered the mesh faces")
	}
}

func TestRasterizeEmptyMesh(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := Rasterize(img, NewMesh()); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("Rasterize(empty) = %v, want ErrEmptyMesh", err)
	}

	m := newDepthMesh(1)
	m.Faces[0].Destroy()
	if err := Rasterize(img, m); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("Rasterize(all destroyed) = %v, want ErrEmptyMesh", err)
	}
}

func TestRasterizeSkipsDegenerateFace(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	m := NewMesh()
	p := m.AddVertex(2, 2, 0)
	m.AddFace(p, p, p)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := Rasterize(img, m, WithBackground(white)); err != nil {
		t.Fatalf("Rasterize() = %v", err)
	}

	if !strings.Contains(buf.String(), "skipping degenerate face") {
		t.Errorf("expected warning for degenerate face, got: %s", buf.String())
	}
	if got := img.RGBAAt(2, 2); got != white {
		t.Errorf("pixel at degenerate face = %v, want background", got)
	}
}

func TestRasterizeSubImage(t *testing.T) {
	m := NewMesh()
	m.AddFace(m.AddVertex(16, 16, 0), m.AddVertex(32, 16, 0), m.AddVertex(16, 32, 0))

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	sub := img.SubImage(image.Rect(16, 16, 32, 32)).(*image.RGBA)
	err := Rasterize(sub, m,
		WithBackground(white),
		WithFaceColor(func(int, *Face) color.Color { return red }),
	)
	if err != nil {
		t.Fatalf("Rasterize() = %v", err)
	}

	if got := img.RGBAAt(18, 18); got != red {
		t.Errorf("pixel inside face = %v, want %v", got, red)
	}
	if got := img.RGBAAt(30, 30); got != white {
		t.Errorf("pixel outside face = %v, want %v", got, white)
	}
	if got := img.RGBAAt(2, 2); got != (color.RGBA{}) {
		t.Errorf("pixel outside sub-image = %v, want untouched", got)
	}
}
