package facemesh

import (
	"cmp"
	"image"
	"image/color"
	"slices"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// RasterOption configures Rasterize.
//
// Example:
//
//	err := facemesh.Rasterize(img, mesh,
//	    facemesh.WithTransform(facemesh.Scale(2, 2)),
//	    facemesh.WithBackground(color.White))
type RasterOption func(*rasterOptions)

// rasterOptions holds optional configuration for Rasterize.
type rasterOptions struct {
	transform  Matrix
	background color.Color
	faceColor  func(i int, f *Face) color.Color
}

// defaultRasterOptions returns the default rasterization options.
func defaultRasterOptions() rasterOptions {
	return rasterOptions{
		transform:  Identity(),
		background: nil, // dst is left as is
		faceColor:  func(int, *Face) color.Color { return color.Black },
	}
}

// WithTransform maps mesh coordinates to image coordinates.
func WithTransform(m Matrix) RasterOption {
	return func(o *rasterOptions) {
		o.transform = m
	}
}

// WithBackground fills the whole destination with c before drawing.
func WithBackground(c color.Color) RasterOption {
	return func(o *rasterOptions) {
		o.background = c
	}
}

// WithFaceColor selects the fill color of each face. i is the position of
// the face in painter's order.
func WithFaceColor(fn func(i int, f *Face) color.Color) RasterOption {
	return func(o *rasterOptions) {
		if fn != nil {
			o.faceColor = fn
		}
	}
}

// Rasterize fills every live face of m into dst, back to front by depth.
// The mesh itself is not reordered. Faces whose in-center is undefined
// (all vertices coincident) are skipped.
//
// Returns ErrEmptyMesh if m has no live face.
func Rasterize(dst xdraw.Image, m *Mesh, opts ...RasterOption) error {
	o := defaultRasterOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := dst.Bounds()
	if o.background != nil {
		xdraw.Draw(dst, b, image.NewUniform(o.background), image.Point{}, xdraw.Src)
	}

	faces := paintOrder(m.Faces)
	if len(faces) == 0 {
		return ErrEmptyMesh
	}

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	drawn := 0
	for i, f := range faces {
		if f.InCenter().IsNaN() {
			Logger().Warn("facemesh: skipping degenerate face", "index", i, "vertices", f.VertexIDs())
			continue
		}
		pts := f.Points()
		z.Reset(b.Dx(), b.Dy())
		for j, p := range pts {
			q := o.transform.TransformPoint(p)
			x, y := float32(q.X-ox), float32(q.Y-oy)
			if j == 0 {
				z.MoveTo(x, y)
			} else {
				z.LineTo(x, y)
			}
		}
		z.ClosePath()
		z.Draw(dst, b, image.NewUniform(o.faceColor(i, f)), image.Point{})
		drawn++
	}

	Logger().Debug("facemesh: rasterized mesh", "faces", drawn, "skipped", len(faces)-drawn, "bounds", b)
	return nil
}

// paintOrder returns the live faces sorted deepest first. Faces of equal
// depth keep their mesh order.
func paintOrder(faces []*Face) []*Face {
	out := make([]*Face, 0, len(faces))
	for _, f := range faces {
		if !f.Destroyed() {
			out = append(out, f)
		}
	}
	slices.SortStableFunc(out, func(a, b *Face) int {
		return cmp.Compare(b.Depth(), a.Depth())
	})
	return out
}
