package facemesh

import "math"

// Face is a triangular face of a mesh: three ordered references into a
// VertexStore. The order defines the winding and therefore which side of
// the face is the front.
//
// A Face does not own its vertices. Translate, Rotate and the SetCenter
// methods mutate the referenced vertices in place, so the change is
// visible to every other face sharing them.
//
// Once Destroy has been called, every method except Destroy and Destroyed
// panics.
type Face struct {
	store *VertexStore
	ids   [3]VertexID
}

// NewFace creates a face over three vertices of store.
// No validation is performed: the ids must address distinct vertices of
// store for the geometry to be meaningful.
func NewFace(store *VertexStore, v1, v2, v3 VertexID) *Face {
	return &Face{store: store, ids: [3]VertexID{v1, v2, v3}}
}

// Vertex1 returns the first vertex reference, or NoVertex once destroyed.
func (f *Face) Vertex1() VertexID { return f.ids[0] }

// Vertex2 returns the second vertex reference, or NoVertex once destroyed.
func (f *Face) Vertex2() VertexID { return f.ids[1] }

// Vertex3 returns the third vertex reference, or NoVertex once destroyed.
func (f *Face) Vertex3() VertexID { return f.ids[2] }

// VertexIDs returns the three vertex references in winding order.
func (f *Face) VertexIDs() [3]VertexID { return f.ids }

// vertices resolves the three references. It panics on a destroyed face.
func (f *Face) vertices() (v1, v2, v3 *Vertex) {
	if f.store == nil {
		panic(ErrDestroyedFace)
	}
	return f.store.Vertex(f.ids[0]), f.store.Vertex(f.ids[1]), f.store.Vertex(f.ids[2])
}

// Points returns the current plane positions of the three vertices.
func (f *Face) Points() [3]Point {
	v1, v2, v3 := f.vertices()
	return [3]Point{v1.Point(), v2.Point(), v3.Point()}
}

// InCenter returns the in-center of the triangle: the vertices weighted by
// the length of the side opposite each of them.
//
// If all three vertices coincide the perimeter is zero and both
// coordinates are NaN.
func (f *Face) InCenter() Point {
	v1, v2, v3 := f.vertices()
	a, b, c := v1.Point(), v2.Point(), v3.Point()
	d1 := c.Distance(b)
	d2 := a.Distance(c)
	d3 := b.Distance(a)
	p := d1 + d2 + d3
	sum := a.Mul(d1).Add(b.Mul(d2)).Add(c.Mul(d3))
	return Point{X: sum.X / p, Y: sum.Y / p}
}

// Translate moves all three vertices by (dx, dy). Depth is untouched.
func (f *Face) Translate(dx, dy float64) *Face {
	v1, v2, v3 := f.vertices()
	for _, v := range [3]*Vertex{v1, v2, v3} {
		v.X += dx
		v.Y += dy
	}
	return f
}

// Rotate rotates the face by angle radians around its in-center.
// The pivot is computed once, before any vertex moves.
func (f *Face) Rotate(angle float64) *Face {
	c := f.InCenter()
	return f.RotateAbout(angle, c.X, c.Y)
}

// RotateAbout rotates the face by angle radians around (cx, cy).
func (f *Face) RotateAbout(angle, cx, cy float64) *Face {
	v1, v2, v3 := f.vertices()
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	for _, v := range [3]*Vertex{v1, v2, v3} {
		x := v.X - cx
		y := v.Y - cy
		v.X = x*cos - y*sin + cx
		v.Y = x*sin + y*cos + cy
	}
	return f
}

// Contains reports whether (x, y) lies inside the triangle.
//
// Points on the edges v1-v2 and v1-v3 count as inside, points on the edge
// v2-v3 count as outside, so a point on an edge shared by two adjacent
// faces is claimed by at most one of them.
func (f *Face) Contains(x, y float64) bool {
	v1, v2, v3 := f.vertices()
	return barycentricContains(v1.Point(), v2.Point(), v3.Point(), Point{X: x, Y: y})
}

// ContainsTransformed is like Contains, but tests against the triangle
// whose vertices have been mapped through m. The vertices themselves are
// not modified.
func (f *Face) ContainsTransformed(x, y float64, m Matrix) bool {
	v1, v2, v3 := f.vertices()
	return barycentricContains(
		m.TransformPoint(v1.Point()),
		m.TransformPoint(v2.Point()),
		m.TransformPoint(v3.Point()),
		Point{X: x, Y: y},
	)
}

func barycentricContains(a, b, c, p Point) bool {
	t0 := c.Sub(a)
	t1 := b.Sub(a)
	t2 := p.Sub(a)

	dot00 := t0.Dot(t0)
	dot01 := t0.Dot(t1)
	dot02 := t0.Dot(t2)
	dot11 := t1.Dot(t1)
	dot12 := t1.Dot(t2)

	// Degenerate triangles get u = v = 0 instead of NaN.
	denom := dot00*dot11 - dot01*dot01
	inv := 0.0
	if denom != 0 {
		inv = 1 / denom
	}

	u := (dot11*dot02 - dot01*dot12) * inv
	v := (dot00*dot12 - dot01*dot02) * inv
	return u >= 0 && v >= 0 && u+v < 1
}

// Area returns the signed area of the triangle. It is positive for
// counter-clockwise winding in a y-up coordinate system.
func (f *Face) Area() float64 {
	return f.doubleArea() / 2
}

func (f *Face) doubleArea() float64 {
	v1, v2, v3 := f.vertices()
	a := v1.Point()
	return v2.Point().Sub(a).Cross(v3.Point().Sub(a))
}

// IsCounterClockwise reports whether the vertices wind counter-clockwise.
// Zero-area faces count as counter-clockwise.
func (f *Face) IsCounterClockwise() bool {
	return f.doubleArea() >= 0
}

// X returns the x coordinate of the in-center.
func (f *Face) X() float64 { return f.InCenter().X }

// Y returns the y coordinate of the in-center.
func (f *Face) Y() float64 { return f.InCenter().Y }

// SetCenterX moves the face horizontally so that its in-center lies at x.
func (f *Face) SetCenterX(x float64) *Face {
	return f.Translate(x-f.X(), 0)
}

// SetCenterY moves the face vertically so that its in-center lies at y.
func (f *Face) SetCenterY(y float64) *Face {
	return f.Translate(0, y-f.Y())
}

// Depth returns the mean depth of the three vertices.
func (f *Face) Depth() float64 {
	v1, v2, v3 := f.vertices()
	return (v1.Z + v2.Z + v3.Z) / 3
}

// Destroy clears the vertex references. It is safe to call more than once.
func (f *Face) Destroy() {
	f.store = nil
	f.ids = [3]VertexID{NoVertex, NoVertex, NoVertex}
}

// Destroyed reports whether Destroy has been called.
func (f *Face) Destroyed() bool {
	return f.store == nil
}
