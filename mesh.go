package facemesh

import (
	"cmp"
	"slices"
)

// Mesh groups a vertex store with the faces built on it.
//
// Mesh only keeps faces in draw order; it holds no adjacency information.
type Mesh struct {
	Store *VertexStore
	Faces []*Face
}

// NewMesh creates an empty mesh with its own vertex store.
func NewMesh() *Mesh {
	return &Mesh{Store: NewVertexStore()}
}

// AddVertex adds a vertex to the mesh store.
func (m *Mesh) AddVertex(x, y, z float64) VertexID {
	return m.Store.Add(x, y, z)
}

// AddFace creates a face over three vertices of the mesh and appends it.
func (m *Mesh) AddFace(a, b, c VertexID) *Face {
	f := NewFace(m.Store, a, b, c)
	m.Faces = append(m.Faces, f)
	return f
}

// Live returns the number of faces that have not been destroyed.
func (m *Mesh) Live() int {
	n := 0
	for _, f := range m.Faces {
		if !f.Destroyed() {
			n++
		}
	}
	return n
}

// Compact removes destroyed faces, keeping the order of the others.
func (m *Mesh) Compact() {
	m.Faces = slices.DeleteFunc(m.Faces, (*Face).Destroyed)
}

// SortByDepth orders the faces for the painter's algorithm: the deepest
// face first, the nearest last. Faces of equal depth keep their relative
// order. Destroyed faces are moved to the end.
func (m *Mesh) SortByDepth() {
	slices.SortStableFunc(m.Faces, func(a, b *Face) int {
		switch {
		case a.Destroyed() && b.Destroyed():
			return 0
		case a.Destroyed():
			return 1
		case b.Destroyed():
			return -1
		}
		return cmp.Compare(b.Depth(), a.Depth())
	})
}

// FaceAt returns the top-most live face containing (x, y), or nil.
// Top-most means last in the current face order, which after SortByDepth
// is the nearest face.
func (m *Mesh) FaceAt(x, y float64) *Face {
	for i := len(m.Faces) - 1; i >= 0; i-- {
		f := m.Faces[i]
		if !f.Destroyed() && f.Contains(x, y) {
			return f
		}
	}
	return nil
}

// FaceAtTransformed is like FaceAt, with every face mapped through t
// before testing.
func (m *Mesh) FaceAtTransformed(x, y float64, t Matrix) *Face {
	for i := len(m.Faces) - 1; i >= 0; i-- {
		f := m.Faces[i]
		if !f.Destroyed() && f.ContainsTransformed(x, y, t) {
			return f
		}
	}
	return nil
}

// Translate moves every vertex of the store by (dx, dy) exactly once,
// regardless of how many faces share it.
func (m *Mesh) Translate(dx, dy float64) {
	for i := range m.Store.vertices {
		m.Store.vertices[i].X += dx
		m.Store.vertices[i].Y += dy
	}
}
