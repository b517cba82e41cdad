package facemesh

import "fmt"

// Vertex is a mutable plane position with an auxiliary depth value.
type Vertex struct {
	X, Y float64
	// Z is the depth used for painter's-algorithm ordering. Plane
	// operations never modify it.
	Z float64
}

// Point returns the plane position of the vertex.
func (v Vertex) Point() Point {
	return Point{X: v.X, Y: v.Y}
}

// VertexID addresses a vertex inside a VertexStore.
type VertexID int

// NoVertex is the reference held by a destroyed face.
const NoVertex VertexID = -1

// VertexStore is the arena owning the vertices of a mesh.
//
// Faces reference vertices by VertexID, so several faces may share one
// vertex: moving it through any face is visible through all of them.
// A VertexStore is not safe for concurrent mutation.
type VertexStore struct {
	vertices []Vertex
}

// NewVertexStore creates an empty store.
func NewVertexStore() *VertexStore {
	return &VertexStore{}
}

// Add appends a vertex and returns its id.
func (s *VertexStore) Add(x, y, z float64) VertexID {
	s.vertices = append(s.vertices, Vertex{X: x, Y: y, Z: z})
	return VertexID(len(s.vertices) - 1)
}

// Len returns the number of vertices in the store.
func (s *VertexStore) Len() int {
	return len(s.vertices)
}

// Vertex returns a pointer to the vertex addressed by id.
// The pointer stays valid until the next Add. It panics if id is invalid;
// use Lookup for a checked access.
func (s *VertexStore) Vertex(id VertexID) *Vertex {
	v, err := s.Lookup(id)
	if err != nil {
		panic(err)
	}
	return v
}

// Lookup returns the vertex addressed by id, or an error wrapping
// ErrVertexNotFound.
func (s *VertexStore) Lookup(id VertexID) (*Vertex, error) {
	if id < 0 || int(id) >= len(s.vertices) {
		return nil, fmt.Errorf("%w: id %d (store holds %d)", ErrVertexNotFound, id, len(s.vertices))
	}
	return &s.vertices[id], nil
}

// Positions returns a copy of every vertex in id order.
func (s *VertexStore) Positions() []Vertex {
	out := make([]Vertex, len(s.vertices))
	copy(out, s.vertices)
	return out
}
