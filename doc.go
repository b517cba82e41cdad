// Package facemesh provides the triangular face primitive of a 2D polygon
// mesh.
//
// # Overview
//
// A Face references three vertices of a VertexStore and offers the
// geometry needed to manipulate and hit-test it: in-center, translation,
// rotation about the in-center or an explicit pivot, point containment
// (optionally under an affine Matrix), winding classification and a depth
// key for painter's-algorithm ordering.
//
// # Quick Start
//
//	m := facemesh.NewMesh()
//	a := m.AddVertex(0, 0, 1)
//	b := m.AddVertex(4, 0, 1)
//	c := m.AddVertex(0, 4, 1)
//	f := m.AddFace(a, b, c)
//
//	f.Rotate(math.Pi / 4)
//	if f.Contains(1, 1) {
//	    // ...
//	}
//
// # Shared vertices
//
// Faces hold VertexIDs, not copies. Translating or rotating a face moves
// its vertices in the store, and every face sharing one of them sees the
// move. Nothing here is safe for concurrent mutation.
//
// # Degenerate faces
//
// Faces with coincident vertices are allowed. InCenter returns NaN
// coordinates when all three vertices coincide, and Contains treats a
// zero-area face as having barycentric coordinates (0, 0).
//
// # Rendering
//
// Rasterize fills a mesh into any draw.Image using golang.org/x/image/vector.
// PackTriangles and VertexBufferLayout prepare a triangle list for a GPU
// pipeline, and CompileShader provides SPIR-V for its vertex and fragment
// stages. Creating the pipeline and issuing the draw call is left to the
// caller.
package facemesh
