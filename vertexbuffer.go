package facemesh

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// TriangleVertexStride is the byte stride per vertex written by
// PackTriangles. Layout per vertex:
//
//	position (vec2<f32>) = 8 bytes (location 0)
//	depth    (f32)       = 4 bytes (location 1)
//
// Total = 12 bytes per vertex, 36 bytes per face.
const TriangleVertexStride = 12

// VertexBufferLayout returns the vertex buffer layout matching the data
// produced by PackTriangles, for a triangle-list render pipeline.
func VertexBufferLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: TriangleVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32, Offset: 8, ShaderLocation: 1},   // depth
			},
		},
	}
}

// PackTriangles writes three vertices per live face of m, back to front by
// depth, as little-endian float32 data. Shared vertices are duplicated so
// the result can be drawn as a plain triangle list.
func PackTriangles(m *Mesh) []byte {
	_, data := packTrianglesReuse(m, nil)
	return data
}

// packTrianglesReuse writes vertex data into the provided staging buffer,
// growing it if necessary. Returns the (possibly reallocated) staging
// buffer and the slice of valid vertex data.
func packTrianglesReuse(m *Mesh, staging []byte) ([]byte, []byte) {
	faces := paintOrder(m.Faces)
	if len(faces) == 0 {
		return staging, nil
	}

	needed := len(faces) * 3 * TriangleVertexStride
	if cap(staging) < needed {
		staging = make([]byte, needed)
	} else {
		staging = staging[:needed]
	}

	offset := 0
	for _, f := range faces {
		v1, v2, v3 := f.vertices()
		for _, v := range [3]*Vertex{v1, v2, v3} {
			writeTriangleVertex(staging[offset:], float32(v.X), float32(v.Y), float32(v.Z))
			offset += TriangleVertexStride
		}
	}

	Logger().Debug("facemesh: packed triangles", "faces", len(faces), "bytes", needed)
	return staging, staging[:needed]
}

func writeTriangleVertex(buf []byte, x, y, depth float32) {
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(x))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(y))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(depth))
}

// TriangleBatch accumulates packed triangles across frames, reusing its
// staging buffer.
type TriangleBatch struct {
	staging []byte
	data    []byte
}

// Pack refreshes the batch from m and returns the vertex data. The
// returned slice is only valid until the next call to Pack.
func (b *TriangleBatch) Pack(m *Mesh) []byte {
	b.staging, b.data = packTrianglesReuse(m, b.staging)
	return b.data
}

// VertexCount returns the number of vertices in the last packed data.
func (b *TriangleBatch) VertexCount() int {
	return len(b.data) / TriangleVertexStride
}
