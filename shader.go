package facemesh

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/naga"
)

//go:embed shaders/face.wgsl
var faceShaderSource string

// FaceUniformsSize is the byte size of the uniform block read by the face
// shader. Layout:
//
//	ab          (vec2<f32>) = 8 bytes  (offset 0)
//	cd          (vec2<f32>) = 8 bytes  (offset 8)
//	ef          (vec2<f32>) = 8 bytes  (offset 16)
//	depth_range (vec2<f32>) = 8 bytes  (offset 24)
//	color       (vec4<f32>) = 16 bytes (offset 32)
const FaceUniformsSize = 48

// ShaderSource returns the WGSL source of the face pipeline. Its vertex
// stage (vs_main) consumes the layout of VertexBufferLayout, its fragment
// stage (fs_main) fills with a flat color.
func ShaderSource() string {
	return faceShaderSource
}

// CompileShader compiles the face shader to SPIR-V words.
func CompileShader() ([]uint32, error) {
	return compileWGSL(faceShaderSource)
}

func compileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("facemesh: failed to compile shader: %w", err)
	}
	if len(spirvBytes) == 0 || len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("facemesh: invalid SPIR-V length %d", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}

	Logger().Debug("facemesh: compiled face shader", "words", len(words))
	return words, nil
}

// PackUniforms writes the uniform block of the face shader. m maps mesh
// coordinates to clip space; depths in [near, far] map to clip z 0..1.
func PackUniforms(m Matrix, near, far float64, c color.Color) []byte {
	r, g, b, a := c.RGBA()
	values := [12]float64{
		m.A, m.B,
		m.C, m.D,
		m.E, m.F,
		near, far,
		float64(r) / 0xffff, float64(g) / 0xffff, float64(b) / 0xffff, float64(a) / 0xffff,
	}

	buf := make([]byte, FaceUniformsSize)
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(float32(v)))
	}
	return buf
}
