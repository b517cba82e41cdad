package facemesh

import (
	"encoding/binary"
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"
)

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

func TestShaderSourceMatchesLayout(t *testing.T) {
	src := ShaderSource()
	for _, req := range []string{
		"@vertex",
		"@fragment",
		"vs_main",
		"fs_main",
		"@location(0) position: vec2<f32>",
		"@location(1) depth: f32",
		"FaceUniforms",
	} {
		if !strings.Contains(src, req) {
			t.Errorf("face shader missing required element: %q", req)
		}
	}
}

func TestCompileShader(t *testing.T) {
	words, err := CompileShader()
	if err != nil {
		t.Fatalf("CompileShader() = %v", err)
	}
	if len(words) == 0 {
		t.Fatal("CompileShader() returned no SPIR-V")
	}
	if words[0] != spirvMagic {
		t.Errorf("SPIR-V magic = %#x, want %#x", words[0], spirvMagic)
	}
}

func TestCompileWGSLError(t *testing.T) {
	_, err := compileWGSL("fn broken( {")
	if err == nil {
		t.Fatal("compileWGSL(invalid) = nil error")
	}
	if !strings.HasPrefix(err.Error(), "facemesh: failed to compile shader") {
		t.Errorf("error = %q, want facemesh prefix", err)
	}
	if errors.Unwrap(err) == nil {
		t.Error("compile error does not wrap the naga error")
	}
}

func TestPackUniforms(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	buf := PackUniforms(m, 1, 9, color.RGBA{R: 0xff, A: 0xff})

	if len(buf) != FaceUniformsSize {
		t.Fatalf("len(PackUniforms()) = %d, want %d", len(buf), FaceUniformsSize)
	}

	want := []float32{1, 2, 3, 4, 5, 6, 1, 9, 1, 0, 0, 1}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != w {
			t.Errorf("word %d = %v, want %v", i, got, w)
		}
	}
}
