package main

import (
	"image/color"
	"testing"
)

func TestFaceColorStaysInRange(t *testing.T) {
	m := buildMesh()
	f := m.Faces[0]
	if !f.IsCounterClockwise() {
		t.Fatal("first demo face should wind counter-clockwise")
	}

	want := []uint8{0x60, 0xa0, 0xe0}
	for i := 0; i < 9; i++ {
		got := faceColor(i, f).(color.RGBA)
		if got.R != want[i%3] {
			t.Errorf("faceColor(%d).R = %#x, want %#x", i, got.R, want[i%3])
		}
	}
}
