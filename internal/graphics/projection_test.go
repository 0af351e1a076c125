package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAspectProjection(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		// corner of the unit square after projection
		wantX, wantY float32
	}{
		{"square", 600, 600, 1, 1},
		{"wide", 1200, 600, 0.5, 1},
		{"tall", 600, 1200, 1, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := AspectProjection(tt.width, tt.height).Mul4x1(mgl32.Vec4{1, 1, 0, 1})
			if !mgl32.FloatEqual(p.X(), tt.wantX) || !mgl32.FloatEqual(p.Y(), tt.wantY) {
				t.Errorf("Expected corner at (%v,%v), got (%v,%v)", tt.wantX, tt.wantY, p.X(), p.Y())
			}
		})
	}
}

func TestAspectProjectionMinimized(t *testing.T) {
	if m := AspectProjection(0, 0); m != mgl32.Ident4() {
		t.Errorf("Expected identity for zero-sized framebuffer, got %v", m)
	}
}
