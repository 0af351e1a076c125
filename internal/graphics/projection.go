package graphics

import "github.com/go-gl/mathgl/mgl32"

// AspectProjection maps the [-1,1] square to the middle of a width x height
// framebuffer without stretching it. A zero-sized framebuffer (minimized
// window) gets the identity.
func AspectProjection(width, height int) mgl32.Mat4 {
	if width <= 0 || height <= 0 {
		return mgl32.Ident4()
	}
	aspect := float32(width) / float32(height)
	if aspect >= 1 {
		return mgl32.Ortho2D(-aspect, aspect, -1, 1)
	}
	return mgl32.Ortho2D(-1, 1, -1/aspect, 1/aspect)
}
