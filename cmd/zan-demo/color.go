package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// pulse cycles the triangle colour so dropped frames are easy to spot.
func pulse(t float32) mgl32.Vec3 {
	s := float32(0.5 + 0.5*math.Sin(float64(t)*2))
	return mgl32.Vec3{0.2 + 0.6*s, 0.8 - 0.5*s, 0.4}
}
