// Package camera provides the orbit camera used to view the globe.
package camera

import (
	gomath "math"

	"github.com/greaterbit/globesim/pkg/geomath"
)

// OrbitCamera orbits around the globe center at the origin.
type OrbitCamera struct {
	// Spherical coordinates
	Distance  float32 // Distance from the origin
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// New creates an orbit camera framed on a globe of the given radius.
func New(globeRadius float32) *OrbitCamera {
	return &OrbitCamera{
		Distance:        globeRadius * 2.8,
		RotationX:       0.25,
		RotationY:       0.6,
		MinDistance:     globeRadius * 1.25,
		MaxDistance:     globeRadius * 12.0,
		MinPitch:        -1.45,
		MaxPitch:        1.45,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() geomath.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return geomath.Vec3{X: x, Y: y, Z: z}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() geomath.Mat4 {
	up := geomath.Vec3{X: 0, Y: 1, Z: 0}
	return geomath.LookAt(c.Position(), geomath.Vec3{}, up)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	// Clamp pitch
	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
