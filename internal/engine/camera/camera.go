// Package camera provides the perspective camera the globe is viewed through.
package camera

import (
	"github.com/Faultbox/earthglobe/pkg/math"
)

// Perspective is a camera on the +Z axis looking at the origin.
// Zoom moves it along that axis.
type Perspective struct {
	FOV    float32 // Vertical field of view, degrees
	Aspect float32 // Width / height
	Near   float32
	Far    float32

	distance float32
}

// NewPerspective creates a camera with the stock globe framing:
// 45° field of view, 0.1/1000 clip planes, 1.7 units from the origin.
func NewPerspective(width, height int) *Perspective {
	c := &Perspective{
		FOV:      45,
		Near:     0.1,
		Far:      1000,
		distance: 1.7,
	}
	c.SetAspect(width, height)
	return c
}

// Distance returns the camera's distance from the origin.
func (c *Perspective) Distance() float32 {
	return c.distance
}

// SetDistance moves the camera along the view axis.
func (c *Perspective) SetDistance(d float32) {
	c.distance = d
}

// SetAspect updates the aspect ratio from a viewport size.
// A zero-height viewport (minimised window) keeps the previous ratio.
func (c *Perspective) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		if c.Aspect == 0 {
			c.Aspect = 1
		}
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// Position returns the camera position in world space.
func (c *Perspective) Position() math.Vec3 {
	return math.Vec3{Z: c.distance}
}

// ViewMatrix returns the view matrix for this camera.
func (c *Perspective) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), math.Vec3{}, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *Perspective) ProjectionMatrix() math.Mat4 {
	return math.Perspective(math.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *Perspective) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}
