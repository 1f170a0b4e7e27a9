package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/earthglobe/internal/globe/orbit"
	"github.com/Faultbox/earthglobe/pkg/math"
)

var _ orbit.Zoomer = (*Perspective)(nil)

func TestNewPerspectiveDefaults(t *testing.T) {
	c := NewPerspective(1280, 720)

	assert.Equal(t, float32(45), c.FOV)
	assert.Equal(t, float32(0.1), c.Near)
	assert.Equal(t, float32(1000), c.Far)
	assert.Equal(t, float32(1.7), c.Distance())
	assert.InDelta(t, 1280.0/720.0, c.Aspect, 1e-6)
}

func TestSetAspectIgnoresEmptyViewport(t *testing.T) {
	c := NewPerspective(800, 400)
	c.SetAspect(800, 0)
	assert.Equal(t, float32(2), c.Aspect)

	c = NewPerspective(0, 0)
	assert.Equal(t, float32(1), c.Aspect)
}

func TestPositionFollowsDistance(t *testing.T) {
	c := NewPerspective(100, 100)
	c.SetDistance(4)
	assert.Equal(t, math.Vec3{Z: 4}, c.Position())
}

func TestViewProjectionCentersOrigin(t *testing.T) {
	c := NewPerspective(100, 100)

	// The globe center projects to the middle of the screen, inside the depth range.
	p := c.ViewProjection().TransformVec3(math.Vec3{})
	assert.InDelta(t, 0, p.X, 1e-6)
	assert.InDelta(t, 0, p.Y, 1e-6)
	assert.Greater(t, p.Z, float32(-1))
	assert.Less(t, p.Z, float32(1))
}
