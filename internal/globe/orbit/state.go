// Package orbit turns pointer drags and wheel steps into globe orientation
// and camera distance.
//
// All state lives in an explicit State value that the Tracker, the
// Controller and the render loop share. Everything runs on the render
// thread, so nothing here is locked.
package orbit

import "github.com/chewxy/math32"

// Orientation is the accumulated rotation applied to the globe.
type Orientation struct {
	Yaw   float32 // About the vertical axis, unbounded
	Pitch float32 // About the horizontal axis, kept within ±Limits.MaxPitch
}

// DragState tracks the single active pointer.
type DragState struct {
	Active       bool
	LastX, LastY float32
}

// Limits bounds pitch and zoom and shapes the drag sensitivity curve.
type Limits struct {
	MaxPitch float32

	MinZoom  float32
	MaxZoom  float32
	ZoomStep float32

	MinSensitivity      float32 // At MinZoom
	MaxSensitivity      float32 // At MaxZoom
	FallbackSensitivity float32 // No camera attached
}

// DefaultLimits returns the stock interaction tuning.
func DefaultLimits() Limits {
	return Limits{
		MaxPitch:            math32.Pi / 2.5,
		MinZoom:             0.55,
		MaxZoom:             8,
		ZoomStep:            0.15,
		MinSensitivity:      0.001,
		MaxSensitivity:      0.008,
		FallbackSensitivity: 0.005,
	}
}

// Zoomer is a camera whose distance from the globe can be read and set.
type Zoomer interface {
	Distance() float32
	SetDistance(d float32)
}

// Capturer is the input surface. Capturing the pointer on drag start stops
// the host from treating the drag as its own gesture.
type Capturer interface {
	CapturePointer(on bool)
}

// Transform is a scene object the controller rotates each frame.
type Transform interface {
	SetRotation(x, y float32)
}

// State is the shared interaction context.
type State struct {
	Orientation Orientation
	Drag        DragState
	Limits      Limits

	// Camera drives distance-dependent sensitivity and wheel zoom.
	// Nil means fixed FallbackSensitivity and no zoom.
	Camera Zoomer

	// Surface, when set, is captured for the duration of a drag.
	Surface Capturer
}

// NewState returns a zeroed orientation with no drag in progress.
func NewState(limits Limits) *State {
	return &State{Limits: limits}
}

// Sensitivity returns radians per pixel for the current camera distance,
// interpolated linearly from MinSensitivity at MinZoom to MaxSensitivity at
// MaxZoom.
func (s *State) Sensitivity() float32 {
	if s.Camera == nil {
		return s.Limits.FallbackSensitivity
	}
	l := s.Limits
	t := (s.Camera.Distance() - l.MinZoom) / (l.MaxZoom - l.MinZoom)
	// Weighted form so both ends of the range come out exact.
	return (1-t)*l.MinSensitivity + t*l.MaxSensitivity
}
