package orbit

import (
	"go.uber.org/zap"

	"github.com/Faultbox/earthglobe/internal/logger"
)

// Tracker consumes pointer events and accumulates orientation while a drag
// is active. Only one pointer is tracked.
type Tracker struct {
	state *State
}

// NewTracker creates a tracker over the shared state.
func NewTracker(state *State) *Tracker {
	return &Tracker{state: state}
}

// PointerDown starts a drag at (x, y) and captures the pointer.
func (t *Tracker) PointerDown(x, y float32) {
	s := t.state
	s.Drag = DragState{Active: true, LastX: x, LastY: y}
	if s.Surface != nil {
		s.Surface.CapturePointer(true)
	}
}

// PointerMove rotates by the pixel delta since the last event. It does
// nothing unless a drag is active.
//
// Pitch uses a soft stop: a move that would leave [-MaxPitch, MaxPitch]
// drops its vertical component for this event instead of clamping to the
// bound. Yaw from the same event still applies.
func (t *Tracker) PointerMove(x, y float32) {
	s := t.state
	if !s.Drag.Active {
		return
	}

	dx := x - s.Drag.LastX
	dy := y - s.Drag.LastY
	s.Drag.LastX = x
	s.Drag.LastY = y

	sens := s.Sensitivity()

	s.Orientation.Yaw += dx * sens

	pitch := s.Orientation.Pitch + dy*sens
	if pitch >= -s.Limits.MaxPitch && pitch <= s.Limits.MaxPitch {
		s.Orientation.Pitch = pitch
	} else {
		logger.Debug("pitch at pole, vertical move dropped", zap.Float32("pitch", pitch))
	}
}

// PointerUp ends the drag and releases the pointer.
func (t *Tracker) PointerUp() {
	s := t.state
	wasActive := s.Drag.Active
	s.Drag.Active = false
	if wasActive && s.Surface != nil {
		s.Surface.CapturePointer(false)
	}
}

// Dragging reports whether a drag is in progress.
func (t *Tracker) Dragging() bool {
	return t.state.Drag.Active
}
