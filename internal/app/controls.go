package app

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/earthglobe/internal/engine/input"
	"github.com/Faultbox/earthglobe/internal/logger"
)

// pointer receives drag gestures.
type pointer interface {
	PointerDown(x, y float32)
	PointerMove(x, y float32)
	PointerUp()
}

// zoomer receives wheel steps.
type zoomer interface {
	Wheel(deltaY float32)
}

// controls routes input events to the orbit tracker and controller.
type controls struct {
	tracker    pointer
	controller zoomer

	resizable  bool
	resize     func(width, height int)
	screenshot func()
}

// handle dispatches one event. It returns true when the viewer should quit.
func (c *controls) handle(ev input.Event) bool {
	switch ev.Type {
	case input.EventQuit:
		return true
	case input.EventKeyDown:
		switch ev.Key {
		case sdl.K_ESCAPE:
			return true
		case sdl.K_F12:
			if c.screenshot != nil {
				c.screenshot()
			}
		}
	case input.EventMouseDown:
		c.tracker.PointerDown(ev.MouseX, ev.MouseY)
	case input.EventMouseMove:
		c.tracker.PointerMove(ev.MouseX, ev.MouseY)
	case input.EventMouseUp:
		c.tracker.PointerUp()
	case input.EventMouseWheel:
		c.controller.Wheel(ev.WheelY)
	case input.EventWindowResize:
		if !c.resizable {
			return false
		}
		logger.Debug("window resized", zap.Int("width", ev.Width), zap.Int("height", ev.Height))
		if c.resize != nil {
			c.resize(ev.Width, ev.Height)
		}
	}
	return false
}
