// Package loop drives the per-frame render callback.
//
// A Loop runs once: Run blocks, calling Poll, Frame and Present in that order
// each iteration, until Stop is called, Poll asks to quit, Frame fails, or
// the context is cancelled. Pacing comes from Present (a vsync'd buffer
// swap); the loop adds no throttling of its own.
package loop

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/earthglobe/internal/logger"
)

// ErrStopped is returned by Run on a loop that has already finished.
var ErrStopped = errors.New("loop: already stopped")

// Hooks are the per-frame callbacks. Poll and Present may be nil.
type Hooks struct {
	// Poll drains pending input. Returning true ends the loop.
	Poll func() bool
	// Frame updates and draws one frame. dt is seconds since the last frame.
	Frame func(dt float64) error
	// Present shows the frame and blocks until the next refresh.
	Present func()
}

// Loop is a stoppable frame loop.
type Loop struct {
	hooks   Hooks
	stopped atomic.Bool
	running atomic.Bool
	frames  atomic.Uint64

	now func() time.Time
}

// New creates a loop around the given hooks.
func New(h Hooks) *Loop {
	return &Loop{hooks: h, now: time.Now}
}

// Run blocks until the loop ends. It returns nil on Stop, quit or context
// cancellation, and the wrapped error if a frame fails.
func (l *Loop) Run(ctx context.Context) error {
	if l.stopped.Load() {
		return ErrStopped
	}
	if !l.running.CompareAndSwap(false, true) {
		return errors.New("loop: already running")
	}
	defer func() {
		l.running.Store(false)
		l.stopped.Store(true)
	}()

	logger.Info("starting render loop")

	last := l.now()
	fpsMark := last
	fpsCount := 0

	for !l.stopped.Load() {
		if err := ctx.Err(); err != nil {
			logger.Info("render loop cancelled", zap.Error(err))
			return nil
		}

		if l.hooks.Poll != nil && l.hooks.Poll() {
			break
		}
		if l.stopped.Load() {
			break
		}

		now := l.now()
		dt := now.Sub(last).Seconds()
		last = now

		if err := l.hooks.Frame(dt); err != nil {
			return fmt.Errorf("frame %d: %w", l.frames.Load(), err)
		}

		if l.hooks.Present != nil {
			l.hooks.Present()
		}

		l.frames.Add(1)
		fpsCount++
		if now.Sub(fpsMark) >= time.Second {
			logger.Debug("fps", zap.Int("count", fpsCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			fpsCount = 0
			fpsMark = now
		}
	}

	logger.Info("render loop stopped", zap.Uint64("frames", l.frames.Load()))
	return nil
}

// Stop ends the loop after the current iteration. It is safe to call more
// than once and from any goroutine.
func (l *Loop) Stop() {
	l.stopped.Store(true)
}

// Running reports whether Run is executing.
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Frames returns the number of completed frames.
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}
