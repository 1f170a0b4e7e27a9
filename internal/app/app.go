// Package app wires the window, renderer, scene and orbit controls into
// the running viewer.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/earthglobe/internal/assets"
	"github.com/Faultbox/earthglobe/internal/config"
	"github.com/Faultbox/earthglobe/internal/engine/debug"
	"github.com/Faultbox/earthglobe/internal/engine/input"
	"github.com/Faultbox/earthglobe/internal/engine/loop"
	"github.com/Faultbox/earthglobe/internal/engine/renderer"
	"github.com/Faultbox/earthglobe/internal/engine/window"
	"github.com/Faultbox/earthglobe/internal/globe/orbit"
	"github.com/Faultbox/earthglobe/internal/globe/scene"
	"github.com/Faultbox/earthglobe/internal/logger"
)

// Title is the window title.
const Title = "Earth"

// App is the viewer instance.
type App struct {
	config *config.Config

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	assets   *assets.Manager
	scene    *scene.Scene
	shots    *debug.Screenshots

	state      *orbit.State
	tracker    *orbit.Tracker
	controller *orbit.Controller
	controls   *controls
	loop       *loop.Loop

	captureNext bool
}

// New creates the window and GL context, then builds the scene.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("background", cfg.Background.Mode),
	)

	a := &App{config: cfg}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Resizable:  cfg.Graphics.Resizable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      dw,
		Height:     dh,
		ClearColor: renderer.DefaultClearColor,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.assets = assets.NewManager(assets.DefaultRoots(config.ConfigDir())...)
	if path := config.LoadedPath(); path != "" {
		a.assets.AddRoot(filepath.Dir(path))
	}
	a.scene, err = scene.Build(cfg, a.renderer, dw, dh, scene.WithLoader(a.assets.LoadImage))
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	a.input = input.New()
	a.shots = debug.NewScreenshots(cfg.Graphics.ScreenshotDir, "earth")
	a.state = orbit.NewState(orbit.DefaultLimits())
	a.state.Surface = a.input

	var opts []orbit.Option
	if a.scene.Mode == config.BackgroundStars {
		// Zoom and parallax belong to the star field variant. The panorama
		// stays fixed and drags at the fallback sensitivity.
		a.state.Camera = a.scene.Camera
		opts = append(opts, orbit.WithBackground(a.scene.Background, cfg.Background.Parallax))
	}
	a.tracker = orbit.NewTracker(a.state)
	a.controller = orbit.NewController(a.state, a.scene.Globe, opts...)

	a.controls = &controls{
		tracker:    a.tracker,
		controller: a.controller,
		resizable:  cfg.Graphics.Resizable,
		resize:     a.resize,
		screenshot: func() { a.captureNext = true },
	}

	a.loop = loop.New(loop.Hooks{
		Poll:    a.poll,
		Frame:   a.frame,
		Present: a.window.SwapBuffers,
	})

	logger.Info("viewer initialized successfully")
	return a, nil
}

// Run drives the render loop until the window closes, ESC is pressed or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.loop.Run(ctx); err != nil {
		return fmt.Errorf("render loop: %w", err)
	}
	return nil
}

// Stop asks the render loop to exit after the current frame.
func (a *App) Stop() {
	a.loop.Stop()
}

// Close cleans up viewer resources.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.input != nil {
		a.input.CapturePointer(false)
	}
	if a.scene != nil {
		a.scene.Close()
	}
	if a.assets != nil {
		a.assets.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) poll() bool {
	if a.input.Update() {
		return true
	}
	for _, ev := range a.input.Events() {
		if a.controls.handle(ev) {
			return true
		}
	}
	return false
}

func (a *App) frame(dt float64) error {
	a.controller.ApplyFrame()
	a.renderer.Render(a.scene, a.scene.Camera)
	if a.captureNext {
		a.captureNext = false
		a.screenshot()
	}
	return nil
}

func (a *App) resize(width, height int) {
	dw, dh := a.window.DrawableSize()
	a.renderer.Resize(dw, dh)
	a.scene.Camera.SetAspect(width, height)
}

// screenshot saves the back buffer. Call it after Render and before the
// buffers are swapped.
func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	name, err := a.shots.SaveFramebuffer(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}
