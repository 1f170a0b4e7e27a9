// Package renderer provides OpenGL rendering for the globe scene.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/earthglobe/internal/engine/renderer/shaders"
	"github.com/Faultbox/earthglobe/internal/engine/shader"
	"github.com/Faultbox/earthglobe/internal/engine/texture"
	"github.com/Faultbox/earthglobe/internal/logger"
	"github.com/Faultbox/earthglobe/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int // Drawable size in pixels
	Height     int
	ClearColor [3]float32
}

// DefaultClearColor is a very dark blue, almost black (#000814).
var DefaultClearColor = [3]float32{0, 8.0 / 255, 20.0 / 255}

// Camera supplies the view and projection for a frame.
type Camera interface {
	ViewMatrix() math.Mat4
	ProjectionMatrix() math.Mat4
}

// View is the per-frame camera state handed to drawers.
type View struct {
	View       math.Mat4
	Projection math.Mat4
	ViewProj   math.Mat4
	Height     int // Viewport height in pixels
}

// Drawer submits its draw calls for one frame.
type Drawer interface {
	Draw(v View)
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	globe    *shader.Program
	points   *shader.Program
	panorama *shader.Program

	fallback   Texture
	maxTexSize int
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.maxTexSize = texture.MaxSize()
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.Int("max_texture_size", r.maxTexSize),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	if err := r.createPrograms(); err != nil {
		r.Close()
		return nil, err
	}

	r.fallback = Texture(texture.Solid(128, 128, 128, 255))

	return r, nil
}

func (r *Renderer) createPrograms() error {
	var err error

	r.globe, err = shader.New("globe", shaders.GlobeVertexShader, shaders.GlobeFragmentShader,
		"uModel", "uViewProj", "uColorMap", "uBumpMap", "uBumpScale",
		"uAmbient", "uSunEnabled", "uSunDir", "uSunColor")
	if err != nil {
		return err
	}

	r.points, err = shader.New("points", shaders.PointsVertexShader, shaders.PointsFragmentShader,
		"uModel", "uView", "uProjection", "uSize", "uScale", "uOpacity")
	if err != nil {
		return err
	}

	r.panorama, err = shader.New("panorama", shaders.PanoramaVertexShader, shaders.PanoramaFragmentShader,
		"uModel", "uViewProj", "uTexture")
	return err
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.globe.Delete()
	r.points.Delete()
	r.panorama.Delete()
	r.DeleteTexture(r.fallback)
	r.fallback = 0
}

// Resize handles a drawable size change.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Render clears the frame and draws d through cam.
func (r *Renderer) Render(d Drawer, cam Camera) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	v := View{
		View:       cam.ViewMatrix(),
		Projection: cam.ProjectionMatrix(),
		Height:     r.config.Height,
	}
	v.ViewProj = v.Projection.Mul(v.View)

	d.Draw(v)
}

// MaxTextureSize returns the driver's texture dimension limit.
func (r *Renderer) MaxTextureSize() int {
	return r.maxTexSize
}

// ReadPixels returns the current back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}
