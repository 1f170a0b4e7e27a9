// Package scene assembles the globe, its lights and the backdrop.
package scene

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/earthglobe/internal/config"
	"github.com/Faultbox/earthglobe/internal/engine/camera"
	"github.com/Faultbox/earthglobe/internal/engine/lighting"
	"github.com/Faultbox/earthglobe/internal/engine/mesh"
	"github.com/Faultbox/earthglobe/internal/engine/renderer"
	"github.com/Faultbox/earthglobe/internal/engine/texture"
	"github.com/Faultbox/earthglobe/internal/globe/starfield"
	"github.com/Faultbox/earthglobe/internal/logger"
	"github.com/Faultbox/earthglobe/pkg/math"
)

// GPU is the subset of *renderer.Renderer the scene uploads to and draws with.
type GPU interface {
	UploadMesh(m *mesh.Mesh) (renderer.Mesh, error)
	UploadPoints(positions, colors []float32) (renderer.Points, error)
	UploadTexture(img *image.RGBA) renderer.Texture
	FallbackTexture() renderer.Texture
	MaxTextureSize() int

	DrawGlobe(v renderer.View, m renderer.Mesh, model math.Mat4, s renderer.Surface, l renderer.Lights)
	DrawPoints(v renderer.View, p renderer.Points, model math.Mat4, style renderer.PointStyle)
	DrawPanorama(v renderer.View, m renderer.Mesh, model math.Mat4, tex renderer.Texture)

	DeleteMesh(m renderer.Mesh)
	DeletePoints(p renderer.Points)
	DeleteTexture(t renderer.Texture)
}

// Loader decodes an image file, fitting it within maxSize.
type Loader func(path string, maxSize int) (*image.RGBA, error)

// Scene is the fully built globe scene.
type Scene struct {
	Mode       string // Effective background mode
	Camera     *camera.Perspective
	Globe      *Node
	Background *Node

	Ambient lighting.Ambient
	Sun     *lighting.Directional

	gpu  GPU
	load Loader

	globeMesh renderer.Mesh
	surface   renderer.Surface

	stars     renderer.Points
	starStyle renderer.PointStyle

	panorama    renderer.Mesh
	panoramaTex renderer.Texture
}

// Option configures Build.
type Option func(*Scene)

// WithLoader replaces the image loader (texture.LoadFile by default).
func WithLoader(l Loader) Option {
	return func(s *Scene) {
		s.load = l
	}
}

// Build creates the camera, uploads the globe and backdrop, and sets up the
// lights. Missing textures degrade to the GPU fallback texture; a missing
// panorama degrades to the star field.
func Build(cfg *config.Config, gpu GPU, width, height int, opts ...Option) (*Scene, error) {
	s := &Scene{
		Mode:       cfg.Background.Mode,
		Camera:     camera.NewPerspective(width, height),
		Globe:      &Node{},
		Background: &Node{},
		gpu:        gpu,
		load:       texture.LoadFile,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.buildGlobe(cfg.Globe); err != nil {
		s.Close()
		return nil, err
	}
	s.buildLights(cfg.Lighting)
	if err := s.buildBackground(cfg.Background); err != nil {
		s.Close()
		return nil, err
	}

	logger.Info("scene built",
		zap.String("background", s.Mode),
		zap.Int("segments", cfg.Globe.Segments),
		zap.Bool("sun", s.Sun != nil),
	)
	return s, nil
}

func (s *Scene) buildGlobe(cfg config.GlobeConfig) error {
	m := mesh.Sphere(cfg.Radius, cfg.Segments, cfg.Segments)
	gm, err := s.gpu.UploadMesh(m)
	if err != nil {
		return fmt.Errorf("globe mesh: %w", err)
	}
	s.globeMesh = gm

	s.surface = renderer.Surface{
		Color:     s.texture("color map", cfg.ColorMap),
		Bump:      s.texture("bump map", cfg.BumpMap),
		BumpScale: cfg.BumpScale,
	}
	return nil
}

func (s *Scene) buildLights(cfg config.LightingConfig) {
	s.Ambient = lighting.Ambient{Color: cfg.AmbientColor, Intensity: cfg.AmbientIntensity}
	if cfg.SunEnabled {
		sun := lighting.Sun(cfg.SunLongitude, cfg.SunLatitude, cfg.SunIntensity)
		s.Sun = &sun
	}
}

func (s *Scene) buildBackground(cfg config.BackgroundConfig) error {
	if cfg.Mode == config.BackgroundPanorama {
		img, err := s.load(cfg.Panorama, s.gpu.MaxTextureSize())
		if err == nil {
			m := mesh.Sphere(cfg.PanoramaRadius, 60, 40).Invert()
			pm, err := s.gpu.UploadMesh(m)
			if err != nil {
				return fmt.Errorf("panorama mesh: %w", err)
			}
			s.panorama = pm
			s.panoramaTex = s.gpu.UploadTexture(img)
			return nil
		}
		logger.Warn("panorama unavailable, using star field",
			zap.String("path", cfg.Panorama),
			zap.Error(err),
		)
		s.Mode = config.BackgroundStars
	}

	field := starfield.Generate(starfield.Params{
		Count:     cfg.StarCount,
		MinRadius: cfg.StarMinRadius,
		MaxRadius: cfg.StarMaxRadius,
		Seed:      cfg.Seed,
	})
	pts, err := s.gpu.UploadPoints(field.Positions, field.Colors)
	if err != nil {
		return fmt.Errorf("star field: %w", err)
	}
	s.stars = pts
	s.starStyle = renderer.PointStyle{Size: cfg.StarSize, Opacity: cfg.StarOpacity}
	return nil
}

// texture loads path or returns the fallback texture.
func (s *Scene) texture(what, path string) renderer.Texture {
	img, err := s.load(path, s.gpu.MaxTextureSize())
	if err != nil {
		logger.Warn("texture unavailable, using fallback",
			zap.String("texture", what),
			zap.String("path", path),
			zap.Error(err),
		)
		return s.gpu.FallbackTexture()
	}
	return s.gpu.UploadTexture(img)
}

// Lights returns the globe lighting uniforms.
func (s *Scene) Lights() renderer.Lights {
	l := renderer.Lights{Ambient: s.Ambient.Radiance()}
	if s.Sun != nil {
		l.Sun = true
		l.SunDir = s.Sun.Direction
		i := s.Sun.Intensity
		l.SunColor = [3]float32{s.Sun.Color[0] * i, s.Sun.Color[1] * i, s.Sun.Color[2] * i}
	}
	return l
}

// Draw submits the backdrop then the globe.
func (s *Scene) Draw(v renderer.View) {
	bg := s.Background.Model()
	switch s.Mode {
	case config.BackgroundPanorama:
		s.gpu.DrawPanorama(v, s.panorama, bg, s.panoramaTex)
	default:
		s.gpu.DrawPoints(v, s.stars, bg, s.starStyle)
	}
	s.gpu.DrawGlobe(v, s.globeMesh, s.Globe.Model(), s.surface, s.Lights())
}

// Close releases all GPU resources owned by the scene.
func (s *Scene) Close() {
	s.gpu.DeleteMesh(s.globeMesh)
	s.gpu.DeleteTexture(s.surface.Color)
	s.gpu.DeleteTexture(s.surface.Bump)
	s.gpu.DeletePoints(s.stars)
	s.gpu.DeleteMesh(s.panorama)
	s.gpu.DeleteTexture(s.panoramaTex)
	s.globeMesh = renderer.Mesh{}
	s.surface = renderer.Surface{}
	s.stars = renderer.Points{}
	s.panorama = renderer.Mesh{}
	s.panoramaTex = 0
}
