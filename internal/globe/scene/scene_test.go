package scene

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/earthglobe/internal/config"
	"github.com/Faultbox/earthglobe/internal/engine/mesh"
	"github.com/Faultbox/earthglobe/internal/engine/renderer"
	"github.com/Faultbox/earthglobe/internal/globe/orbit"
	"github.com/Faultbox/earthglobe/pkg/math"
)

const fallbackTex renderer.Texture = 99

type fakeGPU struct {
	meshes   []*mesh.Mesh
	points   [][]float32
	textures []*image.RGBA
	draws    []string

	meshErr error

	deletedTextures []renderer.Texture
	deletedMeshes   int
	deletedPoints   int
}

func (g *fakeGPU) UploadMesh(m *mesh.Mesh) (renderer.Mesh, error) {
	if g.meshErr != nil {
		return renderer.Mesh{}, g.meshErr
	}
	g.meshes = append(g.meshes, m)
	return renderer.Mesh{}, nil
}

func (g *fakeGPU) UploadPoints(positions, colors []float32) (renderer.Points, error) {
	g.points = append(g.points, positions)
	return renderer.Points{}, nil
}

func (g *fakeGPU) UploadTexture(img *image.RGBA) renderer.Texture {
	g.textures = append(g.textures, img)
	return renderer.Texture(len(g.textures))
}

func (g *fakeGPU) FallbackTexture() renderer.Texture { return fallbackTex }
func (g *fakeGPU) MaxTextureSize() int               { return 4096 }

func (g *fakeGPU) DrawGlobe(v renderer.View, m renderer.Mesh, model math.Mat4, s renderer.Surface, l renderer.Lights) {
	g.draws = append(g.draws, "globe")
}

func (g *fakeGPU) DrawPoints(v renderer.View, p renderer.Points, model math.Mat4, style renderer.PointStyle) {
	g.draws = append(g.draws, "points")
}

func (g *fakeGPU) DrawPanorama(v renderer.View, m renderer.Mesh, model math.Mat4, tex renderer.Texture) {
	g.draws = append(g.draws, "panorama")
}

func (g *fakeGPU) DeleteMesh(m renderer.Mesh)     { g.deletedMeshes++ }
func (g *fakeGPU) DeletePoints(p renderer.Points) { g.deletedPoints++ }
func (g *fakeGPU) DeleteTexture(t renderer.Texture) {
	g.deletedTextures = append(g.deletedTextures, t)
}

func okLoader(path string, maxSize int) (*image.RGBA, error) {
	return image.NewRGBA(image.Rect(0, 0, 2, 1)), nil
}

func failLoader(failing ...string) Loader {
	return func(path string, maxSize int) (*image.RGBA, error) {
		for _, f := range failing {
			if f == path {
				return nil, os.ErrNotExist
			}
		}
		return okLoader(path, maxSize)
	}
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Background.StarCount = 50
	cfg.Background.Seed = 7
	return cfg
}

func TestBuildStars(t *testing.T) {
	gpu := &fakeGPU{}
	s, err := Build(testConfig(), gpu, 800, 600, WithLoader(okLoader))
	require.NoError(t, err)

	assert.Equal(t, config.BackgroundStars, s.Mode)
	require.Len(t, gpu.meshes, 1)
	assert.Equal(t, (32+1)*(32+1), len(gpu.meshes[0].Vertices))
	require.Len(t, gpu.points, 1)
	assert.Len(t, gpu.points[0], 50*3)
	assert.Len(t, gpu.textures, 2)

	assert.Equal(t, renderer.Texture(1), s.surface.Color)
	assert.Equal(t, renderer.Texture(2), s.surface.Bump)
	assert.Equal(t, float32(1), s.surface.BumpScale)
	assert.Equal(t, renderer.PointStyle{Size: 0.1, Opacity: 0.9}, s.starStyle)

	assert.InDelta(t, 1.7, s.Camera.Distance(), 1e-6)
	assert.InDelta(t, 800.0/600.0, s.Camera.Aspect, 1e-6)
}

func TestBuildMissingTexturesUseFallback(t *testing.T) {
	cfg := testConfig()
	gpu := &fakeGPU{}
	s, err := Build(cfg, gpu, 800, 600, WithLoader(failLoader(cfg.Globe.ColorMap, cfg.Globe.BumpMap)))
	require.NoError(t, err)

	assert.Equal(t, fallbackTex, s.surface.Color)
	assert.Equal(t, fallbackTex, s.surface.Bump)
	assert.Empty(t, gpu.textures)
}

func TestBuildPanorama(t *testing.T) {
	cfg := testConfig()
	cfg.Background.Mode = config.BackgroundPanorama
	gpu := &fakeGPU{}

	s, err := Build(cfg, gpu, 800, 600, WithLoader(okLoader))
	require.NoError(t, err)

	assert.Equal(t, config.BackgroundPanorama, s.Mode)
	require.Len(t, gpu.meshes, 2)
	assert.Empty(t, gpu.points)

	// Backdrop vertices sit on the configured radius.
	p := gpu.meshes[1].Vertices[10].Position
	r := math.Vec3{X: p[0], Y: p[1], Z: p[2]}.Length()
	assert.InDelta(t, 100, r, 1e-3)

	s.Draw(renderer.View{})
	assert.Equal(t, []string{"panorama", "globe"}, gpu.draws)
}

func TestBuildPanoramaFallsBackToStars(t *testing.T) {
	cfg := testConfig()
	cfg.Background.Mode = config.BackgroundPanorama
	gpu := &fakeGPU{}

	s, err := Build(cfg, gpu, 800, 600, WithLoader(failLoader(cfg.Background.Panorama)))
	require.NoError(t, err)

	assert.Equal(t, config.BackgroundStars, s.Mode)
	assert.Len(t, gpu.meshes, 1)
	require.Len(t, gpu.points, 1)

	s.Draw(renderer.View{})
	assert.Equal(t, []string{"points", "globe"}, gpu.draws)
}

func TestPanoramaFallbackWithLoadedConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlContent := "background:\n  mode: panorama\n  panorama: missing.png\n  star_count: 25\n  seed: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	cfg := config.Default()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(data, cfg))
	require.NoError(t, cfg.Validate())

	gpu := &fakeGPU{}
	var s *Scene
	require.NotPanics(t, func() {
		s, err = Build(cfg, gpu, 800, 600, WithLoader(failLoader("missing.png")))
	})
	require.NoError(t, err)

	assert.Equal(t, config.BackgroundStars, s.Mode)
	require.Len(t, gpu.points, 1)
	assert.Len(t, gpu.points[0], 25*3)
}

func TestPanoramaFallbackRejectedStars(t *testing.T) {
	cfg := testConfig()
	cfg.Background.Mode = config.BackgroundPanorama
	cfg.Background.StarCount = -1
	assert.Error(t, cfg.Validate())
}

func TestBuildMeshError(t *testing.T) {
	gpu := &fakeGPU{meshErr: errors.New("out of memory")}

	_, err := Build(testConfig(), gpu, 800, 600, WithLoader(okLoader))
	require.Error(t, err)
	assert.ErrorIs(t, err, gpu.meshErr)
	assert.Contains(t, err.Error(), "globe mesh")
}

func TestLights(t *testing.T) {
	cfg := testConfig()
	s, err := Build(cfg, &fakeGPU{}, 800, 600, WithLoader(okLoader))
	require.NoError(t, err)

	l := s.Lights()
	assert.False(t, l.Sun)
	assert.Equal(t, [3]float32{1.5, 1.5, 1.5}, l.Ambient)

	cfg.Lighting.SunEnabled = true
	cfg.Lighting.SunIntensity = 2
	s, err = Build(cfg, &fakeGPU{}, 800, 600, WithLoader(okLoader))
	require.NoError(t, err)

	l = s.Lights()
	assert.True(t, l.Sun)
	assert.Equal(t, [3]float32{2, 2, 2}, l.SunColor)
	assert.InDelta(t, 1, l.SunDir.Length(), 1e-5)
}

func TestClose(t *testing.T) {
	gpu := &fakeGPU{}
	s, err := Build(testConfig(), gpu, 800, 600, WithLoader(okLoader))
	require.NoError(t, err)

	s.Close()
	assert.Equal(t, 2, gpu.deletedMeshes)
	assert.Equal(t, 1, gpu.deletedPoints)
	assert.Contains(t, gpu.deletedTextures, renderer.Texture(1))
	assert.Contains(t, gpu.deletedTextures, renderer.Texture(2))
}

func TestNodeRotation(t *testing.T) {
	var _ orbit.Transform = (*Node)(nil)

	n := &Node{}
	n.SetRotation(0.3, -1.2)
	assert.Equal(t, float32(0.3), n.RotX)
	assert.Equal(t, float32(-1.2), n.RotY)
	assert.Equal(t, math.EulerXY(0.3, -1.2), n.Model())

	n.SetRotation(0.3, -1.2)
	assert.Equal(t, math.EulerXY(0.3, -1.2), n.Model())
}
