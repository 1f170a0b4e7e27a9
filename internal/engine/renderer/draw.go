package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/earthglobe/pkg/math"
)

// Surface is the material of the globe.
type Surface struct {
	Color     Texture
	Bump      Texture
	BumpScale float32
}

// Lights is the lighting state for the globe shader.
type Lights struct {
	Ambient  [3]float32 // Color already scaled by intensity
	Sun      bool
	SunDir   math.Vec3
	SunColor [3]float32
}

// PointStyle controls how star points are rasterized.
type PointStyle struct {
	Size    float32 // World-space size, attenuated by view depth
	Opacity float32
}

// DrawGlobe draws the lit, bump-mapped globe mesh.
func (r *Renderer) DrawGlobe(v View, m Mesh, model math.Mat4, s Surface, l Lights) {
	p := r.globe
	p.Use()

	gl.UniformMatrix4fv(p.Loc("uModel"), 1, false, model.Ptr())
	gl.UniformMatrix4fv(p.Loc("uViewProj"), 1, false, v.ViewProj.Ptr())

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(s.Color))
	gl.Uniform1i(p.Loc("uColorMap"), 0)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, uint32(s.Bump))
	gl.Uniform1i(p.Loc("uBumpMap"), 1)
	gl.Uniform1f(p.Loc("uBumpScale"), s.BumpScale)

	gl.Uniform3f(p.Loc("uAmbient"), l.Ambient[0], l.Ambient[1], l.Ambient[2])
	if l.Sun {
		gl.Uniform1i(p.Loc("uSunEnabled"), 1)
	} else {
		gl.Uniform1i(p.Loc("uSunEnabled"), 0)
	}
	gl.Uniform3f(p.Loc("uSunDir"), l.SunDir.X, l.SunDir.Y, l.SunDir.Z)
	gl.Uniform3f(p.Loc("uSunColor"), l.SunColor[0], l.SunColor[1], l.SunColor[2])

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.ActiveTexture(gl.TEXTURE0)
}

// DrawPoints draws a star field with alpha blending. Points do not write
// depth so overlapping stars blend evenly.
func (r *Renderer) DrawPoints(v View, pts Points, model math.Mat4, style PointStyle) {
	if pts.count == 0 {
		return
	}
	p := r.points
	p.Use()

	gl.UniformMatrix4fv(p.Loc("uModel"), 1, false, model.Ptr())
	gl.UniformMatrix4fv(p.Loc("uView"), 1, false, v.View.Ptr())
	gl.UniformMatrix4fv(p.Loc("uProjection"), 1, false, v.Projection.Ptr())
	gl.Uniform1f(p.Loc("uSize"), style.Size)
	gl.Uniform1f(p.Loc("uScale"), float32(v.Height)/2)
	gl.Uniform1f(p.Loc("uOpacity"), style.Opacity)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)

	gl.BindVertexArray(pts.vao)
	gl.DrawArrays(gl.POINTS, 0, pts.count)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// DrawPanorama draws an inside-facing textured sphere behind everything.
func (r *Renderer) DrawPanorama(v View, m Mesh, model math.Mat4, tex Texture) {
	p := r.panorama
	p.Use()

	gl.UniformMatrix4fv(p.Loc("uModel"), 1, false, model.Ptr())
	gl.UniformMatrix4fv(p.Loc("uViewProj"), 1, false, v.ViewProj.Ptr())

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
	gl.Uniform1i(p.Loc("uTexture"), 0)

	gl.DepthMask(false)
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.DepthMask(true)
}
