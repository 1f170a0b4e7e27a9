package renderer

import (
	"errors"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/earthglobe/internal/engine/mesh"
	"github.com/Faultbox/earthglobe/internal/engine/texture"
	"github.com/Faultbox/earthglobe/internal/logger"
)

// Texture is a GL texture name.
type Texture uint32

// Mesh is an uploaded indexed triangle mesh.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// Points is an uploaded point cloud with per-point colors.
type Points struct {
	vao, vbo uint32
	count    int32
}

// UploadMesh copies m into a VAO with position (0), normal (1) and
// texcoord (2) attributes.
func (r *Renderer) UploadMesh(m *mesh.Mesh) (Mesh, error) {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return Mesh{}, errors.New("upload mesh: empty geometry")
	}

	var gm Mesh
	data := m.Floats()

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, mesh.VertexStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, mesh.VertexStride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, mesh.VertexStride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)
	gm.count = int32(len(m.Indices))

	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", gm.vao),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", m.TriangleCount()),
	)
	return gm, nil
}

// UploadPoints copies flat xyz positions and rgb colors into a VAO with
// position (0) and color (1) attributes in separate buffer ranges.
func (r *Renderer) UploadPoints(positions, colors []float32) (Points, error) {
	if len(positions) != len(colors) || len(positions)%3 != 0 {
		return Points{}, errors.New("upload points: positions and colors must be equal-length xyz/rgb triples")
	}

	var p Points
	p.count = int32(len(positions) / 3)

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)

	size := len(positions) * 4
	if size > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, size*2, nil, gl.STATIC_DRAW)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&positions[0]))
		gl.BufferSubData(gl.ARRAY_BUFFER, size, size, unsafe.Pointer(&colors[0]))
	}

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 3*4, uintptr(size))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	logger.Debug("points uploaded", zap.Uint32("vao", p.vao), zap.Int32("count", p.count))
	return p, nil
}

// UploadTexture uploads img, scaling it down first if it exceeds the
// driver limit.
func (r *Renderer) UploadTexture(img *image.RGBA) Texture {
	if r.maxTexSize > 0 && (img.Rect.Dx() > r.maxTexSize || img.Rect.Dy() > r.maxTexSize) {
		logger.Warn("texture exceeds driver limit, downscaling",
			zap.Int("width", img.Rect.Dx()),
			zap.Int("height", img.Rect.Dy()),
			zap.Int("limit", r.maxTexSize),
		)
		img = texture.ToRGBA(img, r.maxTexSize)
	}
	return Texture(texture.Upload(img))
}

// FallbackTexture returns the neutral gray texture used when an asset
// fails to load.
func (r *Renderer) FallbackTexture() Texture {
	return r.fallback
}

// DeleteMesh releases an uploaded mesh.
func (r *Renderer) DeleteMesh(m Mesh) {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
}

// DeletePoints releases an uploaded point cloud.
func (r *Renderer) DeletePoints(p Points) {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
}

// DeleteTexture releases a texture. The shared fallback is kept.
func (r *Renderer) DeleteTexture(t Texture) {
	if t == r.fallback && r.fallback != 0 {
		return
	}
	texture.Delete(uint32(t))
}
