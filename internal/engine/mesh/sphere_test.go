package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/earthglobe/pkg/math"
)

func vec(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// triangleFacing returns the sign of the triangle normal against the
// direction from the origin to its centroid.
func triangleFacing(m *Mesh, tri int) float32 {
	a := vec(m.Vertices[m.Indices[tri*3]].Position)
	b := vec(m.Vertices[m.Indices[tri*3+1]].Position)
	c := vec(m.Vertices[m.Indices[tri*3+2]].Position)
	n := b.Sub(a).Cross(c.Sub(a))
	centroid := a.Add(b).Add(c).Scale(1.0 / 3)
	return n.Dot(centroid)
}

func TestSphereCounts(t *testing.T) {
	m := Sphere(0.5, 32, 32)

	assert.Len(t, m.Vertices, 33*33)
	assert.Equal(t, 2*32*31, m.TriangleCount())
	assert.Len(t, m.Floats(), 33*33*8)
}

func TestSphereVerticesOnSurface(t *testing.T) {
	m := Sphere(0.5, 16, 12)

	for i, v := range m.Vertices {
		require.InDelta(t, 0.5, vec(v.Position).Length(), 1e-5, "vertex %d", i)
		require.InDelta(t, 1, vec(v.Normal).Length(), 1e-5, "normal %d", i)
		require.GreaterOrEqual(t, v.TexCoord[0], float32(0))
		require.LessOrEqual(t, v.TexCoord[0], float32(1))
		require.GreaterOrEqual(t, v.TexCoord[1], float32(0))
		require.LessOrEqual(t, v.TexCoord[1], float32(1))
	}
}

func TestSpherePoles(t *testing.T) {
	m := Sphere(2, 8, 4)

	north := m.Vertices[0]
	south := m.Vertices[len(m.Vertices)-1]
	assert.InDelta(t, 2, north.Position[1], 1e-5)
	assert.InDelta(t, -2, south.Position[1], 1e-5)
	assert.Equal(t, float32(0), north.TexCoord[1])
	assert.Equal(t, float32(1), south.TexCoord[1])
}

func TestSphereIndicesInRange(t *testing.T) {
	m := Sphere(1, 10, 7)
	for _, idx := range m.Indices {
		require.Less(t, int(idx), len(m.Vertices))
	}
}

func TestSphereWindsOutward(t *testing.T) {
	m := Sphere(1, 24, 16)
	for tri := 0; tri < m.TriangleCount(); tri++ {
		require.Greater(t, triangleFacing(m, tri), float32(0), "triangle %d", tri)
	}
}

func TestInvertWindsInward(t *testing.T) {
	m := Sphere(100, 24, 16).Invert()

	for tri := 0; tri < m.TriangleCount(); tri++ {
		require.Less(t, triangleFacing(m, tri), float32(0), "triangle %d", tri)
	}
	for i, v := range m.Vertices {
		// Normals point back at the centre.
		require.Less(t, vec(v.Normal).Dot(vec(v.Position)), float32(1e-3), "vertex %d", i)
	}
}

func TestSphereClampsSegments(t *testing.T) {
	m := Sphere(1, 0, 0)
	assert.Len(t, m.Vertices, 4*3)
	assert.Equal(t, 2*3*1, m.TriangleCount())
}
