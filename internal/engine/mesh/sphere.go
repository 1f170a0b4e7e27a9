package mesh

import "github.com/chewxy/math32"

// Sphere builds a UV sphere centred on the origin. Rows run from the north
// pole (v=0, +Y) to the south pole (v=1); columns wrap once around Y with a
// duplicated seam so the texture closes cleanly. Image row 0 therefore maps
// to the north pole when uploaded without a vertical flip.
//
// Triangles wind counter-clockwise seen from outside. The degenerate
// triangles that would touch each pole twice are skipped.
func Sphere(radius float32, widthSegments, heightSegments int) *Mesh {
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)

	m := &Mesh{
		Vertices: make([]Vertex, 0, (widthSegments+1)*(heightSegments+1)),
		Indices:  make([]uint32, 0, widthSegments*(heightSegments-1)*6),
	}

	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		sinV, cosV := math32.Sincos(v * math32.Pi)

		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			sinU, cosU := math32.Sincos(u * math32.Pi * 2)

			n := [3]float32{-cosU * sinV, cosV, sinU * sinV}
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{n[0] * radius, n[1] * radius, n[2] * radius},
				Normal:   n,
				TexCoord: [2]float32{u, v},
			})
		}
	}

	row := uint32(widthSegments + 1)
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(iy)*row + uint32(ix) + 1
			b := uint32(iy)*row + uint32(ix)
			c := uint32(iy+1)*row + uint32(ix)
			d := uint32(iy+1)*row + uint32(ix) + 1

			if iy != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}

	return m
}

// Invert mirrors the mesh through the YZ plane so its triangles face the
// centre and a texture reads unmirrored from inside. Normals end up
// pointing inward. Used for the panorama backdrop.
func (m *Mesh) Invert() *Mesh {
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position[0] = -v.Position[0]
		v.Normal = [3]float32{v.Normal[0], -v.Normal[1], -v.Normal[2]}
	}
	return m
}
