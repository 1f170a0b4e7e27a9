// Package lighting holds the light sources the globe shader understands.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/earthglobe/pkg/math"
)

// Ambient light illuminates every surface uniformly and casts no shadows.
type Ambient struct {
	Color     [3]float32
	Intensity float32
}

// Radiance returns Color scaled by Intensity.
func (a Ambient) Radiance() [3]float32 {
	return [3]float32{a.Color[0] * a.Intensity, a.Color[1] * a.Intensity, a.Color[2] * a.Intensity}
}

// Directional light shines from Direction (pointing towards the light).
type Directional struct {
	Direction math.Vec3
	Color     [3]float32
	Intensity float32
}

// Sun returns a white directional light at the given angles in degrees.
func Sun(longitude, latitude, intensity float32) Directional {
	return Directional{
		Direction: SunDirection(longitude, latitude),
		Color:     [3]float32{1, 1, 1},
		Intensity: intensity,
	}
}

// SunDirection converts longitude/latitude degrees to a unit vector towards
// the sun. Longitude turns about Y starting from +Z; latitude is elevation
// above the XZ plane.
func SunDirection(longitude, latitude float32) math.Vec3 {
	sinLon, cosLon := math32.Sincos(math.DegToRad(longitude))
	sinLat, cosLat := math32.Sincos(math.DegToRad(latitude))

	return math.Vec3{
		X: cosLat * sinLon,
		Y: sinLat,
		Z: cosLat * cosLon,
	}
}
