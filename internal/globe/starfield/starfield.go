// Package starfield generates the procedural point-cloud backdrop.
package starfield

import (
	"math"
	"math/rand"
	"time"

	"github.com/chewxy/math32"
)

// Color jitter ranges. Red and green share one draw so stars stay neutral
// or lean blue.
const (
	GrayMin = 0.8
	GrayMax = 1.0
	BlueMin = 0.9
	BlueMax = 1.0
)

// Params controls star placement.
type Params struct {
	Count     int
	MinRadius float32
	MaxRadius float32
	Seed      int64 // 0 seeds from the clock
}

// DefaultParams returns 2000 stars on the [10, 30) shell.
func DefaultParams() Params {
	return Params{
		Count:     2000,
		MinRadius: 10,
		MaxRadius: 30,
	}
}

// Field is a generated star cloud in GPU-ready flat layout.
type Field struct {
	Positions []float32 // x, y, z per star
	Colors    []float32 // r, g, b per star
}

// Len returns the number of stars.
func (f Field) Len() int {
	return len(f.Positions) / 3
}

// Generate places p.Count stars at uniformly drawn spherical coordinates:
// radius in [MinRadius, MaxRadius), theta in [0, 2π), phi in [0, π).
// A non-positive Count yields an empty field.
func Generate(p Params) Field {
	if p.Count <= 0 {
		return Field{Positions: []float32{}, Colors: []float32{}}
	}

	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	f := Field{
		Positions: make([]float32, 0, p.Count*3),
		Colors:    make([]float32, 0, p.Count*3),
	}
	span := p.MaxRadius - p.MinRadius

	for i := 0; i < p.Count; i++ {
		radius := p.MinRadius + rng.Float32()*span
		// Float32 can round up to MaxRadius for spans that aren't powers of two.
		if radius >= p.MaxRadius {
			radius = math.Nextafter32(p.MaxRadius, p.MinRadius)
		}
		theta := rng.Float32() * math32.Pi * 2
		phi := rng.Float32() * math32.Pi

		sinPhi, cosPhi := math32.Sincos(phi)
		sinTheta, cosTheta := math32.Sincos(theta)
		f.Positions = append(f.Positions,
			radius*sinPhi*cosTheta,
			radius*sinPhi*sinTheta,
			radius*cosPhi,
		)

		gray := GrayMin + rng.Float32()*(GrayMax-GrayMin)
		blue := BlueMin + rng.Float32()*(BlueMax-BlueMin)
		f.Colors = append(f.Colors, gray, gray, blue)
	}

	return f
}
