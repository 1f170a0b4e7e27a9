// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// GlobeVertexShader transforms the lit, textured globe mesh.
//
//go:embed globe.vert
var GlobeVertexShader string

// GlobeFragmentShader applies the color map, bump map and lights.
//
//go:embed globe.frag
var GlobeFragmentShader string

// PointsVertexShader sizes star points with distance attenuation.
//
//go:embed points.vert
var PointsVertexShader string

// PointsFragmentShader colors star points.
//
//go:embed points.frag
var PointsFragmentShader string

// PanoramaVertexShader is the vertex shader for the inside-out backdrop sphere.
//
//go:embed panorama.vert
var PanoramaVertexShader string

// PanoramaFragmentShader samples the unlit backdrop texture.
//
//go:embed panorama.frag
var PanoramaFragmentShader string
