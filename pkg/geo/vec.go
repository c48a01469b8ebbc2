package geo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis (Y-up, matching the renderer).
var Up = mgl64.Vec3{0, 1, 0}

// V is a shorthand constructor for mgl64.Vec3.
func V(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, z}
}

// Lerp returns the linear interpolation between a and b at t in [0,1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Lerp3 returns the componentwise linear interpolation between a and b.
func Lerp3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

// Finite reports whether every component of v is a finite number.
// Agents check curve samples with this before touching a transform.
func Finite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Flat returns v with its Y component zeroed.
func Flat(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// FromTriples converts raw [x,y,z] triples, the form point lists take in
// the YAML spec, into vectors for curve construction.
func FromTriples(pts [][3]float64) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(pts))
	for i, p := range pts {
		out[i] = mgl64.Vec3{p[0], p[1], p[2]}
	}
	return out
}
