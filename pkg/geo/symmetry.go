package geo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotateY returns p rotated by angleDegrees around the vertical (Y) axis.
func RotateY(p mgl64.Vec3, angleDegrees float64) mgl64.Vec3 {
	rad := angleDegrees * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return mgl64.Vec3{
		p[0]*c - p[2]*s,
		p[1],
		p[0]*s + p[2]*c,
	}
}

// Triad returns p replicated at 0, 120 and 240 degrees around the Y axis.
// Authoring one generator point and replicating it keeps three-fold
// structures exactly symmetric.
func Triad(p mgl64.Vec3) [3]mgl64.Vec3 {
	return [3]mgl64.Vec3{
		p,
		RotateY(p, 120),
		RotateY(p, 240),
	}
}

// Hex returns p replicated at 60-degree intervals around the Y axis.
func Hex(p mgl64.Vec3) [6]mgl64.Vec3 {
	var out [6]mgl64.Vec3
	for i := 0; i < 6; i++ {
		out[i] = RotateY(p, float64(i)*60)
	}
	return out
}
