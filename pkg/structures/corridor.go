package structures

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/geo"
)

// corridorExcluder returns a world-space predicate that reports whether a
// point lies inside the swept clearance tube around a track. Builders near
// the guideway pass it as the voxel Exclude test so their shapes are carved
// away where the train passes, no matter how the two were positioned.
func corridorExcluder(track *geo.Curve, clearance float64, samples int) func(mgl64.Vec3) bool {
	if samples < 32 {
		samples = 32
	}
	pts := make([]mgl64.Vec3, samples+1)
	for i := 0; i <= samples; i++ {
		pts[i] = track.PointAt(float64(i) / float64(samples))
	}
	c2 := clearance * clearance
	return func(world mgl64.Vec3) bool {
		for _, p := range pts {
			d := world.Sub(p)
			if d.Dot(d) < c2 {
				return true
			}
		}
		return false
	}
}
