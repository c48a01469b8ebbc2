package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/geo"
)

// headingQuat orients a node's local +Z along dir: yaw about the up axis,
// then pitch so climbs and dips read on the body.
func headingQuat(dir mgl64.Vec3) mgl64.Quat {
	flat := math.Hypot(dir.X(), dir.Z())
	yaw := math.Atan2(dir.X(), dir.Z())
	pitch := math.Atan2(dir.Y(), flat)
	return mgl64.QuatRotate(yaw, geo.Up).Mul(mgl64.QuatRotate(-pitch, mgl64.Vec3{1, 0, 0}))
}

// damp returns the remaining fraction after exponential decay, framed so a
// per-frame factor at 60 Hz stays frame rate independent.
func damp(factorPerFrame, dt float64) float64 {
	return math.Pow(factorPerFrame, dt*60)
}
