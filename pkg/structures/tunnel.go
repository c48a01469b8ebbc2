package structures

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/geo"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/spec"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/voxel"
)

var (
	bermGrass  = scene.Hex(0x55833e)
	bermCrest  = scene.Hex(0x6f9a50)
	bermRock   = scene.Hex(0x7d7a72)
	portalGray = scene.Hex(0x8f8c84)
)

// Tunnel builds the grassy berm the guideway burrows through: a cosine
// dome with the track corridor carved out and a concrete portal arch at
// each point where the track crosses the berm footprint.
func Tunnel(def spec.TunnelDef, track *geo.Curve) *scene.Node {
	root := scene.NewGroup("tunnel-berm")
	mat := scene.NewMaterial("berm-grass", scene.RGB(1, 1, 1))

	center := mgl64.Vec3{def.Center[0], def.HeightM / 2, def.Center[1]}
	grid := voxel.Build(voxel.Options{
		Size:      mgl64.Vec3{2 * def.RadiusM, def.HeightM, 2 * def.RadiusM},
		Cell:      def.CellM,
		Sample:    bermSample,
		Placement: mgl64.Translate3D(center.X(), center.Y(), center.Z()),
		Exclude:   corridorExcluder(track, def.ClearanceM, 256),
	})
	dome := voxel.Pack("berm-dome", grid.Shell(), mat)
	if dome != nil {
		dome.SetPosition(center.X(), center.Y(), center.Z())
		root.AddChild(dome)
	}

	for i, t := range bermCrossings(def, track) {
		root.AddChild(portalArch(fmt.Sprintf("tunnel-portal-%d", i), def, track, t, mat))
	}

	return root
}

// bermSample shapes the dome: the surface height falls off as a cosine of
// the distance from the center. Tints are position hashes, not random
// draws, because samples run on parallel workers.
func bermSample(nx, ny, nz float64) (scene.Color, bool) {
	r := math.Hypot(nx, nz)
	if r > 1 {
		return scene.Color{}, false
	}
	h := math.Cos(r * math.Pi / 2)
	u := (ny + 1) / 2
	if u > h {
		return scene.Color{}, false
	}
	if math.Sin(nx*53)*math.Sin(nz*47) > 0.93 {
		return bermRock, true
	}
	tone := 0.86 + 0.14*math.Sin(nx*7+nz*5+ny*3)
	return bermGrass.Lerp(bermCrest, u).Scale(tone), true
}

// bermCrossings finds the track parameters where the line enters or
// leaves the berm footprint.
func bermCrossings(def spec.TunnelDef, track *geo.Curve) []float64 {
	const n = 512
	center := geo.Pt(def.Center[0], def.Center[1])

	var out []float64
	p := track.PointAt(0)
	prev := geo.Pt(p.X(), p.Z()).Distance(center) > def.RadiusM
	for i := 1; i <= n; i++ {
		t := float64(i) / n
		q := track.PointAt(t)
		outside := geo.Pt(q.X(), q.Z()).Distance(center) > def.RadiusM
		if outside != prev {
			out = append(out, t)
			prev = outside
		}
	}
	return out
}

// portalArch rings the track with concrete cells in the plane
// perpendicular to the crossing tangent.
func portalArch(name string, def spec.TunnelDef, track *geo.Curve, t float64, mat *scene.Material) *scene.Node {
	p := track.PointAt(t)
	tan := geo.Flat(track.TangentAt(t))
	perp := mgl64.Vec3{-tan.Z(), 0, tan.X()}

	cloud := voxel.NewCloud(def.CellM * 0.8)
	radius := def.ClearanceM - 0.4
	steps := int(2 * math.Pi * radius / (def.CellM * 0.55))
	for ring := 0; ring < 2; ring++ {
		r := radius + float64(ring)*def.CellM*0.8
		for i := 0; i < steps; i++ {
			a := 2 * math.Pi * float64(i) / float64(steps)
			c := p.Add(perp.Mul(r * math.Cos(a)))
			c = c.Add(mgl64.Vec3{0, r * math.Sin(a), 0})
			if c.Y() < 0.2 {
				continue
			}
			cloud.Add(c, portalGray.Scale(1-0.06*float64(ring)))
		}
	}
	node := cloud.Pack(name, mat)
	if node == nil {
		node = scene.NewGroup(name)
	}
	return node
}
