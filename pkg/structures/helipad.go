package structures

import (
	"fmt"
	"math"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/geo"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/spec"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/voxel"
)

const padSize = 8.0

// Pad builds the rooftop helipad at the spec position: a dark slab, a
// painted H, and corner lights that come on at night. The helicopter
// itself is a separate subtree so it can leave the pad.
func Pad(def spec.HelicopterDef) *scene.Node {
	root := scene.NewGroup("helipad")
	root.SetPosition(def.PadPosition[0], def.PadPosition[1], def.PadPosition[2])
	root.SetRotationY(def.PadHeadingDeg * math.Pi / 180)

	slabMat := scene.NewMaterial("helipad-slab", scene.Hex(0x3a3d42))
	slab := scene.Box("helipad-slab", padSize, 0.4, padSize, slabMat)
	slab.SetPosition(0, -0.2, 0)
	root.AddChild(slab)

	markMat := scene.NewMaterial("helipad-mark", scene.RGB(1, 1, 1))
	root.AddChild(padMarking(markMat))

	lampMat := scene.Emissive("helipad-lamp", scene.Hex(0x7ef29a), 0)
	for i, corner := range [][2]float64{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		lamp := scene.Box(fmt.Sprintf("helipad-lamp-%d", i), 0.3, 0.3, 0.3, lampMat)
		lamp.SetPosition(corner[0]*(padSize/2-0.4), 0.15, corner[1]*(padSize/2-0.4))
		lamp.SetTag(TagNightGlow)
		lamp.Mesh.CastShadow = false
		root.AddChild(lamp)
	}

	return root
}

// padMarking paints the H and the touchdown circle in voxel cells.
func padMarking(mat *scene.Material) *scene.Node {
	cloud := voxel.NewCloud(0.4)
	white := scene.RGB(0.95, 0.95, 0.92)

	for y := -1.2; y <= 1.2; y += 0.4 {
		cloud.Add(geo.V(-0.9, 0.05, y), white)
		cloud.Add(geo.V(0.9, 0.05, y), white)
	}
	for x := -0.9; x <= 0.9; x += 0.4 {
		cloud.Add(geo.V(x, 0.05, 0), white)
	}
	cloud.AddRing(geo.V(0, 0.05, 0), 2.6, white)

	return cloud.Pack("helipad-marking", mat)
}
