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

const gearTeeth = 8

// MallResult bundles the hall subtree with the facade gears a rotator
// agent spins. Gears at even indices turn one way, odd the other, so the
// pair reads as meshed.
type MallResult struct {
	Root  *scene.Node
	Gears []*scene.Node
}

var (
	mallBrick  = scene.Hex(0x9c6b4f)
	mallRoof   = scene.Hex(0x7a8288)
	mallTrim   = scene.Hex(0xd8d2c4)
	gearBronze = scene.Hex(0xb08d3f)
)

// Mall builds the food hall: brick walls under a barrel vault roof, a
// glass entrance, and a pair of decorative gears over the door.
func Mall(def spec.MallDef) *MallResult {
	root := scene.NewGroup("mall")
	root.SetPosition(def.Position[0], def.Position[1], def.Position[2])
	root.SetRotationY(def.RotationDeg * math.Pi / 180)

	wallH := def.HeightM * 0.68
	roofH := def.HeightM - wallH

	brickMat := scene.NewMaterial("mall-brick", mallBrick)
	body := scene.Box("mall-hall", def.WidthM, wallH, def.DepthM, brickMat)
	body.SetPosition(0, wallH/2, 0)
	root.AddChild(body)

	roof := barrelRoof(def, roofH)
	if roof != nil {
		roof.SetPosition(0, wallH+roofH/2, 0)
		root.AddChild(roof)
	}

	glassMat := scene.Glass("mall-glass", scene.RGB(0.6, 0.75, 0.78), 0.6)
	door := scene.Box("mall-entrance", 7, wallH*0.62, 0.5, glassMat)
	door.SetPosition(0, wallH*0.31, def.DepthM/2+0.2)
	door.Mesh.CastShadow = false
	root.AddChild(door)

	trimMat := scene.NewMaterial("mall-trim", mallTrim)
	awning := scene.Box("mall-awning", 9, 0.5, 2.6, trimMat)
	awning.SetPosition(0, wallH*0.62+0.4, def.DepthM/2+1.2)
	root.AddChild(awning)

	for _, side := range []float64{-1, 1} {
		strip := scene.Box("mall-clerestory", def.WidthM-4, 1.6, 0.3, glassMat)
		strip.SetPosition(0, wallH-1.4, side*(def.DepthM/2+0.12))
		strip.Mesh.CastShadow = false
		root.AddChild(strip)
	}

	sign := scene.Box("mall-sign", 6.5, 1.1, 0.3, scene.Emissive("mall-sign", scene.Hex(0xff9e52), 0))
	sign.SetPosition(0, wallH*0.62+1.6, def.DepthM/2+0.4)
	sign.SetTag(TagNightGlow)
	sign.Mesh.CastShadow = false
	root.AddChild(sign)

	res := &MallResult{Root: root}
	gearMat := scene.NewMaterial("mall-gear", scene.RGB(1, 1, 1))
	for i := 0; i < 2; i++ {
		rotor := scene.NewGroup(fmt.Sprintf("mall-gear-%d", i))
		x := (float64(i)*2 - 1) * (def.GearRadiusM + 0.4)
		rotor.SetPosition(x, wallH+roofH*0.4, def.DepthM/2+0.7)
		rotor.AddChild(gearDisc(fmt.Sprintf("mall-gear-disc-%d", i), def.GearRadiusM, gearMat))
		root.AddChild(rotor)
		res.Gears = append(res.Gears, rotor)
	}

	return res
}

// barrelRoof vaults the hall with a half cylinder run along the long axis.
func barrelRoof(def spec.MallDef, roofH float64) *scene.Node {
	grid := voxel.Build(voxel.Options{
		Size: mgl64.Vec3{def.WidthM, roofH, def.DepthM},
		Cell: 0.8,
		Sample: func(nx, ny, nz float64) (scene.Color, bool) {
			if nz*nz+ny*ny > 1 || ny < -0.55 {
				return scene.Color{}, false
			}
			band := 0.9 + 0.1*math.Sin(nx*26)
			return mallRoof.Scale(band), true
		},
	})
	return voxel.Pack("mall-roof", grid.Shell(), scene.NewMaterial("mall-roof", scene.RGB(1, 1, 1)))
}

// gearDisc sculpts a gear in the XY plane: hub, four spokes, rim, and
// teeth. The disc faces +Z so a rotor can spin it against the facade.
func gearDisc(name string, radius float64, mat *scene.Material) *scene.Node {
	cell := 0.35
	cloud := voxel.NewCloud(cell)
	extent := radius + 0.8

	for x := -extent; x <= extent; x += cell {
		for y := -extent; y <= extent; y += cell {
			r := math.Hypot(x, y)
			a := math.Atan2(y, x)
			keep := false
			switch {
			case r <= radius*0.24:
				keep = true
			case r <= radius*0.88 && math.Mod(a*gearTeeth/2/(2*math.Pi)+4, 1) < 0.14:
				keep = true // spokes, half as many as teeth
			case r > radius*0.62 && r <= radius*0.88:
				keep = true
			case r > radius*0.88 && r <= radius+0.7 &&
				math.Mod(a*gearTeeth/(2*math.Pi)+8, 1) < 0.45:
				keep = true
			}
			if keep {
				tone := 0.88 + 0.12*math.Sin(r*5)
				cloud.Add(geo.V(x, y, 0), gearBronze.Scale(tone))
			}
		}
	}

	node := cloud.Pack(name, mat)
	if node == nil {
		node = scene.NewGroup(name)
	}
	return node
}
