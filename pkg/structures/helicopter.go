package structures

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/voxel"
)

// HelicopterResult bundles the airframe with its two rotor nodes. The
// flight agent poses Root and spins the rotors; the camera gimbal hangs
// off Root as well.
type HelicopterResult struct {
	Root      *scene.Node
	MainRotor *scene.Node
	TailRotor *scene.Node
}

var (
	heliWhite  = scene.Hex(0xf0ede6)
	heliOrange = scene.Hex(0xe06a1f)
	heliDark   = scene.Hex(0x2b2d31)
	heliGlass  = scene.RGB(0.2, 0.28, 0.34)
)

// Helicopter assembles the airframe: a voxel cabin, tail boom and fin,
// skids, and the two rotors. Local +Z is the nose.
func Helicopter() *HelicopterResult {
	root := scene.NewGroup("helicopter")
	mat := scene.NewMaterial("heli-skin", scene.RGB(1, 1, 1))

	cabin := voxel.Pack("heli-cabin", voxel.Build(voxel.Options{
		Size:   mgl64.Vec3{2.2, 2.0, 4.4},
		Cell:   0.22,
		Sample: cabinSample,
	}).Shell(), mat)
	if cabin != nil {
		cabin.SetPosition(0, 0, 0.5)
		root.AddChild(cabin)
	}

	darkMat := scene.NewMaterial("heli-frame", heliDark)
	boom := scene.Box("heli-boom", 0.32, 0.38, 2.8, scene.NewMaterial("heli-boom", heliWhite))
	boom.SetPosition(0, 0.25, -2.5)
	root.AddChild(boom)

	fin := scene.Box("heli-fin", 0.1, 1.0, 0.7, scene.NewMaterial("heli-fin", heliOrange))
	fin.SetPosition(0, 0.75, -3.8)
	root.AddChild(fin)

	for _, side := range []float64{-0.75, 0.75} {
		skid := scene.Box("heli-skid", 0.14, 0.14, 3.0, darkMat)
		skid.SetPosition(side, -1.05, 0.3)
		root.AddChild(skid)
		for _, z := range []float64{-0.6, 1.1} {
			strut := scene.Box("heli-strut", 0.1, 0.55, 0.1, darkMat)
			strut.SetPosition(side, -0.72, z)
			root.AddChild(strut)
		}
	}

	res := &HelicopterResult{Root: root}

	res.MainRotor = scene.NewGroup("heli-main-rotor")
	res.MainRotor.SetPosition(0, 1.2, 0.3)
	mast := scene.Box("heli-mast", 0.16, 0.5, 0.16, darkMat)
	mast.SetPosition(0, -0.3, 0)
	res.MainRotor.AddChild(mast)
	bladeA := scene.Box("heli-blade-a", 7.6, 0.07, 0.3, darkMat)
	bladeA.Mesh.CastShadow = false
	res.MainRotor.AddChild(bladeA)
	bladeB := scene.Box("heli-blade-b", 0.3, 0.07, 7.6, darkMat)
	bladeB.Mesh.CastShadow = false
	res.MainRotor.AddChild(bladeB)
	root.AddChild(res.MainRotor)

	res.TailRotor = scene.NewGroup("heli-tail-rotor")
	res.TailRotor.SetPosition(0.28, 0.55, -3.9)
	tailA := scene.Box("heli-tail-blade-a", 0.06, 1.4, 0.16, darkMat)
	tailA.Mesh.CastShadow = false
	res.TailRotor.AddChild(tailA)
	tailB := scene.Box("heli-tail-blade-b", 0.06, 0.16, 1.4, darkMat)
	tailB.Mesh.CastShadow = false
	res.TailRotor.AddChild(tailB)
	root.AddChild(res.TailRotor)

	return res
}

// cabinSample shapes the fuselage pod: an ellipsoid squeezed toward the
// tail, glass over the nose quarter, an orange belt stripe.
func cabinSample(nx, ny, nz float64) (scene.Color, bool) {
	squeeze := 1.0
	if nz < 0 {
		squeeze = 1 + 0.55*nz*nz
	}
	if nx*nx*squeeze+ny*ny+nz*nz*0.8 > 1 {
		return scene.Color{}, false
	}
	if nz > 0.25 && ny > -0.2 {
		return heliGlass, true
	}
	if math.Abs(ny) < 0.18 {
		return heliOrange, true
	}
	return heliWhite, true
}
