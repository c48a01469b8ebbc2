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

// NeedleResult bundles the tower subtree with the nodes that move at
// runtime: the saucer rotor, the beacon light, and the exterior elevator
// cars that ride the core.
type NeedleResult struct {
	Root *scene.Node

	// DeckRotor carries the saucer voxels; spinning it spins the deck
	// because packed instances stay local to their parent.
	DeckRotor *scene.Node

	// Beacon is the aircraft warning light at the spire tip.
	Beacon *scene.Node

	// ElevatorCars are the glass cabins. Their X and Z are fixed at build
	// time; an elevator agent only drives Y between CarFloorY and CarTopY.
	ElevatorCars []*scene.Node
	CarFloorY    float64
	CarTopY      float64
}

var (
	needleWhite  = scene.Hex(0xe8e4da)
	needleRib    = scene.Hex(0xd2cec2)
	needleGold   = scene.Hex(0xc98a2d)
	deckGlass    = scene.Hex(0x27414a)
	beaconColor  = scene.Hex(0xff4330)
	spireColor   = scene.Hex(0xb9b4a8)
	carGlassTint = scene.RGB(0.72, 0.84, 0.88)
)

// Needle builds the observation tower: three curved legs meeting a waist,
// a hexagonal core with elevator rails, a rotating saucer deck, and a
// spire with a warning beacon. The subtree origin is the pad center at
// ground level; the caller places it.
func Needle(def spec.NeedleDef) *NeedleResult {
	root := scene.NewGroup("needle")
	root.SetPosition(def.Position[0], def.Position[1], def.Position[2])

	paint := scene.NewMaterial("needle-paint", scene.RGB(1, 1, 1))

	root.AddChild(needleLegs(def, paint))
	root.AddChild(needleCore(def, paint))

	rotor := scene.NewGroup("needle-deck-rotor")
	rotor.SetPosition(0, def.DeckHeightM+def.DeckDepthM/2, 0)
	rotor.AddChild(deckSaucer(def, paint))
	root.AddChild(rotor)

	spire, beacon := needleSpire(def, paint)
	root.AddChild(spire)

	res := &NeedleResult{
		Root:      root,
		DeckRotor: rotor,
		Beacon:    beacon,
		CarFloorY: 1.2,
		CarTopY:   def.DeckHeightM - 2.4,
	}

	carMat := scene.Glass("needle-car-glass", carGlassTint, 0.55)
	carRadius := def.CoreRadiusM + 1.3
	for i := 0; i < 3; i++ {
		angle := (30 + 120*float64(i)) * math.Pi / 180
		car := scene.Box(fmt.Sprintf("needle-elevator-%d", i), 1.8, 2.4, 1.8, carMat)
		car.SetPosition(carRadius*math.Cos(angle), res.CarFloorY, carRadius*math.Sin(angle))
		root.AddChild(car)
		res.ElevatorCars = append(res.ElevatorCars, car)
	}

	return res
}

// legProfile returns the leg radius at height fraction t in [0,1], ground
// to deck underside: a smooth pinch to the waist, then a flare back out to
// catch the saucer rim.
func legProfile(def spec.NeedleDef, t float64) float64 {
	const waistT = 0.62
	if t < waistT {
		u := t / waistT
		u = u * u * (3 - 2*u)
		return geo.Lerp(def.BaseRadiusM, def.WaistRadiusM, u)
	}
	u := (t - waistT) / (1 - waistT)
	return geo.Lerp(def.WaistRadiusM, 0.8*def.DeckRadiusM, u*u)
}

func needleLegs(def spec.NeedleDef, mat *scene.Material) *scene.Node {
	cloud := voxel.NewCloud(def.CellM)
	step := def.CellM * 0.85

	for y := 0.0; y <= def.DeckHeightM; y += step {
		t := y / def.DeckHeightM
		r := legProfile(def, t)
		shade := 0.92 + 0.08*math.Sin(t*11)
		col := needleWhite.Scale(shade)

		cloud.AddTriad(geo.V(r, y, 0), col)
		cloud.AddTriad(geo.V(r-def.CellM*0.9, y, 0), col)
		if t < 0.3 {
			// Wider footing near the ground.
			cloud.AddTriad(geo.V(r, y, def.CellM), col)
			cloud.AddTriad(geo.V(r, y, -def.CellM), col)
		}
	}

	// Crossbrace rings tie the legs together below and at the waist.
	cloud.AddRing(geo.V(0, 0.31*def.DeckHeightM, 0), legProfile(def, 0.31), needleRib)
	cloud.AddRing(geo.V(0, 0.62*def.DeckHeightM, 0), legProfile(def, 0.62)+0.4, needleGold)

	return cloud.Pack("needle-legs", mat)
}

func needleCore(def spec.NeedleDef, mat *scene.Material) *scene.Node {
	cloud := voxel.NewCloud(def.CellM)
	step := def.CellM * 0.9
	railRadius := def.CoreRadiusM + 1.3

	for y := 0.0; y <= def.DeckHeightM; y += step {
		cloud.AddHex(geo.V(def.CoreRadiusM, y, 0), needleWhite)
		// Elevator guide rails sit between the hex columns, one per car.
		cloud.AddTriad(geo.RotateY(geo.V(railRadius+0.9, y, 0), 30), spireColor)
	}
	for y := 8.0; y < def.DeckHeightM; y += 8 {
		cloud.AddRing(geo.V(0, y, 0), def.CoreRadiusM, needleRib)
	}

	return cloud.Pack("needle-core", mat)
}

// deckProfile returns the saucer radius fraction at normalized height ny
// in [-1,1]: a dish widening to the rim, a pinched glass band, then the
// roof cone.
func deckProfile(ny float64) float64 {
	switch {
	case ny < -0.2:
		u := (ny + 1) / 0.8
		return geo.Lerp(0.35, 1.0, math.Sqrt(u))
	case ny < 0.3:
		return 0.96
	default:
		u := (ny - 0.3) / 0.7
		return geo.Lerp(0.94, 0.25, u)
	}
}

func deckSample(nx, ny, nz float64) (scene.Color, bool) {
	r := math.Hypot(nx, nz)
	if r > deckProfile(ny) {
		return scene.Color{}, false
	}
	switch {
	case ny < -0.2:
		// Underside dish with radial ribs.
		a := math.Atan2(nz, nx)
		if math.Mod(a*24/(2*math.Pi)+24, 1) < 0.4 {
			return needleRib, true
		}
		return needleWhite, true
	case ny < 0.3:
		return deckGlass, true
	default:
		if r < 0.3 {
			return needleGold, true
		}
		return needleWhite, true
	}
}

func deckSaucer(def spec.NeedleDef, mat *scene.Material) *scene.Node {
	grid := voxel.Build(voxel.Options{
		Size:   mgl64.Vec3{2 * def.DeckRadiusM, def.DeckDepthM, 2 * def.DeckRadiusM},
		Cell:   def.CellM,
		Sample: deckSample,
	})
	return voxel.Pack("needle-deck", grid.Shell(), mat)
}

func needleSpire(def spec.NeedleDef, mat *scene.Material) (*scene.Node, *scene.Node) {
	group := scene.NewGroup("needle-spire")

	deckTop := def.DeckTopM()
	cloud := voxel.NewCloud(def.CellM * 0.7)
	for y := deckTop; y <= def.HeightM; y += def.CellM * 0.6 {
		cloud.Add(geo.V(0, y, 0), spireColor)
		if y < deckTop+2.5 {
			cloud.AddHex(geo.V(1.1, y, 0), needleWhite)
		}
	}
	group.AddChild(cloud.Pack("needle-mast", mat))

	beacon := scene.PointLight("needle-beacon", beaconColor, 1.6, 40)
	beacon.SetPosition(0, def.HeightM+0.4, 0)
	group.AddChild(beacon)

	return group, beacon
}
