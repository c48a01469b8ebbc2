package structures

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/spec"
)

const (
	windowW       = 1.0
	windowH       = 1.4
	windowDepth   = 0.08
	windowPitch   = 1.7 // horizontal spacing between window centers
	facadeSetback = 1.4 // facade margin left blank at each corner
)

// Skyline builds the backdrop towers. Every window is an instance; the lit
// subset is drawn per window from the spec's lit chance and grouped under
// emissive nodes the night toggle switches on.
func Skyline(def spec.SkylineDef, rng *rand.Rand) *scene.Node {
	root := scene.NewGroup("skyline")
	mats := newPaletteMaterials()
	for i, tw := range def.Towers {
		root.AddChild(tower(fmt.Sprintf("tower-%d", i), tw, def, mats, rng))
	}
	return root
}

// paletteMaterials shares one material set per palette name across towers,
// so the exported document carries four window materials, not forty.
type paletteMaterials struct {
	wall, trim, window, lit map[string]*scene.Material
}

func newPaletteMaterials() *paletteMaterials {
	return &paletteMaterials{
		wall:   map[string]*scene.Material{},
		trim:   map[string]*scene.Material{},
		window: map[string]*scene.Material{},
		lit:    map[string]*scene.Material{},
	}
}

func (m *paletteMaterials) wallFor(name string) *scene.Material {
	if mat, ok := m.wall[name]; ok {
		return mat
	}
	mat := scene.NewMaterial("wall-"+name, paletteFor(name).wall)
	m.wall[name] = mat
	return mat
}

func (m *paletteMaterials) trimFor(name string) *scene.Material {
	if mat, ok := m.trim[name]; ok {
		return mat
	}
	mat := scene.NewMaterial("trim-"+name, paletteFor(name).trim)
	m.trim[name] = mat
	return mat
}

func (m *paletteMaterials) windowFor(name string) *scene.Material {
	if mat, ok := m.window[name]; ok {
		return mat
	}
	mat := scene.Glass("window-"+name, paletteFor(name).window, 0.92)
	m.window[name] = mat
	return mat
}

func (m *paletteMaterials) litFor(name string) *scene.Material {
	if mat, ok := m.lit[name]; ok {
		return mat
	}
	mat := scene.Emissive("window-lit-"+name, paletteFor(name).lit, 0)
	m.lit[name] = mat
	return mat
}

func tower(name string, tw spec.TowerDef, sky spec.SkylineDef, mats *paletteMaterials, rng *rand.Rand) *scene.Node {
	g := scene.NewGroup(name)
	g.SetPosition(tw.Position[0], tw.Position[1], tw.Position[2])

	body := scene.Box(name+"-body", tw.WidthM, tw.HeightM, tw.DepthM, mats.wallFor(tw.Palette))
	body.SetPosition(0, tw.HeightM/2, 0)
	g.AddChild(body)

	parapet := scene.Box(name+"-parapet", tw.WidthM+0.6, 0.9, tw.DepthM+0.6, mats.trimFor(tw.Palette))
	parapet.SetPosition(0, tw.HeightM+0.45, 0)
	g.AddChild(parapet)

	if rng.Float64() < 0.6 {
		ph := scene.Box(name+"-penthouse", tw.WidthM*0.38, 2.4, tw.DepthM*0.33, mats.trimFor(tw.Palette))
		ph.SetPosition(tw.WidthM*0.12, tw.HeightM+0.9+1.2, -tw.DepthM*0.1)
		g.AddChild(ph)
	}

	addTowerWindows(g, name, tw, sky, mats, rng)
	return g
}

// addTowerWindows lays window instances over all four facades, split into
// four instanced nodes: dark and lit, each per facade orientation (the two
// orientations need different template sizes).
func addTowerWindows(g *scene.Node, name string, tw spec.TowerDef, sky spec.SkylineDef, mats *paletteMaterials, rng *rand.Rand) {
	floors := int((tw.HeightM - 2.0) / sky.FloorM)
	if floors < 1 {
		return
	}
	colsX := int((tw.WidthM - facadeSetback) / windowPitch)
	colsZ := int((tw.DepthM - facadeSetback) / windowPitch)

	var darkZ, litZ, darkX, litX []mgl64.Vec3
	for f := 0; f < floors; f++ {
		y := (float64(f)+0.5)*sky.FloorM + 1.0
		for c := 0; c < colsX; c++ {
			x := (float64(c) + 0.5 - float64(colsX)/2) * windowPitch
			for _, side := range []float64{-1, 1} {
				p := mgl64.Vec3{x, y, side * (tw.DepthM/2 + windowDepth)}
				if rng.Float64() < sky.LitChance {
					litZ = append(litZ, p)
				} else {
					darkZ = append(darkZ, p)
				}
			}
		}
		for c := 0; c < colsZ; c++ {
			z := (float64(c) + 0.5 - float64(colsZ)/2) * windowPitch
			for _, side := range []float64{-1, 1} {
				p := mgl64.Vec3{side * (tw.WidthM/2 + windowDepth), y, z}
				if rng.Float64() < sky.LitChance {
					litX = append(litX, p)
				} else {
					darkX = append(darkX, p)
				}
			}
		}
	}

	zTemplate := scene.Mesh{Shape: scene.ShapeBox, Size: mgl64.Vec3{windowW, windowH, windowDepth}}
	xTemplate := scene.Mesh{Shape: scene.ShapeBox, Size: mgl64.Vec3{windowDepth, windowH, windowW}}

	appendWindows(g, name+"-windows-z", zTemplate, mats.windowFor(tw.Palette), darkZ, rng, "")
	appendWindows(g, name+"-windows-x", xTemplate, mats.windowFor(tw.Palette), darkX, rng, "")
	appendWindows(g, name+"-windows-z-lit", zTemplate, mats.litFor(tw.Palette), litZ, rng, TagNightGlow)
	appendWindows(g, name+"-windows-x-lit", xTemplate, mats.litFor(tw.Palette), litX, rng, TagNightGlow)
}

func appendWindows(g *scene.Node, name string, template scene.Mesh, mat *scene.Material, at []mgl64.Vec3, rng *rand.Rand, tag string) {
	if len(at) == 0 {
		return
	}
	im := scene.NewInstancedMesh(template, mat, len(at))
	for i, p := range at {
		im.SetMatrixAt(i, mgl64.Translate3D(p[0], p[1], p[2]))
		tone := 0.88 + 0.12*rng.Float64()
		im.SetColorAt(i, scene.RGB(tone, tone, tone))
	}
	node := scene.NewGroup(name)
	node.Instanced = im
	if tag != "" {
		node.SetTag(tag)
	}
	g.AddChild(node)
}
