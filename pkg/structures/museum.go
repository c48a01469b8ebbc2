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

// Museum builds the music museum: a cluster of swoopy metallic lobes the
// monorail passes straight through. Each lobe is a voxel shell sculpted by
// a per-kind distance field, and every cell is tested against the track
// corridor so the guideway keeps its clearance through the building.
func Museum(def spec.MuseumDef, track *geo.Curve) *scene.Node {
	root := scene.NewGroup("museum")
	root.SetPosition(def.Position[0], def.Position[1], def.Position[2])
	rotation := def.RotationDeg * math.Pi / 180
	root.SetRotationY(rotation)

	exclude := corridorExcluder(track, def.ClearanceM, 256)
	rootMat := mgl64.Translate3D(def.Position[0], def.Position[1], def.Position[2]).
		Mul4(mgl64.HomogRotate3DY(rotation))

	for i, lobe := range def.Lobes {
		sample := lobeSample(lobe)
		if sample == nil {
			continue
		}
		// Offsets anchor a lobe at ground level; the voxel box is centered.
		lift := lobe.Offset[1] + lobe.Size[1]/2
		placement := rootMat.Mul4(mgl64.Translate3D(lobe.Offset[0], lift, lobe.Offset[2]))
		grid := voxel.Build(voxel.Options{
			Size:      mgl64.Vec3{lobe.Size[0], lobe.Size[1], lobe.Size[2]},
			Cell:      def.CellM,
			Sample:    sample,
			Placement: placement,
			Exclude:   exclude,
		})
		node := voxel.Pack(
			fmt.Sprintf("museum-lobe-%s", lobe.Kind),
			grid.Shell(),
			lobeMaterial(i, lobe),
		)
		if node == nil {
			continue
		}
		node.SetPosition(lobe.Offset[0], lift, lobe.Offset[2])
		root.AddChild(node)
	}

	plinth := scene.Box("museum-plinth", 34, 0.6, 26, scene.NewMaterial("museum-plinth", scene.Hex(0x55565c)))
	plinth.SetPosition(0, 0.3, 0)
	plinth.Mesh.CastShadow = false
	root.AddChild(plinth)

	return root
}

func lobeMaterial(i int, lobe spec.LobeDef) *scene.Material {
	m := scene.NewMaterial(fmt.Sprintf("museum-skin-%d", i), scene.RGB(1, 1, 1))
	m.Metalness = 0.85
	m.Roughness = 0.35
	return m
}

// lobeSample picks the distance field for a lobe kind. Tint ripples are
// functions of position only; sample predicates run on parallel workers
// and must not share a rand source.
func lobeSample(lobe spec.LobeDef) voxel.Sample {
	base := scene.RGB(lobe.Color[0], lobe.Color[1], lobe.Color[2])
	switch lobe.Kind {
	case "wavy_cylinder":
		return func(nx, ny, nz float64) (scene.Color, bool) {
			limit := 0.72 + 0.16*math.Sin(3*math.Atan2(nz, nx)+2.2*ny)
			if math.Hypot(nx, nz) > limit {
				return scene.Color{}, false
			}
			return sheetShade(base, ny, nx), true
		}
	case "drooping_sphere":
		return func(nx, ny, nz float64) (scene.Color, bool) {
			// The skin sags outward toward the rim.
			sag := ny + 0.35*(nx*nx+nz*nz)
			if nx*nx+sag*sag+nz*nz > 1 {
				return scene.Color{}, false
			}
			return sheetShade(base, ny, nz), true
		}
	case "sheared_cone":
		return func(nx, ny, nz float64) (scene.Color, bool) {
			lean := nx - 0.4*(ny+1)/2
			limit := 1 - 0.55*(ny+1)/2
			if math.Hypot(lean, nz) > limit {
				return scene.Color{}, false
			}
			return sheetShade(base, ny, nx), true
		}
	}
	return nil
}

// sheetShade bands the lobe color like overlapping metal shingles.
func sheetShade(base scene.Color, ny, u float64) scene.Color {
	shade := 0.82 + 0.18*math.Sin(ny*9+u*4)
	return base.Scale(shade)
}
