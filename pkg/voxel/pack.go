package voxel

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
)

// Pack converts a grid into a scene node carrying one instanced cube mesh,
// one instance per cell, positioned in local space. It returns nil when the
// grid is empty: an empty generation result must not leave a zero-instance
// mesh in the scene.
func Pack(name string, g *Grid, mat *scene.Material) *scene.Node {
	count := g.Count()
	if count == 0 {
		return nil
	}

	template := scene.Mesh{
		Shape:      scene.ShapeBox,
		Size:       mgl64.Vec3{g.cell, g.cell, g.cell},
		CastShadow: true,
	}
	im := scene.NewInstancedMesh(template, mat, count)

	idx := 0
	g.ForEach(func(i, j, k int, c scene.Color) {
		p := g.CenterOf(i, j, k)
		im.SetMatrixAt(idx, mgl64.Translate3D(p[0], p[1], p[2]))
		im.SetColorAt(idx, c)
		idx++
	})

	node := scene.NewGroup(name)
	node.Instanced = im
	return node
}

// BuildShell is the common build-strip-pack pipeline: sweep the box, keep
// the surface cells, return the packed node or nil if nothing survived.
func BuildShell(name string, opts Options, mat *scene.Material) *scene.Node {
	return Pack(name, Build(opts).Shell(), mat)
}
