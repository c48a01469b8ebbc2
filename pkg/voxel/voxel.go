// Package voxel turns implicit shape predicates into boxy instanced
// geometry. A builder describes a solid as a membership function over a
// normalized unit box, the engine sweeps a cell grid through it, strips
// the interior, and packs the surviving shell into one instanced mesh.
package voxel

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
)

// Sample is a shape membership predicate. Coordinates are normalized to
// [-1, 1] on each axis of the bounding box and evaluated at cell centers.
// It returns the cell color and whether the cell is inside the solid.
type Sample func(nx, ny, nz float64) (scene.Color, bool)

// Options configures one sweep.
type Options struct {
	// Size is the local bounding box extents in meters, centered on the
	// local origin.
	Size mgl64.Vec3

	// Cell is the voxel edge length in meters.
	Cell float64

	// Sample decides cell membership.
	Sample Sample

	// Placement maps local coordinates to world coordinates. It is only
	// consulted for the exclusion test; packed instances stay local so a
	// parent node can carry the same transform and animate it.
	Placement mgl64.Mat4

	// Exclude carves cells whose world-space center it accepts. Nil means
	// nothing is carved.
	Exclude func(world mgl64.Vec3) bool
}

// Grid is the survivor set of one sweep, keyed by cell index.
type Grid struct {
	cell  float64
	dims  [3]int
	cells map[[3]int]scene.Color
}

// Count returns the number of surviving cells.
func (g *Grid) Count() int {
	return len(g.cells)
}

// Dims returns the cell counts per axis.
func (g *Grid) Dims() (x, y, z int) {
	return g.dims[0], g.dims[1], g.dims[2]
}

// CellSize returns the voxel edge length in meters.
func (g *Grid) CellSize() float64 {
	return g.cell
}

// At reports the color of cell (i, j, k) and whether it survived.
func (g *Grid) At(i, j, k int) (scene.Color, bool) {
	c, ok := g.cells[[3]int{i, j, k}]
	return c, ok
}

// CenterOf returns the local-space center of cell (i, j, k).
func (g *Grid) CenterOf(i, j, k int) mgl64.Vec3 {
	half := mgl64.Vec3{
		float64(g.dims[0]) * g.cell / 2,
		float64(g.dims[1]) * g.cell / 2,
		float64(g.dims[2]) * g.cell / 2,
	}
	return mgl64.Vec3{
		(float64(i)+0.5)*g.cell - half[0],
		(float64(j)+0.5)*g.cell - half[1],
		(float64(k)+0.5)*g.cell - half[2],
	}
}

// ForEach visits surviving cells in fixed index order (i, then j, then k),
// so instance numbering is stable across runs and worker counts.
func (g *Grid) ForEach(visit func(i, j, k int, c scene.Color)) {
	for i := 0; i < g.dims[0]; i++ {
		for j := 0; j < g.dims[1]; j++ {
			for k := 0; k < g.dims[2]; k++ {
				if c, ok := g.cells[[3]int{i, j, k}]; ok {
					visit(i, j, k, c)
				}
			}
		}
	}
}

// Shell returns a new grid holding only surface cells, those with at least
// one missing 6-neighbor. Cells on the grid boundary always survive.
func (g *Grid) Shell() *Grid {
	out := &Grid{
		cell:  g.cell,
		dims:  g.dims,
		cells: make(map[[3]int]scene.Color),
	}

	neighbors := [6][3]int{
		{-1, 0, 0}, {1, 0, 0},
		{0, -1, 0}, {0, 1, 0},
		{0, 0, -1}, {0, 0, 1},
	}

	for key, c := range g.cells {
		exposed := false
		for _, d := range neighbors {
			n := [3]int{key[0] + d[0], key[1] + d[1], key[2] + d[2]}
			if _, ok := g.cells[n]; !ok {
				exposed = true
				break
			}
		}
		if exposed {
			out.cells[key] = c
		}
	}
	return out
}
