package voxel

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/geo"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
)

// Cloud accumulates voxels at explicit positions, for lattice structures
// that are authored point by point (legs, ribs, rings) rather than swept
// from a membership predicate. Points snap to the cell grid, so symmetric
// arms that land on the same cell collapse to one instance.
type Cloud struct {
	cell  float64
	cells map[[3]int]scene.Color
}

// NewCloud creates an empty cloud with the given cell edge length.
func NewCloud(cell float64) *Cloud {
	return &Cloud{
		cell:  cell,
		cells: make(map[[3]int]scene.Color),
	}
}

// Add snaps a point to the grid and records its color. A later write to the
// same cell wins.
func (c *Cloud) Add(p mgl64.Vec3, col scene.Color) {
	c.cells[c.key(p)] = col
}

// AddTriad records the point under threefold symmetry about the Y axis.
func (c *Cloud) AddTriad(p mgl64.Vec3, col scene.Color) {
	for _, q := range geo.Triad(p) {
		c.Add(q, col)
	}
}

// AddHex records the point under sixfold symmetry about the Y axis.
func (c *Cloud) AddHex(p mgl64.Vec3, col scene.Color) {
	for _, q := range geo.Hex(p) {
		c.Add(q, col)
	}
}

// AddRing records a full circle of points at the given center, radius, and
// height, stepped finely enough that adjacent cells connect.
func (c *Cloud) AddRing(center mgl64.Vec3, radius float64, col scene.Color) {
	if radius <= 0 {
		c.Add(center, col)
		return
	}
	steps := int(2 * math.Pi * radius / (c.cell * 0.7))
	if steps < 6 {
		steps = 6
	}
	for i := 0; i < steps; i++ {
		angle := float64(i) / float64(steps) * 360
		c.Add(center.Add(geo.RotateY(mgl64.Vec3{radius, 0, 0}, angle)), col)
	}
}

// Count returns the number of occupied cells.
func (c *Cloud) Count() int {
	return len(c.cells)
}

// Pack converts the cloud into a scene node carrying one instanced cube
// mesh. Instances sit at cell centers in the cloud's own coordinate space.
// Returns nil when the cloud is empty.
func (c *Cloud) Pack(name string, mat *scene.Material) *scene.Node {
	if len(c.cells) == 0 {
		return nil
	}

	keys := make([][3]int, 0, len(c.cells))
	for k := range c.cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a][0] != keys[b][0] {
			return keys[a][0] < keys[b][0]
		}
		if keys[a][1] != keys[b][1] {
			return keys[a][1] < keys[b][1]
		}
		return keys[a][2] < keys[b][2]
	})

	template := scene.Mesh{
		Shape:      scene.ShapeBox,
		Size:       mgl64.Vec3{c.cell, c.cell, c.cell},
		CastShadow: true,
	}
	im := scene.NewInstancedMesh(template, mat, len(keys))
	for i, k := range keys {
		p := c.centerOf(k)
		im.SetMatrixAt(i, mgl64.Translate3D(p[0], p[1], p[2]))
		im.SetColorAt(i, c.cells[k])
	}

	node := scene.NewGroup(name)
	node.Instanced = im
	return node
}

func (c *Cloud) key(p mgl64.Vec3) [3]int {
	return [3]int{
		int(math.Floor(p[0] / c.cell)),
		int(math.Floor(p[1] / c.cell)),
		int(math.Floor(p[2] / c.cell)),
	}
}

func (c *Cloud) centerOf(k [3]int) mgl64.Vec3 {
	return mgl64.Vec3{
		(float64(k[0]) + 0.5) * c.cell,
		(float64(k[1]) + 0.5) * c.cell,
		(float64(k[2]) + 0.5) * c.cell,
	}
}
