package voxel_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/voxel"
)

var gray = scene.RGB(0.5, 0.5, 0.5)

func solid(nx, ny, nz float64) (scene.Color, bool) {
	return gray, true
}

func TestSolidCubeCount(t *testing.T) {
	g := voxel.Build(voxel.Options{
		Size:   mgl64.Vec3{6, 6, 6},
		Cell:   1,
		Sample: solid,
	})

	x, y, z := g.Dims()
	require.Equal(t, [3]int{6, 6, 6}, [3]int{x, y, z})
	assert.Equal(t, 216, g.Count())
}

func TestShellStripsInterior(t *testing.T) {
	g := voxel.Build(voxel.Options{
		Size:   mgl64.Vec3{6, 6, 6},
		Cell:   1,
		Sample: solid,
	})
	shell := g.Shell()

	// A solid N cube keeps N^3 - (N-2)^3 surface cells.
	assert.Equal(t, 216-64, shell.Count())

	// Interior cell gone, corner cell kept.
	_, ok := shell.At(3, 3, 3)
	assert.False(t, ok, "interior cell survived shell extraction")
	_, ok = shell.At(0, 0, 0)
	assert.True(t, ok, "corner cell missing from shell")
}

func TestShellOfThinSlabKeepsEverything(t *testing.T) {
	g := voxel.Build(voxel.Options{
		Size:   mgl64.Vec3{10, 2, 10},
		Cell:   1,
		Sample: solid,
	})
	shell := g.Shell()

	// Two layers deep means every cell touches open air.
	assert.Equal(t, g.Count(), shell.Count())
}

func TestSphereMembership(t *testing.T) {
	inSphere := func(nx, ny, nz float64) (scene.Color, bool) {
		return gray, nx*nx+ny*ny+nz*nz <= 1
	}
	g := voxel.Build(voxel.Options{
		Size:   mgl64.Vec3{12, 12, 12},
		Cell:   1,
		Sample: inSphere,
	})

	require.Greater(t, g.Count(), 0)
	// The ball fills roughly pi/6 of its bounding cube.
	assert.InDelta(t, float64(12*12*12)*3.14159/6, float64(g.Count()), 120)

	// No corner cells: the corners of the box are outside the ball.
	_, ok := g.At(0, 0, 0)
	assert.False(t, ok)
}

func TestSingleCellSamplesBoxCenter(t *testing.T) {
	var sampled [][3]float64
	g := voxel.Build(voxel.Options{
		Size: mgl64.Vec3{1, 1, 1},
		Cell: 1,
		Sample: func(nx, ny, nz float64) (scene.Color, bool) {
			sampled = append(sampled, [3]float64{nx, ny, nz})
			return gray, true
		},
	})

	require.Equal(t, 1, g.Count())
	require.Len(t, sampled, 1)
	assert.Equal(t, [3]float64{0, 0, 0}, sampled[0])
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, g.CenterOf(0, 0, 0))
}

func TestExclusionThroughPlacement(t *testing.T) {
	placement := mgl64.Translate3D(100, 0, 0)

	g := voxel.Build(voxel.Options{
		Size:      mgl64.Vec3{8, 8, 8},
		Cell:      1,
		Sample:    solid,
		Placement: placement,
		Exclude: func(world mgl64.Vec3) bool {
			return world.X() > 100
		},
	})

	// The carve plane passes through the box center, so half the cells go.
	assert.Equal(t, 256, g.Count())

	// Shift the placement so the whole box sits below the plane.
	g = voxel.Build(voxel.Options{
		Size:      mgl64.Vec3{8, 8, 8},
		Cell:      1,
		Sample:    solid,
		Placement: mgl64.Translate3D(50, 0, 0),
		Exclude: func(world mgl64.Vec3) bool {
			return world.X() > 100
		},
	})
	assert.Equal(t, 512, g.Count())
}

func TestBuildIsDeterministic(t *testing.T) {
	opts := voxel.Options{
		Size: mgl64.Vec3{10, 30, 10},
		Cell: 0.5,
		Sample: func(nx, ny, nz float64) (scene.Color, bool) {
			r := nx*nx + nz*nz
			return scene.RGB(0.5+nx/2, 0.5, 0.5+nz/2), r <= 1-0.5*(ny+1)/2
		},
	}

	a := voxel.Pack("a", voxel.Build(opts).Shell(), nil)
	b := voxel.Pack("b", voxel.Build(opts).Shell(), nil)
	require.NotNil(t, a)
	require.NotNil(t, b)

	require.Equal(t, a.Instanced.Count, b.Instanced.Count)
	for i := 0; i < a.Instanced.Count; i++ {
		assert.Equal(t, a.Instanced.MatrixAt(i), b.Instanced.MatrixAt(i), "instance %d position differs", i)
		assert.Equal(t, a.Instanced.ColorAt(i), b.Instanced.ColorAt(i), "instance %d color differs", i)
	}
}

func TestPackPositionsAreLocal(t *testing.T) {
	g := voxel.Build(voxel.Options{
		Size:      mgl64.Vec3{2, 2, 2},
		Cell:      1,
		Sample:    solid,
		Placement: mgl64.Translate3D(500, 0, 0), // must not leak into instances
	})
	mat := scene.NewMaterial("test", gray)
	node := voxel.Pack("cube", g, mat)
	require.NotNil(t, node)
	require.NotNil(t, node.Instanced)
	require.Equal(t, 8, node.Instanced.Count)

	first := node.Instanced.MatrixAt(0).Col(3)
	assert.Equal(t, mgl64.Vec4{-0.5, -0.5, -0.5, 1}, first)

	// ForEach order is k fastest, so instance 1 steps in z.
	second := node.Instanced.MatrixAt(1).Col(3)
	assert.Equal(t, mgl64.Vec4{-0.5, -0.5, 0.5, 1}, second)
}

func TestEmptyGridPacksNil(t *testing.T) {
	g := voxel.Build(voxel.Options{
		Size: mgl64.Vec3{4, 4, 4},
		Cell: 1,
		Sample: func(nx, ny, nz float64) (scene.Color, bool) {
			return gray, false
		},
	})
	assert.Equal(t, 0, g.Count())
	assert.Nil(t, voxel.Pack("empty", g, nil))
	assert.Nil(t, voxel.BuildShell("empty", voxel.Options{
		Size: mgl64.Vec3{4, 4, 4},
		Cell: 1,
	}, nil))
}

func TestCloudSnapsAndDedups(t *testing.T) {
	c := voxel.NewCloud(1)
	c.Add(mgl64.Vec3{0.2, 0.2, 0.2}, gray)
	c.Add(mgl64.Vec3{0.8, 0.8, 0.8}, gray) // same cell
	c.Add(mgl64.Vec3{1.2, 0, 0}, gray)     // next cell over

	assert.Equal(t, 2, c.Count())

	node := c.Pack("lattice", nil)
	require.NotNil(t, node)
	first := node.Instanced.MatrixAt(0).Col(3)
	assert.Equal(t, mgl64.Vec4{0.5, 0.5, 0.5, 1}, first)
}

func TestCloudTriadSymmetry(t *testing.T) {
	c := voxel.NewCloud(0.5)
	c.AddTriad(mgl64.Vec3{10, 2, 0}, gray)
	assert.Equal(t, 3, c.Count())

	c2 := voxel.NewCloud(0.5)
	c2.AddHex(mgl64.Vec3{10, 2, 0}, gray)
	assert.Equal(t, 6, c2.Count())
}

func TestCloudRingConnectivity(t *testing.T) {
	c := voxel.NewCloud(1)
	c.AddRing(mgl64.Vec3{0, 5, 0}, 8, gray)

	// A radius-8 ring of 1 m cells needs on the order of 2*pi*r cells.
	assert.Greater(t, c.Count(), 30)

	// Degenerate radius still lands one cell.
	c2 := voxel.NewCloud(1)
	c2.AddRing(mgl64.Vec3{0, 0, 0}, 0, gray)
	assert.Equal(t, 1, c2.Count())
}

func TestCloudPackEmpty(t *testing.T) {
	c := voxel.NewCloud(1)
	assert.Nil(t, c.Pack("nothing", nil))
}

func TestBuildShellPipeline(t *testing.T) {
	mat := scene.NewMaterial("hull", gray)
	node := voxel.BuildShell("hull", voxel.Options{
		Size:   mgl64.Vec3{6, 6, 6},
		Cell:   1,
		Sample: solid,
	}, mat)

	require.NotNil(t, node)
	require.NotNil(t, node.Instanced)
	assert.Equal(t, 152, node.Instanced.Count)
	assert.Equal(t, scene.ShapeBox, node.Instanced.Template.Shape)
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, node.Instanced.Template.Size)
}
