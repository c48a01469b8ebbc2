package stats_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/stats"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/validation"
)

func smallScene() *scene.Node {
	root := scene.NewGroup("root")

	shared := scene.NewMaterial("shared", scene.RGB(1, 1, 1))
	ground := scene.NewGroup("ground")
	ground.AddChild(scene.Box("slab", 10, 1, 10, shared))
	root.AddChild(ground)

	towers := scene.NewGroup("towers")
	im := scene.NewInstancedMesh(scene.Mesh{Shape: scene.ShapeBox, Size: mgl64.Vec3{1, 1, 1}}, shared, 5)
	holder := scene.NewGroup("cells")
	holder.Instanced = im
	towers.AddChild(holder)
	towers.AddChild(scene.PointLight("lamp", scene.RGB(1, 1, 1), 1, 10))
	root.AddChild(towers)

	return root
}

func TestCollectCounts(t *testing.T) {
	s := stats.Collect(smallScene())

	assert.Equal(t, 6, s.Nodes)
	assert.Equal(t, 1, s.Meshes)
	assert.Equal(t, 5, s.Instances)
	assert.Equal(t, 1, s.Lights)
	assert.Equal(t, 1, s.Materials, "shared material counted once")

	require.Contains(t, s.Subsystems, "ground")
	require.Contains(t, s.Subsystems, "towers")
	assert.Equal(t, 0, s.Subsystems["ground"])
	assert.Equal(t, 5, s.Subsystems["towers"])
}

func TestCollectNilRoot(t *testing.T) {
	s := stats.Collect(nil)
	assert.Zero(t, s.Nodes)
	assert.Empty(t, s.Subsystems)
}

func TestBudgetWithinLimits(t *testing.T) {
	report := validation.NewReport()
	stats.ValidateBudget(stats.Collect(smallScene()), report)

	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
	assert.NotEmpty(t, report.Info, "totals line should always be reported")
}

func TestBudgetFlagsInstanceOverrun(t *testing.T) {
	report := validation.NewReport()
	stats.ValidateBudget(stats.Stats{Instances: 300000}, report)

	require.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, validation.LevelBudget, report.Errors[0].Level)
	assert.Equal(t, "scene.instances", report.Errors[0].SpecPath)
}

func TestBudgetWarnsBeforeErroring(t *testing.T) {
	report := validation.NewReport()
	stats.ValidateBudget(stats.Stats{Instances: 150000, Lights: 50}, report)

	assert.True(t, report.Valid, "warnings alone must not fail validation")
	assert.Len(t, report.Warnings, 2)
}
