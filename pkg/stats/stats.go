// Package stats summarizes a built scene: how many nodes, instances, and
// lights it carries and where they live. The CLI prints it, the server
// serves it, and the budget check turns the totals into a validation
// report.
package stats

import (
	"fmt"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/validation"
)

// Render budgets. The renderer copes with one heavy instanced draw per
// subsystem; past these counts frame time starts to slide on modest GPUs.
const (
	instanceErrorBudget = 250000
	instanceWarnBudget  = 120000
	lightWarnBudget     = 40
	nodeWarnBudget      = 6000
)

// Stats is the scene census.
type Stats struct {
	Nodes      int            `json:"nodes"`
	Meshes     int            `json:"meshes"`
	Instances  int            `json:"instances"`
	Lights     int            `json:"lights"`
	Materials  int            `json:"materials"`
	Subsystems map[string]int `json:"subsystems"`
}

// Collect walks the tree and counts. Subsystem instance counts are grouped
// by the root's direct children, which is how the build lays things out.
func Collect(root *scene.Node) Stats {
	s := Stats{Subsystems: map[string]int{}}
	if root == nil {
		return s
	}

	materials := map[*scene.Material]struct{}{}
	root.Walk(func(n *scene.Node) {
		s.Nodes++
		if n.Mesh != nil {
			s.Meshes++
			if n.Mesh.Material != nil {
				materials[n.Mesh.Material] = struct{}{}
			}
		}
		if n.Instanced != nil {
			s.Instances += n.Instanced.Count
			if n.Instanced.Material != nil {
				materials[n.Instanced.Material] = struct{}{}
			}
		}
		if n.Light != nil {
			s.Lights++
		}
	})
	s.Materials = len(materials)

	for _, child := range root.Children() {
		total := 0
		child.Walk(func(n *scene.Node) {
			if n.Instanced != nil {
				total += n.Instanced.Count
			}
		})
		s.Subsystems[child.Name] = total
	}
	return s
}

// ValidateBudget appends render-budget findings to the report.
func ValidateBudget(s Stats, report *validation.Report) {
	switch {
	case s.Instances > instanceErrorBudget:
		report.AddError(validation.Result{
			Level:       validation.LevelBudget,
			Message:     fmt.Sprintf("scene has %d instances, over the %d hard budget", s.Instances, instanceErrorBudget),
			SpecPath:    "scene.instances",
			ActualValue: s.Instances,
			Expected:    fmt.Sprintf("<= %d", instanceErrorBudget),
			Suggestions: []string{"raise cell sizes", "shrink the ground or skyline"},
		})
	case s.Instances > instanceWarnBudget:
		report.AddWarning(validation.Result{
			Level:       validation.LevelBudget,
			Message:     fmt.Sprintf("scene has %d instances, over the %d comfort budget", s.Instances, instanceWarnBudget),
			SpecPath:    "scene.instances",
			ActualValue: s.Instances,
			Expected:    fmt.Sprintf("<= %d", instanceWarnBudget),
		})
	}

	if s.Lights > lightWarnBudget {
		report.AddWarning(validation.Result{
			Level:       validation.LevelBudget,
			Message:     fmt.Sprintf("%d lights in the scene", s.Lights),
			SpecPath:    "scene.lights",
			ActualValue: s.Lights,
			Expected:    fmt.Sprintf("<= %d", lightWarnBudget),
		})
	}
	if s.Nodes > nodeWarnBudget {
		report.AddWarning(validation.Result{
			Level:       validation.LevelBudget,
			Message:     fmt.Sprintf("%d nodes in the tree", s.Nodes),
			SpecPath:    "scene.nodes",
			ActualValue: s.Nodes,
			Expected:    fmt.Sprintf("<= %d", nodeWarnBudget),
		})
	}

	report.AddInfo(validation.Result{
		Level:   validation.LevelBudget,
		Message: fmt.Sprintf("%d nodes, %d instances, %d lights, %d materials", s.Nodes, s.Instances, s.Lights, s.Materials),
	})
}
