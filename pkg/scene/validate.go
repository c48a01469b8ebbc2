package scene

import (
	"fmt"
	"math"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/validation"
)

// ValidateTree performs structural validation on a built scene tree. It
// checks transform sanity, payload exclusivity, and instanced-mesh
// integrity; a bad value here would otherwise surface as a renderer glitch
// with no trail back to the generator that produced it.
func ValidateTree(root *Node) *validation.Report {
	r := validation.NewReport()

	if root == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelGeometry,
			Message: "scene root is nil",
		})
		return r
	}

	nodes := 0
	root.Walk(func(n *Node) {
		nodes++
		validateTransform(n, r)
		validatePayload(n, r)
	})

	r.AddInfo(validation.Result{
		Level:   validation.LevelGeometry,
		Message: fmt.Sprintf("validated %d scene nodes", nodes),
	})
	return r
}

func validateTransform(n *Node, r *validation.Report) {
	for _, v := range n.Position {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			r.AddError(validation.Result{
				Level:       validation.LevelGeometry,
				Message:     fmt.Sprintf("node %q has non-finite position", n.Name),
				SpecPath:    n.Name,
				ActualValue: fmt.Sprintf("%v", n.Position),
			})
			return
		}
	}
	if n.Scale[0] <= 0 || n.Scale[1] <= 0 || n.Scale[2] <= 0 {
		r.AddWarning(validation.Result{
			Level:       validation.LevelGeometry,
			Message:     fmt.Sprintf("node %q has zero or negative scale", n.Name),
			SpecPath:    n.Name,
			ActualValue: fmt.Sprintf("%v", n.Scale),
			Expected:    "all scale components > 0",
		})
	}
	qlen := math.Sqrt(n.Rotation.W*n.Rotation.W + n.Rotation.V.Dot(n.Rotation.V))
	if math.Abs(qlen-1) > 1e-3 {
		r.AddWarning(validation.Result{
			Level:    validation.LevelGeometry,
			Message:  fmt.Sprintf("node %q rotation quaternion is not normalized (len %.4f)", n.Name, qlen),
			SpecPath: n.Name,
		})
	}
}

func validatePayload(n *Node, r *validation.Report) {
	payloads := 0
	if n.Mesh != nil {
		payloads++
	}
	if n.Instanced != nil {
		payloads++
	}
	if n.Light != nil {
		payloads++
	}
	if payloads > 1 {
		r.AddError(validation.Result{
			Level:    validation.LevelGeometry,
			Message:  fmt.Sprintf("node %q carries %d payloads; a node holds at most one", n.Name, payloads),
			SpecPath: n.Name,
		})
	}

	if n.Mesh != nil {
		if n.Mesh.Size[0] < 0 || n.Mesh.Size[1] < 0 || n.Mesh.Size[2] < 0 {
			r.AddWarning(validation.Result{
				Level:       validation.LevelGeometry,
				Message:     fmt.Sprintf("mesh node %q has a negative dimension", n.Name),
				SpecPath:    n.Name,
				ActualValue: fmt.Sprintf("%v", n.Mesh.Size),
			})
		}
		if n.Mesh.Material == nil {
			r.AddWarning(validation.Result{
				Level:    validation.LevelGeometry,
				Message:  fmt.Sprintf("mesh node %q has no material", n.Name),
				SpecPath: n.Name,
			})
		}
	}

	if n.Instanced != nil {
		if n.Instanced.Count <= 0 {
			// Zero-instance resources must never be created; empty
			// generation results skip mesh creation entirely.
			r.AddError(validation.Result{
				Level:       validation.LevelGeometry,
				Message:     fmt.Sprintf("instanced node %q has count %d", n.Name, n.Instanced.Count),
				SpecPath:    n.Name,
				ActualValue: n.Instanced.Count,
				Expected:    "count > 0",
			})
		}
	}

	if n.Light != nil && n.Light.Intensity < 0 {
		r.AddWarning(validation.Result{
			Level:       validation.LevelGeometry,
			Message:     fmt.Sprintf("light node %q has negative intensity", n.Name),
			SpecPath:    n.Name,
			ActualValue: n.Light.Intensity,
		})
	}
}
