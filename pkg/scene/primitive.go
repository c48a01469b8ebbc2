package scene

import "github.com/go-gl/mathgl/mgl64"

// Shape identifies a primitive mesh template.
type Shape string

const (
	ShapeBox      Shape = "box"
	ShapeCylinder Shape = "cylinder"
	ShapePlane    Shape = "plane"
)

// Mesh is a primitive mesh descriptor consumed by the external renderer.
// Size is interpreted per shape:
//
//	box:      width, height, depth
//	cylinder: radius top, height, radius bottom
//	plane:    width, 0, depth
type Mesh struct {
	Shape         Shape
	Size          mgl64.Vec3
	Material      *Material
	CastShadow    bool
	ReceiveShadow bool
}

// Box creates a node carrying a box mesh of the given dimensions.
// Primitives cast and receive shadows by default; callers flip the flags on
// the returned node's mesh where that is wasteful (tiny trim, glass).
func Box(name string, w, h, d float64, mat *Material) *Node {
	n := NewGroup(name)
	n.Mesh = &Mesh{
		Shape:         ShapeBox,
		Size:          mgl64.Vec3{w, h, d},
		Material:      mat,
		CastShadow:    true,
		ReceiveShadow: true,
	}
	return n
}

// Cylinder creates a node carrying a cylinder mesh. A cone is a cylinder
// with radiusTop 0.
func Cylinder(name string, radiusTop, radiusBottom, height float64, mat *Material) *Node {
	n := NewGroup(name)
	n.Mesh = &Mesh{
		Shape:         ShapeCylinder,
		Size:          mgl64.Vec3{radiusTop, height, radiusBottom},
		Material:      mat,
		CastShadow:    true,
		ReceiveShadow: true,
	}
	return n
}

// Plane creates a node carrying a flat horizontal plane mesh. Planes receive
// shadows but do not cast them.
func Plane(name string, w, d float64, mat *Material) *Node {
	n := NewGroup(name)
	n.Mesh = &Mesh{
		Shape:         ShapePlane,
		Size:          mgl64.Vec3{w, 0, d},
		Material:      mat,
		ReceiveShadow: true,
	}
	return n
}
