package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Node is a transform in the scene tree. A node either groups children or
// carries at most one payload (mesh, instanced mesh, or light). Position,
// Rotation and Scale are local to the parent; world transforms are computed
// on demand by walking up the tree. Each node is owned by exactly one
// parent, and a moving agent owns its subtree exclusively.
type Node struct {
	ID       int
	Name     string
	Tag      string // marker consumed by external toggles (e.g. "windows_lit")
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3

	Mesh      *Mesh
	Instanced *InstancedMesh
	Light     *Light

	parent   *Node
	children []*Node
}

// NewGroup creates an empty transform node with identity pose.
func NewGroup(name string) *Node {
	return &Node{
		Name:     name,
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// AddChild attaches child under n, detaching it from any previous parent.
// Returns the child for chaining.
func (n *Node) AddChild(child *Node) *Node {
	if child == nil || child == n {
		return child
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// RemoveChild detaches child from n. A node not under n is left untouched.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's direct children.
func (n *Node) Children() []*Node {
	return n.children
}

// SetPosition sets the local translation and returns n for chaining.
func (n *Node) SetPosition(x, y, z float64) *Node {
	n.Position = mgl64.Vec3{x, y, z}
	return n
}

// SetRotationY sets the local rotation to a yaw around the world up axis.
func (n *Node) SetRotationY(radians float64) *Node {
	n.Rotation = mgl64.QuatRotate(radians, mgl64.Vec3{0, 1, 0})
	return n
}

// SetTag marks the node for an external toggle and returns n for chaining.
func (n *Node) SetTag(tag string) *Node {
	n.Tag = tag
	return n
}

// LocalMatrix returns the node's local transform (translate * rotate * scale).
func (n *Node) LocalMatrix() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	r := n.Rotation.Mat4()
	s := mgl64.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2])
	return t.Mul4(r).Mul4(s)
}

// WorldMatrix returns the node's world transform by walking up the tree.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return n.WorldMatrix().Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
}

// WorldRotation returns the accumulated rotation from the root down to n.
// Scales in the diorama are uniform, so quaternion composition is exact.
func (n *Node) WorldRotation() mgl64.Quat {
	q := n.Rotation
	for p := n.parent; p != nil; p = p.parent {
		q = p.Rotation.Mul(q)
	}
	return q
}

// TransformPoint maps a point from the node's local space to world space.
func (n *Node) TransformPoint(local mgl64.Vec3) mgl64.Vec3 {
	return n.WorldMatrix().Mul4x1(local.Vec4(1)).Vec3()
}

// TransformDirection maps a direction from local to world space, ignoring
// translation.
func (n *Node) TransformDirection(local mgl64.Vec3) mgl64.Vec3 {
	return n.WorldRotation().Rotate(local)
}

// Walk visits n and every descendant in depth-first preorder.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.children {
		c.Walk(visit)
	}
}

// Index assigns sequential IDs to root and all descendants in preorder and
// returns the flattened node list. Export and the frame stream rely on the
// same traversal order, so IDs are stable for a built scene.
func Index(root *Node) []*Node {
	var flat []*Node
	root.Walk(func(n *Node) {
		n.ID = len(flat)
		flat = append(flat, n)
	})
	return flat
}
