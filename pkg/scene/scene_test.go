package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestHexColor(t *testing.T) {
	c := Hex(0xFF8000)
	if math.Abs(c.R-1.0) > 1e-9 {
		t.Errorf("R = %v, want 1.0", c.R)
	}
	if math.Abs(c.G-128.0/255.0) > 1e-9 {
		t.Errorf("G = %v, want %v", c.G, 128.0/255.0)
	}
	if c.B != 0 {
		t.Errorf("B = %v, want 0", c.B)
	}
}

func TestColorLerp(t *testing.T) {
	black := RGB(0, 0, 0)
	white := RGB(1, 1, 1)
	mid := black.Lerp(white, 0.5)
	if mid.R != 0.5 || mid.G != 0.5 || mid.B != 0.5 {
		t.Errorf("mid = %+v, want 0.5 gray", mid)
	}
}

func TestColorScaleClamps(t *testing.T) {
	c := RGB(0.8, 0.8, 0.8).Scale(2)
	if c.R != 1 || c.G != 1 || c.B != 1 {
		t.Errorf("scaled color %+v exceeds 1", c)
	}
}

func TestNodeHierarchyTransform(t *testing.T) {
	root := NewGroup("root")
	parent := NewGroup("parent").SetPosition(10, 0, 0)
	child := NewGroup("child").SetPosition(0, 5, 0)
	root.AddChild(parent)
	parent.AddChild(child)

	wp := child.WorldPosition()
	want := mgl64.Vec3{10, 5, 0}
	if !vecClose(wp, want) {
		t.Errorf("world position = %v, want %v", wp, want)
	}
}

func TestNodeRotationComposes(t *testing.T) {
	root := NewGroup("root")
	parent := NewGroup("parent").SetRotationY(math.Pi / 2)
	child := NewGroup("child").SetPosition(1, 0, 0)
	root.AddChild(parent)
	parent.AddChild(child)

	// A quarter turn about +Y carries +X onto -Z.
	wp := child.WorldPosition()
	want := mgl64.Vec3{0, 0, -1}
	if !vecClose(wp, want) {
		t.Errorf("world position = %v, want %v", wp, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	n := NewGroup("n").SetPosition(100, 200, 300)
	d := n.TransformDirection(mgl64.Vec3{0, 0, 1})
	if !vecClose(d, mgl64.Vec3{0, 0, 1}) {
		t.Errorf("direction = %v, want unchanged +Z", d)
	}
}

func TestReparentDetachesFromOldParent(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	c := NewGroup("c")
	a.AddChild(c)
	b.AddChild(c)

	if len(a.Children()) != 0 {
		t.Errorf("old parent still holds %d children", len(a.Children()))
	}
	if c.Parent() != b {
		t.Error("child not attached to new parent")
	}
}

func TestWalkVisitsPreorder(t *testing.T) {
	root := NewGroup("root")
	a := NewGroup("a")
	b := NewGroup("b")
	a1 := NewGroup("a1")
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(a1)

	var order []string
	root.Walk(func(n *Node) { order = append(order, n.Name) })

	want := []string{"root", "a", "a1", "b"}
	if len(order) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("visit[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestIndexAssignsSequentialIDs(t *testing.T) {
	root := NewGroup("root")
	root.AddChild(NewGroup("a"))
	root.AddChild(NewGroup("b"))

	nodes := Index(root)
	if len(nodes) != 3 {
		t.Fatalf("indexed %d nodes, want 3", len(nodes))
	}
	for i, n := range nodes {
		if n.ID != i {
			t.Errorf("node %q ID = %d, want %d", n.Name, n.ID, i)
		}
	}

	// Re-indexing after a mutation keeps IDs dense.
	root.AddChild(NewGroup("c"))
	nodes = Index(root)
	if len(nodes) != 4 || nodes[3].ID != 3 {
		t.Errorf("re-index gave %d nodes, last ID %d", len(nodes), nodes[len(nodes)-1].ID)
	}
}

func TestInstancedMeshBounds(t *testing.T) {
	mat := NewMaterial("concrete", RGB(0.6, 0.6, 0.6))
	im := NewInstancedMesh(Mesh{Shape: ShapeBox, Size: mgl64.Vec3{1, 1, 1}}, mat, 4)

	im.SetMatrixAt(2, mgl64.Translate3D(5, 0, 0))
	im.SetColorAt(2, RGB(1, 0, 0))

	// Out-of-range writes are dropped, not panics.
	im.SetMatrixAt(99, mgl64.Ident4())
	im.SetColorAt(-1, RGB(0, 1, 0))

	got := im.MatrixAt(2).Col(3)
	if got.X() != 5 {
		t.Errorf("instance 2 x = %v, want 5", got.X())
	}
	if im.ColorAt(2).R != 1 {
		t.Errorf("instance 2 color = %+v, want red", im.ColorAt(2))
	}
	if !im.Dirty() {
		t.Error("writes should mark the mesh dirty")
	}
}

func TestCylinderSizeConvention(t *testing.T) {
	mat := NewMaterial("steel", RGB(0.5, 0.5, 0.55))
	n := Cylinder("column", 0.4, 0.6, 9, mat)
	if n.Mesh == nil {
		t.Fatal("cylinder node has no mesh")
	}
	s := n.Mesh.Size
	if s.X() != 0.4 || s.Z() != 0.6 || s.Y() != 9 {
		t.Errorf("size = %v, want {0.4 9 0.6} as {radiusTop, height, radiusBottom}", s)
	}
}

func vecClose(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}
