package scene

import "github.com/go-gl/mathgl/mgl64"

// InstancedMesh is one GPU draw resource sharing a geometry template and
// material across many per-instance transforms and colors. It is built once
// from a voxel pass and never mutated afterwards. Instance writes set the
// dirty mark, which tells the renderer the buffers await their first upload.
type InstancedMesh struct {
	Template Mesh
	Material *Material
	Count    int

	matrices []mgl64.Mat4
	colors   []Color
	dirty    bool
}

// NewInstancedMesh allocates an instanced mesh for count instances of the
// template geometry. Count must be positive; callers skip creation entirely
// for empty batches.
func NewInstancedMesh(template Mesh, mat *Material, count int) *InstancedMesh {
	m := &InstancedMesh{
		Template: template,
		Material: mat,
		Count:    count,
		matrices: make([]mgl64.Mat4, count),
		colors:   make([]Color, count),
	}
	for i := range m.matrices {
		m.matrices[i] = mgl64.Ident4()
	}
	return m
}

// SetMatrixAt sets the transform of instance i. Out-of-range indices are
// ignored.
func (m *InstancedMesh) SetMatrixAt(i int, mat mgl64.Mat4) {
	if i < 0 || i >= len(m.matrices) {
		return
	}
	m.matrices[i] = mat
	m.dirty = true
}

// SetColorAt sets the color of instance i. Out-of-range indices are ignored.
func (m *InstancedMesh) SetColorAt(i int, c Color) {
	if i < 0 || i >= len(m.colors) {
		return
	}
	m.colors[i] = c
	m.dirty = true
}

// MatrixAt returns the transform of instance i.
func (m *InstancedMesh) MatrixAt(i int) mgl64.Mat4 {
	return m.matrices[i]
}

// ColorAt returns the color of instance i.
func (m *InstancedMesh) ColorAt(i int) Color {
	return m.colors[i]
}

// Dirty reports whether the buffers await upload.
func (m *InstancedMesh) Dirty() bool {
	return m.dirty
}
