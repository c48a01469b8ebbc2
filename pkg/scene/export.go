package scene

import (
	"time"
)

// Document is the complete scene output handed to the external renderer.
type Document struct {
	Metadata Metadata `json:"metadata"`
	Root     NodeDoc  `json:"root"`
}

// Metadata holds scene-level information.
type Metadata struct {
	SpecVersion string `json:"spec_version"`
	GeneratedAt string `json:"generated_at"`
	NodeCount   int    `json:"node_count"`
	Instances   int    `json:"instances"`
}

// NodeDoc is one node of the exported hierarchy.
type NodeDoc struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Tag       string        `json:"tag,omitempty"`
	Position  [3]float64    `json:"position"`
	Rotation  [4]float64    `json:"rotation"` // quaternion [x, y, z, w]
	Scale     [3]float64    `json:"scale"`
	Mesh      *MeshDoc      `json:"mesh,omitempty"`
	Instanced *InstancedDoc `json:"instanced,omitempty"`
	Light     *Light        `json:"light,omitempty"`
	Children  []NodeDoc     `json:"children,omitempty"`
}

// MeshDoc describes a primitive mesh.
type MeshDoc struct {
	Shape         Shape      `json:"shape"`
	Size          [3]float64 `json:"size"`
	Material      *Material  `json:"material,omitempty"`
	CastShadow    bool       `json:"cast_shadow"`
	ReceiveShadow bool       `json:"receive_shadow"`
}

// InstancedDoc describes an instanced mesh. Diorama instances are pure
// translations of the shared template, so only the translation column of
// each instance matrix is exported.
type InstancedDoc struct {
	Shape     Shape        `json:"shape"`
	Size      [3]float64   `json:"size"`
	Material  *Material    `json:"material,omitempty"`
	Count     int          `json:"count"`
	Positions [][3]float64 `json:"positions"`
	Colors    [][3]float64 `json:"colors"`
}

// Export converts a scene tree into the renderer document. It assigns node
// IDs via Index, so a subsequent frame stream refers to the same IDs.
func Export(root *Node, specVersion string) *Document {
	flat := Index(root)

	instances := 0
	for _, n := range flat {
		if n.Instanced != nil {
			instances += n.Instanced.Count
		}
	}

	return &Document{
		Metadata: Metadata{
			SpecVersion: specVersion,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			NodeCount:   len(flat),
			Instances:   instances,
		},
		Root: exportNode(root),
	}
}

func exportNode(n *Node) NodeDoc {
	doc := NodeDoc{
		ID:       n.ID,
		Name:     n.Name,
		Tag:      n.Tag,
		Position: [3]float64{n.Position[0], n.Position[1], n.Position[2]},
		Rotation: [4]float64{n.Rotation.V[0], n.Rotation.V[1], n.Rotation.V[2], n.Rotation.W},
		Scale:    [3]float64{n.Scale[0], n.Scale[1], n.Scale[2]},
	}

	if n.Mesh != nil {
		doc.Mesh = &MeshDoc{
			Shape:         n.Mesh.Shape,
			Size:          [3]float64{n.Mesh.Size[0], n.Mesh.Size[1], n.Mesh.Size[2]},
			Material:      n.Mesh.Material,
			CastShadow:    n.Mesh.CastShadow,
			ReceiveShadow: n.Mesh.ReceiveShadow,
		}
	}

	if n.Instanced != nil {
		im := n.Instanced
		inst := &InstancedDoc{
			Shape:     im.Template.Shape,
			Size:      [3]float64{im.Template.Size[0], im.Template.Size[1], im.Template.Size[2]},
			Material:  im.Material,
			Count:     im.Count,
			Positions: make([][3]float64, im.Count),
			Colors:    make([][3]float64, im.Count),
		}
		for i := 0; i < im.Count; i++ {
			m := im.MatrixAt(i)
			inst.Positions[i] = [3]float64{m.At(0, 3), m.At(1, 3), m.At(2, 3)}
			inst.Colors[i] = im.ColorAt(i).Array()
		}
		doc.Instanced = inst
	}

	doc.Light = n.Light

	for _, c := range n.children {
		doc.Children = append(doc.Children, exportNode(c))
	}
	return doc
}
