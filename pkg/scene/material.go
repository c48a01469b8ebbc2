package scene

// Material describes a PBR surface shared by one or more meshes. Materials
// are mutable at runtime only through emissive intensity (day/night toggle);
// every other field is fixed after construction.
type Material struct {
	Name              string  `json:"name"`
	Color             Color   `json:"color"`
	Roughness         float64 `json:"roughness"`
	Metalness         float64 `json:"metalness"`
	Opacity           float64 `json:"opacity"`
	Emissive          Color   `json:"emissive,omitempty"`
	EmissiveIntensity float64 `json:"emissive_intensity,omitempty"`
}

// NewMaterial creates an opaque rough material of the given color.
func NewMaterial(name string, color Color) *Material {
	return &Material{
		Name:      name,
		Color:     color,
		Roughness: 0.9,
		Opacity:   1,
	}
}

// Glass creates a transparent smooth material.
func Glass(name string, color Color, opacity float64) *Material {
	return &Material{
		Name:      name,
		Color:     color,
		Roughness: 0.1,
		Metalness: 0.2,
		Opacity:   opacity,
	}
}

// Emissive creates a glowing material; intensity is toggled by the
// day/night switch.
func Emissive(name string, color Color, intensity float64) *Material {
	return &Material{
		Name:              name,
		Color:             color,
		Roughness:         0.6,
		Opacity:           1,
		Emissive:          color,
		EmissiveIntensity: intensity,
	}
}
