package scene

// LightKind identifies a light primitive.
type LightKind string

const (
	LightPoint       LightKind = "point"
	LightSpot        LightKind = "spot"
	LightDirectional LightKind = "directional"
	LightAmbient     LightKind = "ambient"
)

// Light is a light-source payload. Intensity is the only runtime-mutable
// field (beacon pulse, day/night ambient).
type Light struct {
	Kind      LightKind `json:"kind"`
	Color     Color     `json:"color"`
	Intensity float64   `json:"intensity"`
	Range     float64   `json:"range,omitempty"`    // point/spot falloff distance
	Angle     float64   `json:"angle,omitempty"`    // spot cone half-angle, radians
	Shadows   bool      `json:"shadows,omitempty"`
}

// PointLight creates a node carrying a point light.
func PointLight(name string, color Color, intensity, lightRange float64) *Node {
	n := NewGroup(name)
	n.Light = &Light{
		Kind:      LightPoint,
		Color:     color,
		Intensity: intensity,
		Range:     lightRange,
	}
	return n
}

// DirectionalLight creates a node carrying a sun-style light. Direction is
// taken from the node's rotation by the renderer.
func DirectionalLight(name string, color Color, intensity float64) *Node {
	n := NewGroup(name)
	n.Light = &Light{
		Kind:      LightDirectional,
		Color:     color,
		Intensity: intensity,
		Shadows:   true,
	}
	return n
}

// AmbientLight creates a node carrying flat fill lighting.
func AmbientLight(name string, color Color, intensity float64) *Node {
	n := NewGroup(name)
	n.Light = &Light{
		Kind:      LightAmbient,
		Color:     color,
		Intensity: intensity,
	}
	return n
}
